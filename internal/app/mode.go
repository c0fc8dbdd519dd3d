package app

// Mode is the current UI mode. The set of variants is closed: Normal,
// Editing, ConfirmDelete and EditingTask.
type Mode interface {
	isMode()
	Name() string
}

// Normal is the idle mode.
type Normal struct{}

// Editing is composing a new task in the input buffer.
type Editing struct{}

// ConfirmDelete waits for a yes/no on deleting the task at Index.
type ConfirmDelete struct {
	Index int
}

// EditingTask is editing the title of the task at Index. Original is
// restored on cancel.
type EditingTask struct {
	Index    int
	Original string
}

func (Normal) isMode()        {}
func (Editing) isMode()       {}
func (ConfirmDelete) isMode() {}
func (EditingTask) isMode()   {}

func (Normal) Name() string        { return "normal" }
func (Editing) Name() string       { return "editing" }
func (ConfirmDelete) Name() string { return "confirm-delete" }
func (EditingTask) Name() string   { return "editing-task" }
