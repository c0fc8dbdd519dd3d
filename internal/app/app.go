// Package app is the mode state machine that turns key actions into edits
// of the task list.
package app

import (
	"fmt"

	"ticklist/internal/task"
	"ticklist/internal/tasklist"
)

// App owns the task list, the current mode and the transient input buffer.
// It is driven from a single goroutine.
type App struct {
	tasks *tasklist.List
	mode  Mode
	input Buffer
	quit  bool
}

// New starts in Normal mode with an empty buffer.
func New(tasks *tasklist.List) *App {
	if tasks == nil {
		tasks = tasklist.New(nil)
	}
	return &App{tasks: tasks, mode: Normal{}}
}

// Tasks returns the list for persistence.
func (a *App) Tasks() *tasklist.List {
	return a.tasks
}

// Mode returns the current mode.
func (a *App) Mode() Mode {
	return a.mode
}

// ShouldQuit reports whether the quit action was received.
func (a *App) ShouldQuit() bool {
	return a.quit
}

// Handle applies ev to the current mode. Events that mean nothing in the
// current mode are ignored.
func (a *App) Handle(ev Event) {
	switch m := a.mode.(type) {
	case Normal:
		a.handleNormal(ev)
	case Editing:
		a.handleEditing(ev)
	case ConfirmDelete:
		a.handleConfirmDelete(m, ev)
	case EditingTask:
		a.handleEditingTask(m, ev)
	default:
		panic(fmt.Sprintf("app: unhandled mode %T", m))
	}
}

func (a *App) handleNormal(ev Event) {
	sel, hasSel := a.tasks.Selected()
	switch ev.Action {
	case ActionQuit:
		a.quit = true
	case ActionNext:
		a.tasks.SelectNext()
	case ActionPrevious:
		a.tasks.SelectPrevious()
	case ActionIncreaseState:
		if hasSel {
			a.tasks.AdvanceState(sel)
		}
	case ActionDecreaseState:
		if hasSel {
			a.tasks.RegressState(sel)
		}
	case ActionMoveUp:
		if hasSel {
			a.tasks.MoveUp(sel)
		}
	case ActionMoveDown:
		if hasSel {
			a.tasks.MoveDown(sel)
		}
	case ActionAdd:
		a.input.Reset()
		a.mode = Editing{}
	case ActionDelete:
		if hasSel {
			a.mode = ConfirmDelete{Index: sel}
		}
	case ActionEdit:
		if !hasSel {
			return
		}
		t, _ := a.tasks.At(sel)
		a.input.Set(t.Title)
		a.mode = EditingTask{Index: sel, Original: t.Title}
	}
}

func (a *App) handleEditing(ev Event) {
	switch ev.Action {
	case ActionConfirm:
		if !a.input.Empty() {
			a.tasks.Insert(a.input.String())
		}
		a.toNormal()
	case ActionCancel:
		a.toNormal()
	default:
		a.edit(ev)
	}
}

func (a *App) handleConfirmDelete(m ConfirmDelete, ev Event) {
	switch ev.Action {
	case ActionYes:
		a.tasks.Remove(m.Index)
		a.toNormal()
	case ActionNo, ActionCancel:
		a.toNormal()
	}
}

func (a *App) handleEditingTask(m EditingTask, ev Event) {
	switch ev.Action {
	case ActionConfirm:
		// An empty title is treated like a cancel.
		if a.input.Empty() {
			a.tasks.SetTitle(m.Index, m.Original)
		} else {
			a.tasks.SetTitle(m.Index, a.input.String())
		}
		a.toNormal()
	case ActionCancel:
		a.tasks.SetTitle(m.Index, m.Original)
		a.toNormal()
	default:
		a.edit(ev)
	}
}

func (a *App) edit(ev Event) {
	switch ev.Action {
	case ActionInsertChar:
		if ev.Char != 0 {
			a.input.Insert(ev.Char)
		}
	case ActionBackspace:
		a.input.Backspace()
	}
}

func (a *App) toNormal() {
	a.input.Reset()
	a.mode = Normal{}
}

// View is a read-only snapshot for renderers.
type View struct {
	Tasks         []task.Task
	Selected      int
	HasSelection  bool
	Mode          Mode
	Input         string
	Cursor        int
	PendingDelete int
	HasPending    bool
}

// View captures the current state. Mutating the result does not affect the
// app.
func (a *App) View() View {
	v := View{
		Tasks:  a.tasks.Items(),
		Mode:   a.mode,
		Input:  a.input.String(),
		Cursor: a.input.Cursor(),
	}
	v.Selected, v.HasSelection = a.tasks.Selected()
	if cd, ok := a.mode.(ConfirmDelete); ok {
		v.PendingDelete, v.HasPending = cd.Index, true
	}
	return v
}
