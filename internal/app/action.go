package app

// Action is a logical key action forwarded by the controller loop. The set
// is exhaustive; physical key choices live in the UI keymap.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionNext
	ActionPrevious
	ActionIncreaseState
	ActionDecreaseState
	ActionMoveUp
	ActionMoveDown
	ActionAdd
	ActionDelete
	ActionEdit
	ActionConfirm
	ActionCancel
	ActionYes
	ActionNo
	ActionInsertChar
	ActionBackspace
)

var actionNames = map[Action]string{
	ActionNone:          "none",
	ActionQuit:          "quit",
	ActionNext:          "next",
	ActionPrevious:      "previous",
	ActionIncreaseState: "increase-state",
	ActionDecreaseState: "decrease-state",
	ActionMoveUp:        "move-up",
	ActionMoveDown:      "move-down",
	ActionAdd:           "add",
	ActionDelete:        "delete",
	ActionEdit:          "edit",
	ActionConfirm:       "confirm",
	ActionCancel:        "cancel",
	ActionYes:           "yes",
	ActionNo:            "no",
	ActionInsertChar:    "insert-char",
	ActionBackspace:     "backspace",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Event is one pressed key, already translated to an action. Char is only
// meaningful for ActionInsertChar.
type Event struct {
	Action Action
	Char   rune
}

// Press is shorthand for an event without a character payload.
func Press(a Action) Event {
	return Event{Action: a}
}

// Char is shorthand for a character-insert event.
func Char(r rune) Event {
	return Event{Action: ActionInsertChar, Char: r}
}
