// Package task holds the task value type and its progress marker.
package task

import "fmt"

// State is the tri-state progress marker of a task.
type State int

const (
	Todo State = iota
	InProgress
	Done
)

const stateCount = 3

// Next returns the successor in the cycle Todo -> InProgress -> Done -> Todo.
func (s State) Next() State {
	return (s.normalize() + 1) % stateCount
}

// Prev returns the predecessor in the cycle.
func (s State) Prev() State {
	return (s.normalize() + stateCount - 1) % stateCount
}

func (s State) normalize() State {
	if s < Todo || s > Done {
		return Todo
	}
	return s
}

func (s State) String() string {
	switch s {
	case Todo:
		return "Todo"
	case InProgress:
		return "InProgress"
	case Done:
		return "Done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParseState maps a persisted tag back to a State.
func ParseState(tag string) (State, error) {
	switch tag {
	case "Todo":
		return Todo, nil
	case "InProgress":
		return InProgress, nil
	case "Done":
		return Done, nil
	default:
		return Todo, fmt.Errorf("unknown task state %q", tag)
	}
}

func (s State) MarshalText() ([]byte, error) {
	switch s {
	case Todo, InProgress, Done:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("invalid task state %d", int(s))
	}
}

func (s *State) UnmarshalText(b []byte) error {
	parsed, err := ParseState(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Task is a title plus a progress marker. Tasks have no identity beyond
// their position in a list.
type Task struct {
	Title string `json:"title"`
	State State  `json:"state"`
}

// New returns a Todo task with the given title.
func New(title string) Task {
	return Task{Title: title, State: Todo}
}

// Label is the display form used by list renderers: glyph, space, title.
func (t Task) Label(g GlyphSet) string {
	return g.Marker(t.State) + " " + t.Title
}
