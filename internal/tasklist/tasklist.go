// Package tasklist is the ordered task list with a single optional
// selection cursor. Every operation on a missing or out-of-range index is a
// no-op.
package tasklist

import "ticklist/internal/task"

const noSelection = -1

// List owns an ordered sequence of tasks. Insertion order is display order
// and persisted order.
type List struct {
	items    []task.Task
	selected int
}

// New returns a list holding items, selecting the first one if any.
func New(items []task.Task) *List {
	l := &List{items: append([]task.Task(nil), items...), selected: noSelection}
	if len(l.items) > 0 {
		l.selected = 0
	}
	return l
}

// Len reports the number of tasks.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns a copy of the tasks in order.
func (l *List) Items() []task.Task {
	return append([]task.Task(nil), l.items...)
}

// At returns the task at i.
func (l *List) At(i int) (task.Task, bool) {
	if !l.valid(i) {
		return task.Task{}, false
	}
	return l.items[i], true
}

// Selected returns the selected index, if any.
func (l *List) Selected() (int, bool) {
	if !l.valid(l.selected) {
		return 0, false
	}
	return l.selected, true
}

// Unselect clears the selection.
func (l *List) Unselect() {
	l.selected = noSelection
}

func (l *List) valid(i int) bool {
	return i >= 0 && i < len(l.items)
}

// SelectNext moves the cursor forward, wrapping from the last item to the
// first. With no selection it selects the first item.
func (l *List) SelectNext() {
	n := len(l.items)
	if n == 0 {
		return
	}
	cur, ok := l.Selected()
	if !ok {
		l.selected = 0
		return
	}
	l.selected = (cur + 1) % n
}

// SelectPrevious moves the cursor backward, wrapping from the first item to
// the last. With no selection it selects the first item.
func (l *List) SelectPrevious() {
	n := len(l.items)
	if n == 0 {
		return
	}
	cur, ok := l.Selected()
	if !ok {
		l.selected = 0
		return
	}
	l.selected = (cur - 1 + n) % n
}

// AdvanceState moves the task at i to its next progress marker.
func (l *List) AdvanceState(i int) {
	if !l.valid(i) {
		return
	}
	l.items[i].State = l.items[i].State.Next()
}

// RegressState moves the task at i to its previous progress marker.
func (l *List) RegressState(i int) {
	if !l.valid(i) {
		return
	}
	l.items[i].State = l.items[i].State.Prev()
}

// MoveUp swaps the task at i with the one above it; the selection follows
// the moved task. No-op on the first item.
func (l *List) MoveUp(i int) {
	if !l.valid(i) || i == 0 {
		return
	}
	l.items[i], l.items[i-1] = l.items[i-1], l.items[i]
	l.selected = i - 1
}

// MoveDown swaps the task at i with the one below it; the selection follows
// the moved task. No-op on the last item.
func (l *List) MoveDown(i int) {
	if !l.valid(i) || i == len(l.items)-1 {
		return
	}
	l.items[i], l.items[i+1] = l.items[i+1], l.items[i]
	l.selected = i + 1
}

// Insert appends a Todo task. Empty titles are ignored. When the list was
// empty the new task becomes selected; otherwise the selection is kept.
func (l *List) Insert(title string) {
	if title == "" {
		return
	}
	l.items = append(l.items, task.New(title))
	if len(l.items) == 1 {
		l.selected = 0
	}
}

// SetTitle replaces the title of the task at i.
func (l *List) SetTitle(i int, title string) {
	if !l.valid(i) {
		return
	}
	l.items[i].Title = title
}

// Remove deletes the task at i and repairs the selection by position: it
// becomes empty with the list, moves to the new last index when i was the
// last index, or otherwise keeps its numeric value (clamped to the list).
func (l *List) Remove(i int) {
	if !l.valid(i) {
		return
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	switch {
	case len(l.items) == 0:
		l.selected = noSelection
	case i >= len(l.items), l.selected >= len(l.items):
		l.selected = len(l.items) - 1
	}
}
