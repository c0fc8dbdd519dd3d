package app

import (
	"reflect"
	"testing"

	"ticklist/internal/task"
	"ticklist/internal/tasklist"
)

func newApp(titles ...string) *App {
	var items []task.Task
	for _, title := range titles {
		items = append(items, task.New(title))
	}
	return New(tasklist.New(items))
}

func typeText(a *App, s string) {
	for _, r := range s {
		a.Handle(Char(r))
	}
}

func TestAddScenario(t *testing.T) {
	a := newApp("buy milk")
	a.Handle(Press(ActionAdd))
	if _, ok := a.Mode().(Editing); !ok {
		t.Fatalf("mode = %T, want Editing", a.Mode())
	}
	typeText(a, "call bob")
	a.Handle(Press(ActionConfirm))

	want := []task.Task{task.New("buy milk"), task.New("call bob")}
	if got := a.Tasks().Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("tasks = %#v", got)
	}
	if sel, ok := a.Tasks().Selected(); !ok || sel != 0 {
		t.Fatalf("selection = (%d, %v), want 0", sel, ok)
	}
	if _, ok := a.Mode().(Normal); !ok {
		t.Fatalf("mode = %T, want Normal", a.Mode())
	}
	if v := a.View(); v.Input != "" || v.Cursor != 0 {
		t.Fatalf("buffer not cleared: %q@%d", v.Input, v.Cursor)
	}
}

func TestAddEmptyOrCancelled(t *testing.T) {
	a := newApp()
	a.Handle(Press(ActionAdd))
	a.Handle(Press(ActionConfirm))
	if a.Tasks().Len() != 0 {
		t.Fatalf("empty title was inserted")
	}

	a.Handle(Press(ActionAdd))
	typeText(a, "draft")
	a.Handle(Press(ActionCancel))
	if a.Tasks().Len() != 0 {
		t.Fatalf("cancelled title was inserted")
	}
	if _, ok := a.Mode().(Normal); !ok {
		t.Fatalf("mode = %T, want Normal", a.Mode())
	}

	a.Handle(Press(ActionAdd))
	if v := a.View(); v.Input != "" {
		t.Fatalf("stale buffer after cancel: %q", v.Input)
	}
}

func TestDeleteScenario(t *testing.T) {
	a := newApp("only")
	a.Handle(Press(ActionDelete))
	cd, ok := a.Mode().(ConfirmDelete)
	if !ok || cd.Index != 0 {
		t.Fatalf("mode = %#v, want ConfirmDelete{0}", a.Mode())
	}
	if v := a.View(); !v.HasPending || v.PendingDelete != 0 {
		t.Fatalf("view pending = (%d, %v)", v.PendingDelete, v.HasPending)
	}
	a.Handle(Press(ActionYes))
	if a.Tasks().Len() != 0 {
		t.Fatalf("task not deleted")
	}
	if _, ok := a.Tasks().Selected(); ok {
		t.Fatalf("selection must be none")
	}
	if _, ok := a.Mode().(Normal); !ok {
		t.Fatalf("mode = %T, want Normal", a.Mode())
	}
}

func TestDeleteDeclined(t *testing.T) {
	for _, action := range []Action{ActionNo, ActionCancel} {
		a := newApp("a", "b")
		a.Handle(Press(ActionDelete))
		a.Handle(Press(ActionQuit))
		if a.ShouldQuit() {
			t.Fatalf("quit must be ignored while confirming")
		}
		a.Handle(Press(action))
		if a.Tasks().Len() != 2 {
			t.Fatalf("%v: task deleted", action)
		}
		if _, ok := a.Mode().(Normal); !ok {
			t.Fatalf("%v: mode = %T, want Normal", action, a.Mode())
		}
	}
}

func TestDeleteWithoutSelection(t *testing.T) {
	a := newApp()
	a.Handle(Press(ActionDelete))
	if _, ok := a.Mode().(Normal); !ok {
		t.Fatalf("mode = %T, want Normal", a.Mode())
	}
	a.Handle(Press(ActionEdit))
	if _, ok := a.Mode().(Normal); !ok {
		t.Fatalf("mode = %T, want Normal", a.Mode())
	}
}

func TestEditCancelRestoresTitle(t *testing.T) {
	a := newApp("X")
	a.Handle(Press(ActionEdit))
	et, ok := a.Mode().(EditingTask)
	if !ok || et.Index != 0 || et.Original != "X" {
		t.Fatalf("mode = %#v", a.Mode())
	}
	if v := a.View(); v.Input != "X" || v.Cursor != 1 {
		t.Fatalf("buffer = %q@%d, want X@1", v.Input, v.Cursor)
	}
	a.Handle(Press(ActionBackspace))
	typeText(a, "something else")
	a.Handle(Press(ActionCancel))
	if got, _ := a.Tasks().At(0); got.Title != "X" {
		t.Fatalf("title = %q, want X", got.Title)
	}
	if _, ok := a.Mode().(Normal); !ok {
		t.Fatalf("mode = %T, want Normal", a.Mode())
	}
}

func TestEditConfirmSetsTitle(t *testing.T) {
	a := newApp("X", "Y")
	a.Handle(Press(ActionNext))
	a.Handle(Press(ActionEdit))
	typeText(a, "ay")
	a.Handle(Press(ActionConfirm))
	if got, _ := a.Tasks().At(1); got.Title != "Yay" {
		t.Fatalf("title = %q, want Yay", got.Title)
	}
	if got, _ := a.Tasks().At(0); got.Title != "X" {
		t.Fatalf("other title changed: %q", got.Title)
	}
}

func TestEditConfirmEmptyKeepsTitle(t *testing.T) {
	a := newApp("X")
	a.Handle(Press(ActionEdit))
	a.Handle(Press(ActionBackspace))
	a.Handle(Press(ActionConfirm))
	if got, _ := a.Tasks().At(0); got.Title != "X" {
		t.Fatalf("title = %q, want X", got.Title)
	}
}

func TestNormalNavigationAndState(t *testing.T) {
	a := newApp("a", "b", "c")
	a.Handle(Press(ActionPrevious))
	if sel, _ := a.Tasks().Selected(); sel != 2 {
		t.Fatalf("selection = %d, want 2", sel)
	}
	a.Handle(Press(ActionIncreaseState))
	a.Handle(Press(ActionIncreaseState))
	if got, _ := a.Tasks().At(2); got.State != task.Done {
		t.Fatalf("state = %v, want Done", got.State)
	}
	a.Handle(Press(ActionDecreaseState))
	if got, _ := a.Tasks().At(2); got.State != task.InProgress {
		t.Fatalf("state = %v, want InProgress", got.State)
	}

	a.Handle(Press(ActionMoveUp))
	if got, _ := a.Tasks().At(1); got.Title != "c" {
		t.Fatalf("move up: %v", a.Tasks().Items())
	}
	if sel, _ := a.Tasks().Selected(); sel != 1 {
		t.Fatalf("selection = %d, want 1", sel)
	}
	a.Handle(Press(ActionMoveDown))
	if got, _ := a.Tasks().At(2); got.Title != "c" {
		t.Fatalf("move down: %v", a.Tasks().Items())
	}

	a.Handle(Char('x'))
	a.Handle(Press(ActionYes))
	if a.Tasks().Len() != 3 {
		t.Fatalf("unmatched events changed the list")
	}

	a.Handle(Press(ActionQuit))
	if !a.ShouldQuit() {
		t.Fatalf("quit flag not set")
	}
}

func TestEditingKeysAreText(t *testing.T) {
	a := newApp()
	a.Handle(Press(ActionAdd))
	a.Handle(Press(ActionQuit))
	a.Handle(Press(ActionDelete))
	if a.ShouldQuit() {
		t.Fatalf("quit must not fire while editing")
	}
	if _, ok := a.Mode().(Editing); !ok {
		t.Fatalf("mode = %T, want Editing", a.Mode())
	}
}

func TestViewIsSnapshot(t *testing.T) {
	a := newApp("a")
	v := a.View()
	v.Tasks[0].Title = "mutated"
	if got, _ := a.Tasks().At(0); got.Title != "a" {
		t.Fatalf("view aliases the list")
	}
}
