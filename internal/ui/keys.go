package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ticklist/internal/app"
	"ticklist/internal/config"
)

type keyMap struct {
	Quit          key.Binding
	Next          key.Binding
	Previous      key.Binding
	IncreaseState key.Binding
	DecreaseState key.Binding
	MoveUp        key.Binding
	MoveDown      key.Binding
	Add           key.Binding
	Delete        key.Binding
	Edit          key.Binding
	Confirm       key.Binding
	Cancel        key.Binding
	Yes           key.Binding
	No            key.Binding
	Backspace     key.Binding
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

func helpKeys(keys []string) string {
	var out []string
	for _, k := range keys {
		switch k {
		case "ctrl+c":
			continue
		case " ":
			k = "space"
		}
		out = append(out, k)
	}
	return strings.Join(out, "/")
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:          binding(k.Quit, "quit"),
		Next:          binding(k.Next, "next"),
		Previous:      binding(k.Previous, "previous"),
		IncreaseState: binding(k.IncreaseState, "state +"),
		DecreaseState: binding(k.DecreaseState, "state -"),
		MoveUp:        binding(k.MoveUp, "move task up"),
		MoveDown:      binding(k.MoveDown, "move task down"),
		Add:           binding(k.Add, "add"),
		Delete:        binding(k.Delete, "delete"),
		Edit:          binding(k.Edit, "edit"),
		Confirm:       binding(k.Confirm, "save"),
		Cancel:        binding(k.Cancel, "cancel"),
		Yes:           binding(k.Yes, "confirm"),
		No:            binding(k.No, "cancel"),
		Backspace:     binding(k.Backspace, "delete char"),
	}
}

// events translates one key press into core events for the given mode.
// Pasted text arrives as a single KeyMsg with several runes.
func (k keyMap) events(msg tea.KeyMsg, mode app.Mode) []app.Event {
	switch mode.(type) {
	case app.Normal:
		if a := k.normalAction(msg); a != app.ActionNone {
			return []app.Event{app.Press(a)}
		}
	case app.Editing, app.EditingTask:
		switch {
		case key.Matches(msg, k.Confirm):
			return []app.Event{app.Press(app.ActionConfirm)}
		case key.Matches(msg, k.Cancel):
			return []app.Event{app.Press(app.ActionCancel)}
		case key.Matches(msg, k.Backspace):
			return []app.Event{app.Press(app.ActionBackspace)}
		}
		return textEvents(msg)
	case app.ConfirmDelete:
		switch {
		case key.Matches(msg, k.Yes):
			return []app.Event{app.Press(app.ActionYes)}
		case key.Matches(msg, k.No):
			return []app.Event{app.Press(app.ActionNo)}
		case key.Matches(msg, k.Cancel):
			return []app.Event{app.Press(app.ActionCancel)}
		}
	}
	return nil
}

func (k keyMap) normalAction(msg tea.KeyMsg) app.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return app.ActionQuit
	case key.Matches(msg, k.Next):
		return app.ActionNext
	case key.Matches(msg, k.Previous):
		return app.ActionPrevious
	case key.Matches(msg, k.IncreaseState):
		return app.ActionIncreaseState
	case key.Matches(msg, k.DecreaseState):
		return app.ActionDecreaseState
	case key.Matches(msg, k.MoveUp):
		return app.ActionMoveUp
	case key.Matches(msg, k.MoveDown):
		return app.ActionMoveDown
	case key.Matches(msg, k.Add):
		return app.ActionAdd
	case key.Matches(msg, k.Delete):
		return app.ActionDelete
	case key.Matches(msg, k.Edit):
		return app.ActionEdit
	}
	return app.ActionNone
}

func textEvents(msg tea.KeyMsg) []app.Event {
	if msg.Alt {
		return nil
	}
	switch msg.Type {
	case tea.KeySpace:
		return []app.Event{app.Char(' ')}
	case tea.KeyRunes:
		evs := make([]app.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			evs = append(evs, app.Char(r))
		}
		return evs
	}
	return nil
}

// legend returns the bindings shown in the help line for mode.
func (k keyMap) legend(mode app.Mode) []key.Binding {
	switch mode.(type) {
	case app.Editing, app.EditingTask:
		return []key.Binding{k.Confirm, k.Cancel}
	case app.ConfirmDelete:
		return []key.Binding{k.Yes, k.No, k.Cancel}
	default:
		return []key.Binding{
			k.Next, k.Previous, k.IncreaseState, k.DecreaseState,
			k.MoveUp, k.MoveDown, k.Add, k.Delete, k.Edit, k.Quit,
		}
	}
}
