package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"ticklist/internal/app"
	"ticklist/internal/config"
	"ticklist/internal/logging"
	"ticklist/internal/task"
)

const deletePrompt = "Are you sure you want to delete this task? (y/n)"

var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1)

	frameStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")).
		Bold(true)

	inputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	confirmStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("9")).
		Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))
)

type tickMsg time.Time

// Model is the controller loop: it maps key presses to core events and
// renders the core's read-only view.
type Model struct {
	app    *app.App
	keys   keyMap
	help   help.Model
	input  textinput.Model
	glyphs task.GlyphSet
	tick   time.Duration
	logger *log.Logger
	width  int
}

// NewModel wires a to the keymap and display settings in cfg.
func NewModel(a *app.App, cfg config.Config, logger *log.Logger) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Width = 40
	ti.Focus()

	if logger == nil {
		logger = logging.Discard()
	}
	tick := time.Duration(cfg.TickMS) * time.Millisecond
	if tick <= 0 {
		tick = config.DefaultTickMS * time.Millisecond
	}

	return Model{
		app:    a,
		keys:   newKeyMap(cfg.Keys),
		help:   help.New(),
		input:  ti,
		glyphs: task.ParseGlyphSet(cfg.Glyphs),
		tick:   tick,
		logger: logger,
	}
}

// Run drives m until the quit action. The program owns raw mode and the
// alternate screen and restores both on every return, panics included.
func Run(ctx context.Context, m Model) error {
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		return m, m.tickCmd()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if msg.Width > 10 {
			m.input.Width = msg.Width - 10
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.app.Mode()
	for _, ev := range m.keys.events(msg, before) {
		m.app.Handle(ev)
	}
	if after := m.app.Mode(); after.Name() != before.Name() {
		m.logger.Debug("mode changed", "from", before.Name(), "to", after.Name(), "key", msg.String())
	}
	if m.app.ShouldQuit() {
		m.logger.Info("quit requested")
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	v := m.app.View()

	var b strings.Builder
	b.WriteString(titleStyle.Render("TODO List"))
	b.WriteString("\n")
	b.WriteString(m.renderFrame(m.renderTaskList(v)))
	b.WriteString("\n")

	switch mode := v.Mode.(type) {
	case app.Editing:
		b.WriteString(m.renderInput("New Task", v))
		b.WriteString("\n")
	case app.EditingTask:
		b.WriteString(m.renderInput("Edit Task", v))
		b.WriteString("\n")
	case app.ConfirmDelete:
		b.WriteString(m.renderConfirm(mode, v))
		b.WriteString("\n")
	case app.Normal:
	}

	b.WriteString(m.help.ShortHelpView(m.keys.legend(v.Mode)))
	return b.String()
}

func (m Model) renderFrame(body string) string {
	style := frameStyle
	if m.width > 4 {
		style = style.Width(m.width - 2)
	}
	return style.Render(body)
}

func (m Model) renderTaskList(v app.View) string {
	if len(v.Tasks) == 0 {
		return mutedStyle.Render("No tasks yet. Press 'a' to add one.")
	}
	lines := make([]string, 0, len(v.Tasks))
	for i, t := range v.Tasks {
		label := t.Label(m.glyphs)
		if v.HasSelection && v.Selected == i {
			lines = append(lines, selectedStyle.Render("> "+label))
			continue
		}
		lines = append(lines, "  "+label)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderInput(title string, v app.View) string {
	in := m.input
	in.SetValue(v.Input)
	in.SetCursor(v.Cursor)
	return titleStyle.Render(title) + "\n" + inputStyle.Render(in.View())
}

func (m Model) renderConfirm(mode app.ConfirmDelete, v app.View) string {
	body := deletePrompt
	if mode.Index >= 0 && mode.Index < len(v.Tasks) {
		body += "\n" + mutedStyle.Render(v.Tasks[mode.Index].Label(m.glyphs))
	}
	return titleStyle.Render("Confirm Delete") + "\n" + confirmStyle.Render(body)
}
