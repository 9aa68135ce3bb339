package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvander/taskdeck/internal/storage"
	"github.com/nvander/taskdeck/internal/task"
)

// RunTUI starts a read-only terminal viewer for the task file at path.
// The file is reloaded on a timer so changes made by a concurrent
// interactive session show up; the viewer never writes the file.
func RunTUI(ctx context.Context, path string) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(path)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type tuiModel struct {
	path         string
	loadErr      error
	tasks        []task.Task // display order
	counts       map[task.Importance]int
	filter       task.Importance // empty means no filter
	showHelp     bool
	tickInterval time.Duration
}

type tickMsg time.Time

func newTUIModel(path string) *tuiModel {
	return &tuiModel{
		path:         path,
		tickInterval: time.Second,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "1":
			m.filter = task.ImportanceHigh
			return m, nil
		case "2":
			m.filter = task.ImportanceMedium
			return m, nil
		case "3":
			m.filter = task.ImportanceLow
			return m, nil
		case "0":
			m.filter = ""
			return m, nil
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}

	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("taskdeck") + "\n\n")

	if m.showHelp {
		writeTUIHelp(&b)
		writeTUIFooter(&b)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString("Error loading task file:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeTUIFooter(&b)
		return b.String()
	}

	writeTUICounts(&b, m.counts)

	if m.filter != "" {
		fmt.Fprintf(&b, "Filter: %s (0 to clear)\n\n", m.filter)
	}

	visible := m.visibleTasks()
	if len(visible) == 0 {
		b.WriteString("No tasks.\n\n")
	} else {
		for i, t := range visible {
			style := importanceStyles[t.Importance]
			fmt.Fprintf(&b, "  %d. %s %s\n", i+1, style.Render(fmt.Sprintf("[%s]", t.Importance)), t.Description)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "File: %s\n", m.path)
	writeTUIFooter(&b)
	return b.String()
}

func (m *tuiModel) visibleTasks() []task.Task {
	if m.filter == "" {
		return m.tasks
	}
	var out []task.Task
	for _, t := range m.tasks {
		if t.Importance == m.filter {
			out = append(out, t)
		}
	}
	return out
}

func (m *tuiModel) refresh() {
	store, err := storage.Load(m.path)
	if err != nil {
		m.loadErr = err
		m.tasks = nil
		m.counts = nil
		return
	}
	m.loadErr = nil
	m.tasks = store.Sorted()
	m.counts = map[task.Importance]int{}
	for _, t := range m.tasks {
		m.counts[t.Importance]++
	}
}

func writeTUICounts(b *strings.Builder, counts map[task.Importance]int) {
	levels := []task.Importance{task.ImportanceHigh, task.ImportanceMedium, task.ImportanceLow}
	parts := make([]string, 0, len(levels))
	for _, level := range levels {
		style := importanceStyles[level]
		parts = append(parts, fmt.Sprintf("%s %d", style.Render(string(level)), counts[level]))
	}
	b.WriteString(strings.Join(parts, "  ") + "\n\n")
}

func writeTUIHelp(b *strings.Builder) {
	b.WriteString("Keys:\n")
	b.WriteString("  1/2/3  filter by HIGH/MEDIUM/LOW\n")
	b.WriteString("  0      clear filter\n")
	b.WriteString("  r/f5   refresh now\n")
	b.WriteString("  h/?    toggle this help\n")
	b.WriteString("  q      quit\n\n")
}

func writeTUIFooter(b *strings.Builder) {
	b.WriteString("\nq quit · r refresh · 1/2/3 filter · h help\n")
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
