// Package ui renders menus, task listings, and status messages.
// Rendering is pure: nothing in this package mutates the task store.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/nvander/taskdeck/internal/task"
)

// One style per importance level: red, yellow, green.
var importanceStyles = map[task.Importance]lipgloss.Style{
	task.ImportanceHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	task.ImportanceMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	task.ImportanceLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Renderer writes user-facing output with per-importance styling.
type Renderer struct {
	out   io.Writer
	plain bool
}

// NewRenderer creates a renderer writing to out. Styling is disabled
// when noColor is set or out is not a terminal.
func NewRenderer(out io.Writer, noColor bool) *Renderer {
	return &Renderer{
		out:   out,
		plain: noColor || !IsTTY(out),
	}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

// Tag returns the bracketed importance tag, e.g. "[HIGH]".
func (r *Renderer) Tag(importance task.Importance) string {
	style, ok := importanceStyles[importance]
	if !ok {
		return fmt.Sprintf("[%s]", importance)
	}
	return r.style(style, fmt.Sprintf("[%s]", importance))
}

// Welcome prints the startup banner.
func (r *Renderer) Welcome() {
	fmt.Fprintln(r.out, r.style(titleStyle, "Welcome to taskdeck!"))
	fmt.Fprintln(r.out, r.style(infoStyle, "Manage your tasks right from the terminal."))
	fmt.Fprintln(r.out)
}

// Menu prints the main menu options.
func (r *Renderer) Menu() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.style(titleStyle, "Main Menu"))
	fmt.Fprintf(r.out, "[1] %s\n", r.style(importanceStyles[task.ImportanceLow], "Add a task"))
	fmt.Fprintf(r.out, "[2] %s\n", r.style(importanceStyles[task.ImportanceMedium], "View tasks (High → Medium → Low)"))
	fmt.Fprintf(r.out, "[3] %s\n", r.style(importanceStyles[task.ImportanceHigh], "Delete a task"))
	fmt.Fprintf(r.out, "[4] %s\n", r.style(infoStyle, "Quit"))
}

// Listing prints a numbered task listing under the given header. The
// caller decides the order; numbering here is what delete-by-number
// refers to when the tasks are in display order.
func (r *Renderer) Listing(header string, tasks []task.Task) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.style(headerStyle, header))
	for i, t := range tasks {
		fmt.Fprintf(r.out, "  %d. %s %s\n", i+1, r.Tag(t.Importance), t.Description)
	}
}

// Empty prints the empty-state message.
func (r *Renderer) Empty() {
	fmt.Fprintln(r.out, r.style(infoStyle, "Your list is empty — add your first task from the menu!"))
}

// Added prints the confirmation for a newly added task.
func (r *Renderer) Added(t task.Task) {
	fmt.Fprintf(r.out, "%s %s\n", r.style(importanceStyles[t.Importance], fmt.Sprintf("✔ Added (%s):", t.Importance)), t.Description)
}

// Deleted prints the confirmation for a removed task.
func (r *Renderer) Deleted(t task.Task) {
	fmt.Fprintf(r.out, "%s %s\n", r.style(importanceStyles[t.Importance], fmt.Sprintf("✖ Deleted (%s):", t.Importance)), t.Description)
}

// Infof prints an informational status line.
func (r *Renderer) Infof(format string, args ...any) {
	fmt.Fprintln(r.out, r.style(infoStyle, fmt.Sprintf(format, args...)))
}

// Errorf prints a recoverable error status line.
func (r *Renderer) Errorf(format string, args ...any) {
	fmt.Fprintln(r.out, r.style(errorStyle, "✖ "+fmt.Sprintf(format, args...)))
}

// Promptf prints a prompt without a trailing newline.
func (r *Renderer) Promptf(format string, args ...any) {
	fmt.Fprint(r.out, fmt.Sprintf(format, args...))
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
