package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/slugline/internal/model"
	"golang.org/x/term"
)

// TUI implements UI with lipgloss styling for terminals. The list view is
// paged with Bubble Tea when it does not fit on screen.
type TUI struct {
	output  io.Writer
	mode    StartMode
	results []m.ChangeResult

	// overridable in tests
	size func() (width, height int, ok bool)
	run  func(model tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}
	t.size = t.terminalSize
	t.run = t.runProgram

	return t
}

// Start initializes the UI.
func (t *TUI) Start(options ...StartOption) error {
	t.mode = newStartConfig(options).mode
	t.results = nil

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {
	t.results = nil
}

// DisplayNoFiles prints the notice shown when discovery finds nothing.
func (t *TUI) DisplayNoFiles() {
	_, _ = fmt.Fprintln(t.output, noticeStyle.Render("No files found"))
}

// DisplayResult prints a styled line for the result, or buffers it in list mode.
func (t *TUI) DisplayResult(result m.ChangeResult) {
	if t.mode == ModeList {
		t.results = append(t.results, result)
		return
	}

	_, _ = fmt.Fprintln(t.output, renderResultLine(result))
}

// DisplayError reports a file that could not be processed.
func (t *TUI) DisplayError(path m.Path, err error) {
	line := fmt.Sprintf("%s %s: %v", iconError, path.Base(), err)
	_, _ = fmt.Fprintln(t.output, errorStyle.Render(line))
}

// DisplaySummary prints the number of changed files. In list mode the
// buffered results are shown in the results view.
func (t *TUI) DisplaySummary(changes int) error {
	if t.mode != ModeList {
		_, _ = fmt.Fprintln(t.output, summaryStyle.Render(fmt.Sprintf("%s: %d", summaryLabel(t.mode), changes)))
		return nil
	}

	model := newResultsModel(t.results, changes)
	if width, height, ok := t.size(); ok {
		model.width = width
		model.height = height
	}

	// If list is small, just print and exit
	if !model.needsPaging() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	return t.run(model.interactive())
}

func (t *TUI) terminalSize() (int, int, bool) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}

func (t *TUI) runProgram(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

const (
	iconUnchanged = "✓"
	iconCorrected = "~"
	iconInserted  = "+"
	iconError     = "✗"
)

var (
	unchangedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	correctedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	insertedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	noticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true)
	summaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

func outcomeStyle(outcome m.Outcome) (lipgloss.Style, string) {
	switch outcome {
	case m.Corrected:
		return correctedStyle, iconCorrected
	case m.Inserted:
		return insertedStyle, iconInserted
	default:
		return unchangedStyle, iconUnchanged
	}
}

func renderResultLine(result m.ChangeResult) string {
	style, icon := outcomeStyle(result.Outcome)

	return style.Render(fmt.Sprintf("%s %s", icon, result))
}
