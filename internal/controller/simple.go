package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/slugline/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using the cobra command's output streams.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
	rows []m.ChangeResult
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.mode = newStartConfig(options).mode
	s.rows = nil

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
	s.rows = nil
}

// DisplayNoFiles prints the notice shown when discovery finds nothing.
func (s *SimpleUI) DisplayNoFiles() {
	s.printf("No files found\n")
}

// DisplayResult prints one line per file, or buffers it in list mode.
func (s *SimpleUI) DisplayResult(result m.ChangeResult) {
	if s.mode == ModeList {
		s.rows = append(s.rows, result)
		return
	}

	s.printf("%s\n", result)
}

// DisplayError reports a file that could not be processed.
func (s *SimpleUI) DisplayError(path m.Path, err error) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s: error: %v\n", path.Base(), err)
}

// DisplaySummary prints the number of changed files. In list mode the
// buffered rows are rendered as a table with the count in the footer.
func (s *SimpleUI) DisplaySummary(changes int) error {
	if s.mode != ModeList {
		s.printf("%s: %d\n", summaryLabel(s.mode), changes)
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Outcome"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, row := range s.rows {
		table.Append([]string{row.Name, row.Outcome.String()})
	}

	table.SetFooter([]string{
		summaryLabel(s.mode),
		fmt.Sprintf("%d", changes),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
