package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/slugline/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSizedTUI(buf *bytes.Buffer, width, height int) *TUI {
	tui := NewTUI(buf)
	tui.size = func() (int, int, bool) { return width, height, true }

	return tui
}

func TestTUI_ApplyMode_StreamsStyledLines(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)
	require.NoError(t, tui.Start(WithApplyMode()))

	tui.DisplayResult(m.ChangeResult{Name: "a.py", Outcome: m.Unchanged})
	tui.DisplayResult(m.ChangeResult{Name: "b.py", Outcome: m.Corrected})
	tui.DisplayResult(m.ChangeResult{Name: "c.py", Outcome: m.Inserted})
	require.NoError(t, tui.DisplaySummary(2))
	tui.Close()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], iconUnchanged+" a.py: unchanged")
	assert.Contains(t, lines[1], iconCorrected+" b.py: corrected")
	assert.Contains(t, lines[2], iconInserted+" c.py: inserted")
	assert.Contains(t, lines[3], "Number of changes: 2")
}

func TestTUI_DisplayNoFilesAndError(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)
	require.NoError(t, tui.Start())

	tui.DisplayNoFiles()
	tui.DisplayError(m.Path("/src/pkg/bad.py"), errors.New("permission denied"))

	output := buf.String()
	assert.Contains(t, output, "No files found")
	assert.Contains(t, output, "bad.py: permission denied")
}

func TestTUI_ListMode_PrintsWhenItFits(t *testing.T) {
	var buf bytes.Buffer
	tui := newSizedTUI(&buf, 100, 40)
	tui.run = func(tea.Model) error {
		t.Fatal("small list should not start an interactive program")
		return nil
	}

	require.NoError(t, tui.Start(WithListMode()))
	tui.DisplayResult(m.ChangeResult{Name: "a.py", Outcome: m.Inserted})
	tui.DisplayResult(m.ChangeResult{Name: "b.py", Outcome: m.Unchanged})

	assert.Zero(t, buf.Len(), "list mode should buffer results")

	require.NoError(t, tui.DisplaySummary(1))

	output := buf.String()
	for _, want := range []string{"Slug lines", "a.py", "b.py", "inserted", "unchanged", "Pending changes"} {
		assert.Contains(t, output, want)
	}
}

func TestTUI_ListMode_PagesWhenTooTall(t *testing.T) {
	var buf bytes.Buffer
	tui := newSizedTUI(&buf, 80, 12)

	var ran tea.Model
	tui.run = func(model tea.Model) error {
		ran = model
		return nil
	}

	require.NoError(t, tui.Start(WithListMode()))
	for i := 0; i < 10; i++ {
		tui.DisplayResult(m.ChangeResult{Name: string(rune('a'+i)) + ".py", Outcome: m.Unchanged})
	}

	require.NoError(t, tui.DisplaySummary(0))

	model, ok := ran.(resultsModel)
	require.True(t, ok, "expected a resultsModel to be run, got %T", ran)
	assert.True(t, model.paged)
	assert.Equal(t, 10, model.total)
	assert.Zero(t, buf.Len())
}

func TestTUI_ListMode_RunError(t *testing.T) {
	var buf bytes.Buffer
	tui := newSizedTUI(&buf, 80, 5)
	boom := errors.New("no tty")
	tui.run = func(tea.Model) error { return boom }

	require.NoError(t, tui.Start(WithListMode()))
	tui.DisplayResult(m.ChangeResult{Name: "a.py", Outcome: m.Inserted})

	assert.ErrorIs(t, tui.DisplaySummary(1), boom)
}

func TestTUI_TerminalSize_NonFile(t *testing.T) {
	tui := NewTUI(&bytes.Buffer{})

	_, _, ok := tui.terminalSize()
	assert.False(t, ok)
}
