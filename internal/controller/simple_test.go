package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/mouse-blink/slugline/internal/model"
	"github.com/spf13/cobra"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func TestSimpleUI_ApplyMode(t *testing.T) {
	cmd, out, _ := newTestCommand()

	ui := NewSimpleUI(cmd)
	if err := ui.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.DisplayResult(m.ChangeResult{Name: "foo.py", Outcome: m.Inserted})
	ui.DisplayResult(m.ChangeResult{Name: "bar.py", Outcome: m.Unchanged})
	ui.DisplayResult(m.ChangeResult{Name: "baz.py", Outcome: m.Corrected})

	if err := ui.DisplaySummary(2); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	ui.Close()

	want := "foo.py: inserted\nbar.py: unchanged\nbaz.py: corrected\nNumber of changes: 2\n"
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestSimpleUI_CheckModeSummary(t *testing.T) {
	cmd, out, _ := newTestCommand()

	ui := NewSimpleUI(cmd)
	_ = ui.Start(WithCheckMode())
	ui.DisplayResult(m.ChangeResult{Name: "foo.py", Outcome: m.Inserted})
	_ = ui.DisplaySummary(1)

	want := "foo.py: inserted\nNumber of pending changes: 1\n"
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestSimpleUI_DisplayNoFiles(t *testing.T) {
	cmd, out, _ := newTestCommand()

	ui := NewSimpleUI(cmd)
	_ = ui.Start()
	ui.DisplayNoFiles()

	if got := out.String(); got != "No files found\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestSimpleUI_DisplayError(t *testing.T) {
	cmd, out, errOut := newTestCommand()

	ui := NewSimpleUI(cmd)
	_ = ui.Start()
	ui.DisplayError(m.Path("/src/foo.py"), errors.New("boom"))

	if out.Len() != 0 {
		t.Fatalf("stdout should stay empty, got %q", out.String())
	}

	if got := errOut.String(); got != "foo.py: error: boom\n" {
		t.Fatalf("stderr = %q", got)
	}
}

func TestSimpleUI_ListMode_PrintsTable(t *testing.T) {
	cmd, out, _ := newTestCommand()

	ui := NewSimpleUI(cmd)
	_ = ui.Start(WithListMode())

	ui.DisplayResult(m.ChangeResult{Name: "pkg/a.py", Outcome: m.Inserted})
	ui.DisplayResult(m.ChangeResult{Name: "pkg/b.py", Outcome: m.Unchanged})

	if out.Len() != 0 {
		t.Fatalf("list mode should buffer rows, got %q", out.String())
	}

	if err := ui.DisplaySummary(1); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	output := out.String()

	for _, want := range []string{
		"FILE",
		"OUTCOME",
		"pkg/a.py",
		"inserted",
		"pkg/b.py",
		"unchanged",
		"NUMBER OF PENDING CHANGES",
		"1",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}
