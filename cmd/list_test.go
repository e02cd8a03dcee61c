package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/slugline/internal/adapter"
	"github.com/mouse-blink/slugline/internal/controller"
	"github.com/mouse-blink/slugline/internal/domain"
	domainmocks "github.com/mouse-blink/slugline/internal/domain/mocks"
	m "github.com/mouse-blink/slugline/internal/model"
)

func TestListCmd_IsDryRunTable(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Enforce(domain.EnforceArgs{
		Paths: []m.Path{"."},
		List:  true,
	}).Return(nil)

	cmd := newTestRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_WithFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("Enforce", mock.MatchedBy(func(args domain.EnforceArgs) bool {
		return args.List &&
			args.Recursive &&
			args.FullPath &&
			len(args.Exclude) == 1 && args.Exclude[0] == "^vendor/" &&
			len(args.Paths) == 1 && args.Paths[0] == m.Path("./src")
	})).Return(nil)

	cmd := newTestRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetArgs([]string{"list", "-r", "-f", "-x", "^vendor/", "./src"})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	foo := filepath.Join(dir, "foo.py")
	require.NoError(t, os.WriteFile(foo, []byte("print(1)\n"), 0o644))

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	fs := adapter.NewLocalSourceFSAdapter()
	useWorkflow(t, domain.NewWorkflow(fs, controller.NewSimpleUI(cmd), domain.NewEnforcer(fs, nil), nil))

	cmd.SetArgs([]string{"list", dir})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrChangesPending)

	assert.Contains(t, out.String(), "foo.py")
	assert.Contains(t, out.String(), "inserted")

	content, err := os.ReadFile(foo)
	require.NoError(t, err)
	assert.Equal(t, "print(1)\n", string(content), "list must not write")
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, listLongDescription, cmd.Long)

	for _, name := range []string{"recursive", "full-path", "exclude"} {
		assert.NotNilf(t, cmd.Flags().Lookup(name), "missing --%s flag", name)
	}
}
