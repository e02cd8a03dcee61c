// Package cmd provides the root command and CLI setup for slugline.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mouse-blink/slugline/internal/adapter"
	"github.com/mouse-blink/slugline/internal/controller"
	"github.com/mouse-blink/slugline/internal/domain"
	m "github.com/mouse-blink/slugline/internal/model"
)

var logLevel = zap.NewAtomicLevelAt(zapcore.WarnLevel)
var logger *zap.Logger
var fsAdapter adapter.SourceFSAdapter
var enforcer domain.Enforcer
var workflow domain.Workflow
var ui controller.UI

func init() {
	logger = newLogger(logLevel)
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	enforcer = domain.NewEnforcer(fsAdapter, logger.Named("enforcer"))
	workflow = domain.NewWorkflow(fsAdapter, ui, enforcer, logger.Named("workflow"))
}

var recursiveFlag bool
var fullPathFlag bool
var checkFlag bool
var keepGoingFlag bool
var verboseFlag bool
var excludeFlags []string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "slugline [paths...]",
		Short:        "Keep a slug line naming each Python file at its top",
		Long:         rootLongDescription,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logLevel.SetLevel(zapcore.DebugLevel)
			}
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Enforce(domain.EnforceArgs{
				Paths:     parsePaths(args),
				Recursive: recursiveFlag,
				FullPath:  fullPathFlag,
				Exclude:   excludeFlags,
				DryRun:    checkFlag,
				KeepGoing: keepGoingFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&recursiveFlag, "recursive", "r", false, "search subdirectories for files")
	cmd.Flags().BoolVarP(&fullPathFlag, "full-path", "f", false, "embed the file's full path instead of its base name")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().BoolVarP(&checkFlag, "check", "c", false, "report what would change without writing; exit 1 if anything would")
	cmd.Flags().BoolVarP(&keepGoingFlag, "keep-going", "k", false, "report files that fail and continue with the rest")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every decision to stderr")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// newLogger builds the stderr logger. Build errors fall back to a no-op
// logger so a broken sink never blocks the run.
func newLogger(level zap.AtomicLevel) *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = level
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true

	built, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}

	return built
}
