package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/slugline/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listRecursiveFlag bool
var listFullPathFlag bool
var listExcludeFlags []string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List files and the change each one needs",
		Long:  listLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Enforce(domain.EnforceArgs{
				Paths:     parsePaths(args),
				Recursive: listRecursiveFlag,
				FullPath:  listFullPathFlag,
				Exclude:   listExcludeFlags,
				List:      true,
			})
		},
	}
	cmd.Flags().BoolVarP(&listRecursiveFlag, "recursive", "r", false, "search subdirectories for files")
	cmd.Flags().BoolVarP(&listFullPathFlag, "full-path", "f", false, "compare against the file's full path instead of its base name")
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
