package commands

import (
	"github.com/dyluth/swayctl/internal/workspace"
	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <name>",
	Short: "Rename a workspace",
	Long: `Rename the focused workspace, keeping its number.

The name must not be used by another workspace.`,
	Args: cobra.ExactArgs(1),
	RunE: runRename,
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	return runOperation(cmd.Context(), func(snap workspace.Snapshot) (workspace.CommandList, error) {
		return workspace.Rename(snap, args[0])
	})
}
