package commands

import (
	"github.com/dyluth/swayctl/internal/workspace"
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move <name>",
	Short: "Move a container to a workspace",
	Long: `Move the focused container to the workspace named <name>.
The workspace is created if it does not exist yet.`,
	Args: cobra.ExactArgs(1),
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	return runOperation(cmd.Context(), func(snap workspace.Snapshot) (workspace.CommandList, error) {
		return workspace.MoveTo(snap, args[0]), nil
	})
}
