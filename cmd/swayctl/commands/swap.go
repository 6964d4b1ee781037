package commands

import (
	"github.com/dyluth/swayctl/internal/workspace"
	"github.com/spf13/cobra"
)

var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Swap visible workspaces",
	Long: `Exchange the outputs of the two visible workspaces.

Does nothing unless exactly two workspaces are visible.`,
	Args: cobra.NoArgs,
	RunE: runSwap,
}

func init() {
	rootCmd.AddCommand(swapCmd)
}

func runSwap(cmd *cobra.Command, args []string) error {
	return runOperation(cmd.Context(), workspace.Swap)
}
