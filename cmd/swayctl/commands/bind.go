package commands

import (
	"fmt"
	"strconv"

	"github.com/dyluth/swayctl/internal/printer"
	"github.com/dyluth/swayctl/internal/workspace"
	"github.com/spf13/cobra"
)

var bindCmd = &cobra.Command{
	Use:   "bind <to>",
	Short: "Bind a workspace to an index. The destination workspace must have a name",
	Long: `Bind the focused workspace to the number <to>, keeping its name.

If another workspace already holds <to>, the two workspaces exchange numbers:
the other workspace moves to the focused workspace's former number (or loses
its number if the focused workspace had none). This is refused when the other
workspace has no name, since it would become unreachable.

Examples:
  # "mail" is focused on 5; make it workspace 1
  swayctl bind 1`,
	Args: cobra.ExactArgs(1),
	RunE: runBind,
}

func init() {
	rootCmd.AddCommand(bindCmd)
}

func runBind(cmd *cobra.Command, args []string) error {
	to, err := strconv.Atoi(args[0])
	if err != nil {
		return printer.Error(
			"invalid workspace number",
			fmt.Sprintf("%q is not a number.", args[0]),
			[]string{"Usage:\n  swayctl bind <to>"},
		)
	}

	return runOperation(cmd.Context(), func(snap workspace.Snapshot) (workspace.CommandList, error) {
		return workspace.Bind(snap, to)
	})
}
