package commands

import (
	"fmt"
	"strconv"

	"github.com/dyluth/swayctl/internal/printer"
	"github.com/dyluth/swayctl/internal/workspace"
	"github.com/spf13/cobra"
)

var showByNameCmd = &cobra.Command{
	Use:     "show-by-name <name>",
	Aliases: []string{"show"},
	Short:   "Show a workspace by its name",
	Long: `Focus the workspace named <name> on the current output.

A workspace that does not exist yet is created. A workspace hidden on another
output is moved to the current one. A workspace already visible on another
output swaps outputs with the focused workspace.`,
	Args: cobra.ExactArgs(1),
	RunE: runShowByName,
}

var showByNumCmd = &cobra.Command{
	Use:   "show-by-num <num>",
	Short: "Show a workspace by its number",
	Long: `Focus the workspace with number <num> on the current output.

Behaves like show-by-name, addressing the workspace by number.`,
	Args: cobra.ExactArgs(1),
	RunE: runShowByNum,
}

func init() {
	rootCmd.AddCommand(showByNameCmd)
	rootCmd.AddCommand(showByNumCmd)
}

func runShowByName(cmd *cobra.Command, args []string) error {
	return runOperation(cmd.Context(), func(snap workspace.Snapshot) (workspace.CommandList, error) {
		return workspace.Show(snap, workspace.FindOrCreateByName(snap, args[0]))
	})
}

func runShowByNum(cmd *cobra.Command, args []string) error {
	num, err := strconv.Atoi(args[0])
	if err != nil || num < 0 {
		return printer.Error(
			"invalid workspace number",
			fmt.Sprintf("%q is not a workspace number.", args[0]),
			[]string{"Usage:\n  swayctl show-by-num <num>"},
		)
	}

	return runOperation(cmd.Context(), func(snap workspace.Snapshot) (workspace.CommandList, error) {
		return workspace.Show(snap, workspace.FindOrCreateByNumber(snap, num))
	})
}
