package commands

import (
	"context"

	"github.com/dyluth/swayctl/internal/printer"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show swayctl and window manager versions",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	printer.Info("swayctl %s\n", rootCmd.Version)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.TimeoutDuration())
	defer cancel()

	client, err := connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	v, err := client.GetVersion(ctx)
	if err != nil {
		return printer.ErrorWithContext(
			"failed to query the window manager version",
			err.Error(),
			map[string]string{"Socket": client.Path()},
			nil,
		)
	}
	printer.Info("%s\n", v.HumanReadable)
	return nil
}
