package commands

import (
	"fmt"

	"github.com/dyluth/swayctl/internal/config"
	"github.com/dyluth/swayctl/internal/logger"
	"github.com/dyluth/swayctl/internal/printer"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

var (
	socketFlag  string
	configFlag  string
	dryRunFlag  bool
	verboseFlag bool

	// cfg is loaded once per invocation by the root PersistentPreRunE
	cfg *config.SwayctlConfig
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "swayctl",
	Short: "swayctl - Workspace controller for sway and i3",
	Long: `swayctl binds, renames, shows, moves and swaps workspaces of an
i3-compatible window manager.

Workspaces are addressed by an optional number and an optional name
("3: mail", "3" or "mail"). Every operation reads the current workspaces,
computes one batch of commands and submits it over the IPC socket found in
$SWAYSOCK or $I3SOCK.`,
	Version: version,
	// If no subcommand is specified, show help
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	PersistentPreRunE: loadConfig,
	// Enable strict flag parsing - unknown flags will cause an error
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing
	// We print formatted colored errors directly in the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&socketFlag, "socket", "", "IPC socket path (default $SWAYSOCK, then $I3SOCK)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default $XDG_CONFIG_HOME/swayctl/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRunFlag, "dry-run", "d", false, "Print the commands instead of running them")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log debug output to stderr")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	path, explicit := configFlag, configFlag != ""
	if !explicit {
		path = config.DefaultPath()
	}

	loaded, err := config.Load(path, explicit)
	if err != nil {
		return printer.ErrorWithContext(
			"invalid configuration",
			err.Error(),
			map[string]string{"Config": path},
			[]string{"Fix the file or pass another one with --config"},
		)
	}

	if socketFlag != "" {
		loaded.Socket = socketFlag
	}
	if dryRunFlag {
		loaded.DryRun = true
	}
	cfg = loaded

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	logger.SetDebug(verboseFlag)
	logger.With("invocation", uuid.NewString()[:8], "command", cmd.Name())

	logger.Debug("[swayctl] Loaded config from %s (socket=%q, dry_run=%t, timeout=%s)",
		path, cfg.Socket, cfg.DryRun, cfg.TimeoutDuration())
	return nil
}
