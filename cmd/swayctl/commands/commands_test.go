package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dyluth/swayctl/internal/ipc"
	"github.com/dyluth/swayctl/internal/ipc/ipctest"
	"github.com/dyluth/swayctl/internal/logger"
	"github.com/dyluth/swayctl/internal/printer"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureWorkspaces has two outputs: DP-1 shows the focused "1: mail",
// DP-2 shows "2: web".
func fixtureWorkspaces() []ipc.Workspace {
	return []ipc.Workspace{
		{Num: 1, Name: "1: mail", Output: "DP-1", Visible: true, Focused: true},
		{Num: 2, Name: "2: web", Output: "DP-2", Visible: true},
		{Num: 3, Name: "3: chat", Output: "DP-2"},
		{Num: 4, Name: "4", Output: "DP-1"},
		{Num: -1, Name: "notes", Output: "DP-1"},
	}
}

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs the root command against srv with fresh flag values and no
// user config file.
func execute(t *testing.T, srv *ipctest.Server, args ...string) result {
	t.Helper()

	socketFlag, configFlag, dryRunFlag, verboseFlag = "", "", false, false
	listLong, listJSON = false, false
	cfg = nil

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("I3SOCK", "")
	if srv != nil {
		t.Setenv("SWAYSOCK", srv.Path())
	} else {
		t.Setenv("SWAYSOCK", "")
	}

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	prevOut, prevErr, prevNoColor := printer.Stdout, printer.Stderr, color.NoColor
	printer.Stdout, printer.Stderr, color.NoColor = stdout, stderr, true
	t.Cleanup(func() {
		printer.Stdout, printer.Stderr, color.NoColor = prevOut, prevErr, prevNoColor
	})

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	// A nil slice would make cobra fall back to os.Args
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	err := rootCmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestBindCommand(t *testing.T) {
	t.Run("swaps with a named workspace", func(t *testing.T) {
		srv := ipctest.NewServer(t, fixtureWorkspaces())
		res := execute(t, srv, "bind", "2")
		require.NoError(t, res.err)
		assert.Equal(t, []string{
			"rename workspace 2: web to internal-tmp-swapping; " +
				"rename workspace 1: mail to 2: mail; " +
				"rename workspace internal-tmp-swapping to 1: web",
		}, srv.Batches())
	})

	t.Run("free slot", func(t *testing.T) {
		srv := ipctest.NewServer(t, fixtureWorkspaces())
		res := execute(t, srv, "bind", "9")
		require.NoError(t, res.err)
		assert.Equal(t, []string{"rename workspace 1: mail to 9: mail"}, srv.Batches())
	})

	t.Run("already bound submits nothing", func(t *testing.T) {
		srv := ipctest.NewServer(t, fixtureWorkspaces())
		res := execute(t, srv, "bind", "1")
		require.NoError(t, res.err)
		assert.Empty(t, srv.Batches())
	})

	t.Run("refuses an unnamed destination", func(t *testing.T) {
		srv := ipctest.NewServer(t, fixtureWorkspaces())
		res := execute(t, srv, "bind", "4")
		require.Error(t, res.err)
		assert.Equal(t, "the destination index is bound to a not named workspace", res.err.Error())
		assert.Contains(t, res.stderr, "swayctl rename <name>")
		assert.Empty(t, srv.Batches())
	})

	t.Run("rejects a non-numeric index", func(t *testing.T) {
		srv := ipctest.NewServer(t, fixtureWorkspaces())
		res := execute(t, srv, "bind", "two")
		require.Error(t, res.err)
		assert.Equal(t, "invalid workspace number", res.err.Error())
		assert.Empty(t, srv.Batches())
	})
}

func TestRenameCommand(t *testing.T) {
	srv := ipctest.NewServer(t, fixtureWorkspaces())

	res := execute(t, srv, "rename", "inbox")
	require.NoError(t, res.err)

	res = execute(t, srv, "rename", "notes")
	require.Error(t, res.err)
	assert.Equal(t, "workspace name already in use", res.err.Error())
	assert.Contains(t, res.stderr, "a workspace named notes already exists")

	assert.Equal(t, []string{"rename workspace 1: mail to 1: inbox"}, srv.Batches())
}

func TestShowCommands(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "hidden workspace on another output",
			args: []string{"show-by-name", "chat"},
			want: []string{"workspace number 3; move workspace to output DP-1"},
		},
		{
			name: "show alias",
			args: []string{"show", "notes"},
			want: []string{"workspace notes"},
		},
		{
			name: "visible workspace swaps outputs",
			args: []string{"show-by-num", "2"},
			want: []string{"move workspace to output DP-2; workspace number 2; move workspace to output DP-1"},
		},
		{
			name: "new workspace by number",
			args: []string{"show-by-num", "8"},
			want: []string{"workspace number 8"},
		},
		{
			name: "focused workspace is a no-op",
			args: []string{"show", "mail"},
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := ipctest.NewServer(t, fixtureWorkspaces())
			res := execute(t, srv, tc.args...)
			require.NoError(t, res.err)
			assert.Equal(t, tc.want, srv.Batches())
		})
	}
}

func TestShowByNum_RejectsInvalidNumber(t *testing.T) {
	srv := ipctest.NewServer(t, fixtureWorkspaces())
	res := execute(t, srv, "show-by-num", "three")
	require.Error(t, res.err)
	assert.Equal(t, "invalid workspace number", res.err.Error())
}

func TestMoveCommand(t *testing.T) {
	srv := ipctest.NewServer(t, fixtureWorkspaces())
	res := execute(t, srv, "move", "web")
	require.NoError(t, res.err)
	assert.Equal(t, []string{"move container to workspace 2: web"}, srv.Batches())
}

func TestSwapCommand(t *testing.T) {
	srv := ipctest.NewServer(t, fixtureWorkspaces())
	res := execute(t, srv, "swap")
	require.NoError(t, res.err)
	assert.Equal(t, []string{
		"move workspace to output DP-2; workspace number 2; move workspace to output DP-1",
	}, srv.Batches())

	single := ipctest.NewServer(t, fixtureWorkspaces()[:1])
	res = execute(t, single, "swap")
	require.NoError(t, res.err)
	assert.Empty(t, single.Batches())
}

func TestListCommand(t *testing.T) {
	t.Run("names only", func(t *testing.T) {
		srv := ipctest.NewServer(t, fixtureWorkspaces())
		res := execute(t, srv, "list")
		require.NoError(t, res.err)
		assert.Equal(t, "chat\nmail\nnotes\nweb\n", res.stdout)
	})

	t.Run("json", func(t *testing.T) {
		srv := ipctest.NewServer(t, fixtureWorkspaces())
		res := execute(t, srv, "list", "--json")
		require.NoError(t, res.err)

		var infos []workspaceInfo
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &infos))
		require.Len(t, infos, 5)
		assert.Equal(t, "mail", infos[0].Name)
		assert.True(t, infos[0].Focused)
		assert.Equal(t, "", infos[3].Name, "number-only workspace has no name")
		assert.Nil(t, infos[4].Number)
		assert.Equal(t, "notes", infos[4].Name)
	})

	t.Run("long", func(t *testing.T) {
		srv := ipctest.NewServer(t, fixtureWorkspaces())
		res := execute(t, srv, "list", "--long")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "chat")
		assert.Contains(t, res.stdout, "DP-2")
		assert.Contains(t, res.stdout, "focused")
	})
}

func TestDryRun(t *testing.T) {
	srv := ipctest.NewServer(t, fixtureWorkspaces())
	res := execute(t, srv, "--dry-run", "bind", "9")
	require.NoError(t, res.err)
	assert.Equal(t, "I would have run: rename workspace 1: mail to 9: mail\n", res.stdout)
	assert.Empty(t, srv.Batches())
}

func TestDryRunFromConfig(t *testing.T) {
	srv := ipctest.NewServer(t, fixtureWorkspaces())
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("version: \"1.0\"\ndry_run: true\n"), 0644))

	res := execute(t, srv, "--config", configPath, "move", "music")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "move container to workspace music")
	assert.Empty(t, srv.Batches())
}

func TestInvalidConfig(t *testing.T) {
	srv := ipctest.NewServer(t, fixtureWorkspaces())
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("timeout: never\n"), 0644))

	res := execute(t, srv, "--config", configPath, "list")
	require.Error(t, res.err)
	assert.Equal(t, "invalid configuration", res.err.Error())
	assert.Contains(t, res.stderr, "invalid timeout")
}

func TestNoSocket(t *testing.T) {
	res := execute(t, nil, "list")
	require.Error(t, res.err)
	assert.Equal(t, "no window manager socket found", res.err.Error())
	assert.Contains(t, res.stderr, "--socket")
}

func TestSocketFlag(t *testing.T) {
	srv := ipctest.NewServer(t, fixtureWorkspaces())
	res := execute(t, nil, "--socket", srv.Path(), "move", "mail")
	require.NoError(t, res.err)
	assert.Equal(t, []string{"move container to workspace 1: mail"}, srv.Batches())
}

func TestRejectedCommand(t *testing.T) {
	srv := ipctest.NewServer(t, fixtureWorkspaces())
	srv.FailCommands("No output matched")

	res := execute(t, srv, "show", "chat")
	require.Error(t, res.err)
	assert.Equal(t, "the window manager rejected a command", res.err.Error())
	assert.Contains(t, res.stderr, "No output matched")
	assert.Contains(t, res.stderr, "Command: move workspace to output DP-1")
}

func TestVersionCommand(t *testing.T) {
	srv := ipctest.NewServer(t, fixtureWorkspaces())
	res := execute(t, srv, "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "sway version 1.9")
}

func TestSnapshotOf(t *testing.T) {
	snap := snapshotOf(fixtureWorkspaces())
	require.Len(t, snap, 5)
	assert.Equal(t, "1: mail", snap[0].ID())
	assert.Equal(t, "4", snap[3].ID())
	assert.Equal(t, "notes", snap[4].ID())
	assert.Equal(t, "DP-2", *snap[1].Output)
}

func TestRenameCommand_SeparatorInName(t *testing.T) {
	srv := ipctest.NewServer(t, fixtureWorkspaces())

	res := execute(t, srv, "rename", "a: b")
	require.NoError(t, res.err)
	assert.Equal(t, []string{"rename workspace 1: mail to 1: a: b"}, srv.Batches())
}

func TestVerboseLogging_OneInvocationPerRecord(t *testing.T) {
	srv := ipctest.NewServer(t, fixtureWorkspaces())
	logs := new(bytes.Buffer)
	logger.SetOutput(logs)
	t.Cleanup(func() {
		logger.SetOutput(io.Discard)
		logger.SetLevel(slog.LevelWarn)
	})

	require.NoError(t, execute(t, srv, "--verbose", "list").err)
	require.NoError(t, execute(t, srv, "--verbose", "swap").err)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, 1, strings.Count(line, "invocation="), line)
		assert.Equal(t, 1, strings.Count(line, "command="), line)
	}
	assert.Contains(t, lines[len(lines)-1], "command=swap")
}
