package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/dyluth/swayctl/internal/ipc"
	"github.com/dyluth/swayctl/internal/logger"
	"github.com/dyluth/swayctl/internal/printer"
	"github.com/dyluth/swayctl/internal/workspace"
)

// session is one connection to the window manager plus the workspace
// snapshot taken when it was opened.
type session struct {
	client   *ipc.Client
	snapshot workspace.Snapshot
}

// openSession connects to the window manager and reads the workspaces.
func openSession(ctx context.Context) (*session, error) {
	client, err := connect(ctx)
	if err != nil {
		return nil, err
	}

	records, err := client.GetWorkspaces(ctx)
	if err != nil {
		client.Close()
		return nil, printer.ErrorWithContext(
			"failed to read workspaces",
			err.Error(),
			map[string]string{"Socket": client.Path()},
			[]string{"Check that the window manager is still running"},
		)
	}
	logger.Debug("[swayctl] Read %d workspaces", len(records))

	return &session{client: client, snapshot: snapshotOf(records)}, nil
}

func connect(ctx context.Context) (*ipc.Client, error) {
	path, err := ipc.SocketPath(cfg.Socket)
	if err != nil {
		return nil, printer.Error(
			"no window manager socket found",
			"Neither $SWAYSOCK nor $I3SOCK is set and no socket was configured.",
			[]string{
				"Run swayctl from inside a sway or i3 session",
				"Pass the socket explicitly:\n     swayctl --socket /run/user/$UID/sway-ipc.$UID.$PID.sock <command>",
			},
		)
	}

	client, err := ipc.Dial(ctx, path)
	if err != nil {
		return nil, printer.ErrorWithContext(
			"could not connect to the window manager",
			err.Error(),
			map[string]string{"Socket": path},
			[]string{"Check that sway or i3 is running and the socket path is current"},
		)
	}
	logger.Debug("[swayctl] Connected to %s", path)
	return client, nil
}

func (s *session) Close() error {
	return s.client.Close()
}

// submit sends the batch as a single RUN_COMMAND, or prints it in dry-run
// mode. An empty batch does nothing.
func (s *session) submit(ctx context.Context, cmds workspace.CommandList) error {
	if cmds.Empty() {
		logger.Debug("[swayctl] Nothing to do")
		return nil
	}

	batch := cmds.String()
	if cfg.DryRun {
		printer.DryRun(batch)
		return nil
	}

	logger.Debug("[swayctl] Running %d commands: %s", len(cmds), batch)
	if _, err := s.client.RunCommand(ctx, batch); err != nil {
		var cmdErr *ipc.CommandError
		if errors.As(err, &cmdErr) {
			logger.Warn("[swayctl] Batch rejected at command %d: %s", cmdErr.Index+1, cmdErr.Message)
			return printer.ErrorWithContext(
				"the window manager rejected a command",
				cmdErr.Message,
				map[string]string{
					"Command": cmdErr.Clause,
					"Batch":   batch,
				},
				[]string{"Commands before the rejected one were already applied"},
			)
		}
		return fmt.Errorf("failed to run commands: %w", err)
	}
	return nil
}

// snapshotOf decodes the GET_WORKSPACES records.
func snapshotOf(records []ipc.Workspace) workspace.Snapshot {
	snap := make(workspace.Snapshot, 0, len(records))
	for _, r := range records {
		snap = append(snap, workspace.Existing(r.Num, r.Name, r.Output, r.Visible, r.Focused))
	}
	return snap
}

// operationError turns a workspace operation error into a printed error.
func operationError(err error) error {
	switch {
	case errors.Is(err, workspace.ErrNoFocusedWorkspace):
		return printer.Error(
			"no focused workspace",
			"The window manager reported no focused workspace.",
			nil,
		)
	case errors.Is(err, workspace.ErrDestinationUnaddressable):
		return printer.Error(
			"the destination index is bound to a not named workspace",
			fmt.Sprintf("Taking its slot would leave that workspace with neither a number nor a name (%v).", err),
			[]string{"Give it a name first:\n  swayctl show-by-num <n>\n  swayctl rename <name>"},
		)
	case errors.Is(err, workspace.ErrNameConflict):
		return printer.Error(
			"workspace name already in use",
			err.Error(),
			[]string{"Pick another name, or see the names in use:\n  swayctl list"},
		)
	case errors.Is(err, workspace.ErrInvalidNumber), errors.Is(err, workspace.ErrInvalidName):
		return printer.Error(
			"invalid argument",
			err.Error(),
			nil,
		)
	default:
		return err
	}
}

// runOperation opens a session, computes the batch and submits it.
func runOperation(ctx context.Context, op func(workspace.Snapshot) (workspace.CommandList, error)) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.TimeoutDuration())
	defer cancel()

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	cmds, err := op(s.snapshot)
	if err != nil {
		return operationError(err)
	}
	return s.submit(ctx, cmds)
}
