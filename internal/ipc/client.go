package ipc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	sway "github.com/joshuarubin/go-sway"
)

// ErrNoSocket means no socket path was given and neither SWAYSOCK nor I3SOCK
// is set.
var ErrNoSocket = errors.New("no window manager socket found")

// SocketPath resolves the socket to connect to: explicit wins, then
// $SWAYSOCK, then $I3SOCK.
func SocketPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, env := range []string{"SWAYSOCK", "I3SOCK"} {
		if p := os.Getenv(env); p != "" {
			return p, nil
		}
	}
	return "", ErrNoSocket
}

// Client talks to the window manager over its IPC socket. The same protocol
// is spoken by sway and i3.
type Client struct {
	sway   sway.Client
	path   string
	cancel context.CancelFunc
}

// Dial connects to the window manager socket at path.
func Dial(ctx context.Context, path string) (*Client, error) {
	// go-sway drops the connection once the context given to New is done, so
	// the connection gets a context of its own that ends with Close.
	connCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	sc, err := sway.New(connCtx, sway.WithSocketPath(path))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to connect to %s: %w", path, err)
	}
	return &Client{sway: sc, path: path, cancel: cancel}, nil
}

// Path returns the socket path the client is connected to.
func (c *Client) Path() string {
	return c.path
}

// Close closes the connection. Implements io.Closer.
func (c *Client) Close() error {
	defer c.cancel()
	if closer, ok := c.sway.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// GetWorkspaces returns the current workspace snapshot.
func (c *Client) GetWorkspaces(ctx context.Context) ([]Workspace, error) {
	replies, err := c.sway.GetWorkspaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("GET_WORKSPACES failed: %w", err)
	}

	ws := make([]Workspace, 0, len(replies))
	for _, r := range replies {
		ws = append(ws, Workspace{
			Num:     int(r.Num),
			Name:    r.Name,
			Output:  r.Output,
			Visible: r.Visible,
			Focused: r.Focused,
			Urgent:  r.Urgent,
		})
	}
	return ws, nil
}

// RunCommand submits a batch of "; "-separated commands. The window manager
// applies them in order. A rejected clause is reported as *CommandError
// alongside the full result list.
func (c *Client) RunCommand(ctx context.Context, batch string) ([]CommandResult, error) {
	replies, err := c.sway.RunCommand(ctx, batch)

	results := make([]CommandResult, 0, len(replies))
	for _, r := range replies {
		results = append(results, CommandResult{Success: r.Success, Error: r.Error})
	}
	if cmdErr := checkResults(batch, results); cmdErr != nil {
		return results, cmdErr
	}
	if err != nil {
		return nil, fmt.Errorf("RUN_COMMAND failed: %w", err)
	}
	return results, nil
}

// GetVersion returns the window manager version.
func (c *Client) GetVersion(ctx context.Context) (Version, error) {
	v, err := c.sway.GetVersion(ctx)
	if err != nil {
		return Version{}, fmt.Errorf("GET_VERSION failed: %w", err)
	}
	return Version{
		Major:         int(v.Major),
		Minor:         int(v.Minor),
		Patch:         int(v.Patch),
		HumanReadable: v.HumanReadable,
		ConfigFile:    v.LoadedConfigFileName,
	}, nil
}
