// Package ipctest provides an in-process i3-ipc server for tests.
package ipctest

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/dyluth/swayctl/internal/ipc"
)

// Server answers GET_WORKSPACES, GET_VERSION and RUN_COMMAND on a Unix socket
// and records every batch it receives.
type Server struct {
	ln   net.Listener
	path string

	mu         sync.Mutex
	workspaces []ipc.Workspace
	version    ipc.Version
	batches    []string
	failure    string
}

// NewServer starts a server reporting the given workspaces. It is closed when
// the test ends.
func NewServer(t testing.TB, workspaces []ipc.Workspace) *Server {
	t.Helper()

	// Unix socket paths are length limited, so stay out of t.TempDir().
	dir, err := os.MkdirTemp("", "swayctl")
	if err != nil {
		t.Fatalf("failed to create socket dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "ipc.sock")
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("failed to listen on %s: %v", path, err)
	}

	s := &Server{
		ln:         ln,
		path:       path,
		workspaces: workspaces,
		version: ipc.Version{
			Major:         1,
			Minor:         9,
			HumanReadable: "sway version 1.9",
		},
	}
	t.Cleanup(func() { ln.Close() })

	go s.serve()
	return s
}

// Path returns the socket path.
func (s *Server) Path() string {
	return s.path
}

// Batches returns every RUN_COMMAND payload received so far.
func (s *Server) Batches() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.batches...)
}

// FailCommands makes the last clause of every following batch fail with msg.
func (s *Server) FailCommands(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = msg
}

func (s *Server) serve() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	for {
		typ, payload, err := readMessage(conn)
		if err != nil {
			return
		}

		var reply any
		switch typ {
		case getWorkspaces:
			s.mu.Lock()
			reply = s.workspaces
			s.mu.Unlock()
		case getVersion:
			reply = s.version
		case runCommand:
			reply = s.run(string(payload))
		default:
			reply = map[string]any{"success": false, "error": "unsupported message"}
		}

		body, err := json.Marshal(reply)
		if err != nil {
			return
		}
		if err := writeMessage(conn, typ, body); err != nil {
			return
		}
	}
}

func (s *Server) run(batch string) []ipc.CommandResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.batches = append(s.batches, batch)

	clauses := strings.Split(batch, "; ")
	results := make([]ipc.CommandResult, len(clauses))
	for i := range results {
		results[i].Success = true
	}
	if s.failure != "" {
		last := len(results) - 1
		results[last] = ipc.CommandResult{Success: false, Error: s.failure}
	}
	return results
}
