package ipc

import (
	"fmt"
	"strings"
)

// Workspace is one entry of a GET_WORKSPACES reply. Urgent is reported by the
// window manager but unused by swayctl.
type Workspace struct {
	Num     int    `json:"num"`
	Name    string `json:"name"`
	Output  string `json:"output"`
	Visible bool   `json:"visible"`
	Focused bool   `json:"focused"`
	Urgent  bool   `json:"urgent"`
}

// CommandResult is the outcome of one clause of a RUN_COMMAND batch.
type CommandResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Version is the GET_VERSION reply.
type Version struct {
	Major         int    `json:"major"`
	Minor         int    `json:"minor"`
	Patch         int    `json:"patch"`
	HumanReadable string `json:"human_readable"`
	ConfigFile    string `json:"loaded_config_file_name"`
}

// CommandError reports the first clause of a batch the window manager
// rejected. Clauses before Index were applied.
type CommandError struct {
	Index   int
	Clause  string
	Message string
}

func (e *CommandError) Error() string {
	if e.Clause == "" {
		return fmt.Sprintf("command %d failed: %s", e.Index+1, e.Message)
	}
	return fmt.Sprintf("command %d (%s) failed: %s", e.Index+1, e.Clause, e.Message)
}

// checkResults turns the first unsuccessful result into a *CommandError.
func checkResults(batch string, results []CommandResult) error {
	clauses := strings.Split(batch, "; ")
	for i, r := range results {
		if r.Success {
			continue
		}
		err := &CommandError{Index: i, Message: r.Error}
		if i < len(clauses) && len(clauses) == len(results) {
			err.Clause = clauses[i]
		}
		return err
	}
	return nil
}
