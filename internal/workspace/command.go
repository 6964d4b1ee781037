package workspace

import (
	"fmt"
	"strconv"
	"strings"
)

// BatchSeparator joins the clauses of a batch submitted in one IPC call.
const BatchSeparator = "; "

// Command is one clause understood by the window manager.
type Command string

// CommandList is an ordered batch of commands. Order matters: each clause
// observes the effects of the clauses before it.
type CommandList []Command

// String joins the batch into the single string submitted to the window
// manager.
func (l CommandList) String() string {
	parts := make([]string, len(l))
	for i, c := range l {
		parts[i] = string(c)
	}
	return strings.Join(parts, BatchSeparator)
}

// Empty reports whether there is nothing to submit.
func (l CommandList) Empty() bool {
	return len(l) == 0
}

// RenameTo renames the workspace src to dst, possibly changing its slot.
func RenameTo(src, dst Identity) Command {
	return Command(fmt.Sprintf("rename workspace %s to %s", src.ID(), dst.ID()))
}

// MoveContainer moves the focused container to the workspace.
func MoveContainer(dst Identity) Command {
	return Command(fmt.Sprintf("move container to workspace %s", dst.ID()))
}

// Focus switches to the workspace, by slot number when it has one.
func Focus(w Identity) Command {
	if w.Number != nil {
		return Command("workspace number " + strconv.Itoa(*w.Number))
	}
	return Command("workspace " + w.ID())
}

// MoveToOutput moves the focused workspace to the named output.
func MoveToOutput(output string) Command {
	return Command("move workspace to output " + output)
}
