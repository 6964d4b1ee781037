package workspace

import (
	"fmt"
	"sort"
	"strings"
)

// SwapName is the temporary name a workspace holds while its slot is handed
// over during Bind.
const SwapName = "internal-tmp-swapping"

// Snapshot is the list of workspaces reported by the window manager for one
// invocation.
type Snapshot []Identity

// Current returns the focused workspace.
func (s Snapshot) Current() (Identity, error) {
	for _, w := range s {
		if w.Focused {
			return w, nil
		}
	}
	return Identity{}, ErrNoFocusedWorkspace
}

// ByNumber returns the workspace occupying slot n, if any.
func (s Snapshot) ByNumber(n int) (Identity, bool) {
	for _, w := range s {
		if w.HasNumber(n) {
			return w, true
		}
	}
	return Identity{}, false
}

// ByName returns the workspace labelled name, if any.
func (s Snapshot) ByName(name string) (Identity, bool) {
	for _, w := range s {
		if w.HasName(name) {
			return w, true
		}
	}
	return Identity{}, false
}

// Visible returns the workspaces currently displayed on some output.
func (s Snapshot) Visible() []Identity {
	var visible []Identity
	for _, w := range s {
		if w.Visible {
			visible = append(visible, w)
		}
	}
	return visible
}

// FindOrCreateByName returns the workspace labelled name, or a new target
// carrying only that name.
func FindOrCreateByName(s Snapshot, name string) Identity {
	if w, ok := s.ByName(name); ok {
		return w
	}
	return Named(name)
}

// FindOrCreateByNumber returns the workspace in slot n, or a new target
// carrying only that number.
func FindOrCreateByNumber(s Snapshot, n int) Identity {
	if w, ok := s.ByNumber(n); ok {
		return w
	}
	return Numbered(n)
}

// Bind moves the focused workspace to slot to, keeping its name. If another
// workspace holds the slot, the two exchange slots:
//
//  1. the holder is renamed to SwapName, freeing the slot
//  2. the focused workspace takes the slot
//  3. the holder takes the focused workspace's former slot under its own name
//
// A holder without a name is refused with ErrDestinationUnaddressable, since
// step 3 would leave it with neither a number nor a name.
func Bind(s Snapshot, to int) (CommandList, error) {
	if to == NoNumber {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNumber, to)
	}

	current, err := s.Current()
	if err != nil {
		return nil, err
	}

	if current.HasNumber(to) {
		return nil, nil
	}

	target := New(&to, current.Name)

	dest, occupied := s.ByNumber(to)
	if !occupied {
		return CommandList{RenameTo(current, target)}, nil
	}

	if dest.Name == nil {
		return nil, fmt.Errorf("%w: slot %d", ErrDestinationUnaddressable, to)
	}

	tmp := Named(SwapName)
	swapped := New(current.Number, dest.Name)

	return CommandList{
		RenameTo(dest, tmp),
		RenameTo(current, target),
		RenameTo(tmp, swapped),
	}, nil
}

// Rename gives the focused workspace a new name, keeping its slot.
func Rename(s Snapshot, name string) (CommandList, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	current, err := s.Current()
	if err != nil {
		return nil, err
	}

	// Without a number the label is the name alone, and a separator in it
	// would read back as a number prefix.
	if current.Number == nil && strings.Contains(name, LabelSeparator) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	for _, w := range s {
		if w.Focused {
			continue
		}
		if w.HasName(name) {
			return nil, fmt.Errorf("%w: a workspace named %s already exists", ErrNameConflict, name)
		}
	}

	renamed := New(current.Number, &name)
	return CommandList{RenameTo(current, renamed)}, nil
}

// MoveTo sends the focused container to the workspace labelled name,
// creating it if needed.
func MoveTo(s Snapshot, name string) CommandList {
	return CommandList{MoveContainer(FindOrCreateByName(s, name))}
}

// Show focuses target on the output of the focused workspace. A target that
// is already visible elsewhere swaps outputs with the focused workspace.
func Show(s Snapshot, target Identity) (CommandList, error) {
	current, err := s.Current()
	if err != nil {
		return nil, err
	}

	if target.Equal(current) {
		return nil, nil
	}

	if target.Visible {
		return SwapWith(current, target), nil
	}
	return ShowOn(target, current.Output), nil
}

// ShowOn focuses w and, when both w's output and output are known and
// differ, moves it to output.
func ShowOn(w Identity, output *string) CommandList {
	cmds := CommandList{Focus(w)}
	if w.Output != nil && output != nil && *w.Output != *output {
		cmds = append(cmds, MoveToOutput(*output))
	}
	return cmds
}

// SwapWith exchanges the outputs of the focused workspace a and the visible
// workspace b without touching either identity.
func SwapWith(a, b Identity) CommandList {
	cmds := CommandList{MoveToOutput(deref(b.Output))}
	cmds = append(cmds, ShowOn(b, nil)...)
	cmds = append(cmds, MoveToOutput(deref(a.Output)))
	return cmds
}

// Swap exchanges the outputs of the two visible workspaces. It does nothing
// unless exactly two workspaces are visible.
func Swap(s Snapshot) (CommandList, error) {
	visible := s.Visible()
	if len(visible) != 2 {
		return nil, nil
	}

	switch {
	case visible[0].Focused:
		return SwapWith(visible[0], visible[1]), nil
	case visible[1].Focused:
		return SwapWith(visible[1], visible[0]), nil
	default:
		return nil, ErrNoFocusedWorkspace
	}
}

// List returns the names of all named workspaces in lexicographic order.
func List(s Snapshot) []string {
	names := make([]string, 0, len(s))
	for _, w := range s {
		if w.Name != nil {
			names = append(names, *w.Name)
		}
	}
	sort.Strings(names)
	return names
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
