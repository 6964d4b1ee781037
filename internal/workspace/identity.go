package workspace

import (
	"strconv"
	"strings"
)

const (
	// NoNumber is the value the window manager reports for workspaces
	// without a numeric slot.
	NoNumber = -1

	// LabelSeparator joins the number and name parts of a workspace label.
	LabelSeparator = ": "
)

// Identity addresses a workspace by its optional slot number and optional name.
// Output, Visible and Focused are only set for workspaces read from a snapshot.
type Identity struct {
	Number  *int
	Name    *string
	Output  *string
	Visible bool
	Focused bool
}

// Named returns a target identity carrying only a name.
func Named(name string) Identity {
	return Identity{Name: &name}
}

// Numbered returns a target identity carrying only a slot number.
func Numbered(n int) Identity {
	return Identity{Number: &n}
}

// New returns a target identity with both fields copied from the given
// optionals. Nil pointers stay unset.
func New(number *int, name *string) Identity {
	var id Identity
	if number != nil {
		n := *number
		id.Number = &n
	}
	if name != nil {
		s := *name
		id.Name = &s
	}
	return id
}

// Decode splits a raw (number, label) pair reported by the window manager
// into an identity. The label is split on the first ": " only.
func Decode(rawNumber int, rawLabel string) Identity {
	parts := strings.SplitN(rawLabel, LabelSeparator, 2)

	if len(parts) == 1 {
		if rawLabel == strconv.Itoa(rawNumber) && rawNumber != NoNumber {
			return Numbered(rawNumber)
		}
		return Named(rawLabel)
	}

	if parts[0] == strconv.Itoa(NoNumber) {
		return Named(parts[1])
	}

	id := Named(parts[1])
	id.Number = &rawNumber
	return id
}

// Existing decodes a workspace record from a snapshot, keeping its
// presentation state.
func Existing(rawNumber int, rawLabel, output string, visible, focused bool) Identity {
	id := Decode(rawNumber, rawLabel)
	id.Output = &output
	id.Visible = visible
	id.Focused = focused
	return id
}

// ID encodes the identity the way the window manager expects it inside
// commands: "<number>: <name>", "<number>" or "<name>".
func (w Identity) ID() string {
	parts := make([]string, 0, 2)
	if w.Number != nil {
		parts = append(parts, strconv.Itoa(*w.Number))
	}
	if w.Name != nil {
		parts = append(parts, *w.Name)
	}
	return strings.Join(parts, LabelSeparator)
}

// String implements fmt.Stringer.
func (w Identity) String() string {
	return w.ID()
}

// Addressable reports whether the identity can be named in a command.
func (w Identity) Addressable() bool {
	return w.Number != nil || w.Name != nil
}

// HasNumber reports whether the identity occupies slot n.
func (w Identity) HasNumber(n int) bool {
	return w.Number != nil && *w.Number == n
}

// HasName reports whether the identity is labelled name.
func (w Identity) HasName(name string) bool {
	return w.Name != nil && *w.Name == name
}

// Equal compares identities field by field, including presentation state.
func (w Identity) Equal(other Identity) bool {
	return equalPtr(w.Number, other.Number) &&
		equalPtr(w.Name, other.Name) &&
		equalPtr(w.Output, other.Output) &&
		w.Visible == other.Visible &&
		w.Focused == other.Focused
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
