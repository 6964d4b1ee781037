package workspace

import "errors"

var (
	// ErrNoFocusedWorkspace means the snapshot has no focused workspace.
	ErrNoFocusedWorkspace = errors.New("no focused workspace")

	// ErrDestinationUnaddressable means the slot to bind to is held by a
	// workspace without a name, which would be lost if its slot were taken.
	ErrDestinationUnaddressable = errors.New("the destination index is bound to a not named workspace")

	// ErrNameConflict means another workspace already uses the name.
	ErrNameConflict = errors.New("workspace name already in use")

	// ErrInvalidNumber means the slot number is the NoNumber sentinel.
	ErrInvalidNumber = errors.New("invalid workspace number")

	// ErrInvalidName means a name could not round-trip through a label.
	ErrInvalidName = errors.New("invalid workspace name")
)
