// Package workspace decodes i3/sway workspace labels into identities and
// computes the command batches that rearrange them.
//
// # Identities
//
// The window manager reports each workspace as a numeric field plus a display
// label. A label is "<number>: <name>" when both are set, a bare number when
// only a number is set, and a bare name otherwise. The number -1 means "no
// number" and is never surfaced as a real slot.
//
// An Identity holds the decoded number and name as independent optionals.
// Identities read from a snapshot also carry their output and visibility;
// identities synthesized as targets (a name the user typed, a slot to bind
// to) do not.
//
// # Operations
//
// Bind, Rename, Show, MoveTo, Swap and List are pure functions over a Snapshot.
// They never talk to the window manager: they return an ordered CommandList
// which the caller submits as one batch. The window manager applies a batch
// clause by clause, so later commands may rely on slots or outputs freed by
// earlier ones.
//
//	snap := workspace.Snapshot{
//		workspace.Existing(1, "1: mail", "DP-1", true, true),
//		workspace.Existing(2, "2: web", "DP-1", false, false),
//	}
//	cmds, err := workspace.Bind(snap, 2)
//	// cmds.String():
//	// rename workspace 2: web to internal-tmp-swapping;
//	// rename workspace 1: mail to 2: mail;
//	// rename workspace internal-tmp-swapping to 1: web
//
// All failures are detected from the snapshot before any command is built, so
// an error never comes with a partial batch.
package workspace
