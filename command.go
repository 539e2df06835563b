// Package undo implements an undo/redo engine built around the Command
// pattern. A caller owns a receiver (any mutable value it wishes to
// edit) and drives it through a [Record] (a linear history) or a
// [History] (a branching forest of linear histories). Both apply
// reversible [Command] values to the receiver, merge adjacent commands
// under a caller-supplied policy, and report state changes through a
// [Signal] sink.
package undo

// Command is a reversible edit applied to a receiver of type R.
//
// Apply performs the forward edit. Undo reverses it. Both must leave
// the receiver unchanged if they return a non-nil error — the engine
// trusts commands to honor this and cannot detect a violation.
//
// MergePolicy is queried once per Apply call and must be deterministic:
// calling it twice on the same unmodified command must return the same
// value.
type Command[R any] interface {
	Apply(receiver *R) error
	Undo(receiver *R) error
	MergePolicy() MergePolicy
}

// Redoer is implemented by commands whose redo is cheaper than a fresh
// Apply — for example a command that stashed inverse data during Undo
// and can replay it directly. Commands that don't implement Redoer are
// redone by calling Apply again.
type Redoer[R any] interface {
	Redo(receiver *R) error
}

func redo[R any](cmd Command[R], receiver *R) error {
	if r, ok := cmd.(Redoer[R]); ok {
		return r.Redo(receiver)
	}
	return cmd.Apply(receiver)
}

// mergeKind distinguishes the three merge policies a command can
// declare.
type mergeKind uint8

const (
	mergeNever mergeKind = iota
	mergeAlways
	mergeIfEqual
)

// MergePolicy says whether a freshly applied command should merge with
// the entry immediately below it in the history. Build one with
// [Always], [IfEqual], or [Never].
type MergePolicy struct {
	kind mergeKind
	tag  uint32
}

// Always merges unconditionally with the previous entry.
func Always() MergePolicy { return MergePolicy{kind: mergeAlways} }

// IfEqual merges with the previous entry only if that entry also
// declared IfEqual with the same tag.
func IfEqual(tag uint32) MergePolicy { return MergePolicy{kind: mergeIfEqual, tag: tag} }

// Never never merges. It equals the zero value of MergePolicy.
func Never() MergePolicy { return MergePolicy{kind: mergeNever} }

// shouldMerge implements the predicate from the merge state machine:
// the new command's policy decides, consulting the previous entry's
// policy only for the IfEqual case.
func shouldMerge(prev, next MergePolicy) bool {
	switch next.kind {
	case mergeAlways:
		return true
	case mergeIfEqual:
		return prev.kind == mergeIfEqual && prev.tag == next.tag
	default:
		return false
	}
}
