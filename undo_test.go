package undo

import "errors"

// addChar is the spec's worked Add(c) example: it pushes a character
// onto a string receiver and, on undo, pops the last character. It
// keeps its character in ch, so the default Redoer-less redo (a fresh
// Apply) pushes it again.
type addChar struct {
	ch     byte
	policy MergePolicy
}

func add(ch byte, policy MergePolicy) *addChar { return &addChar{ch: ch, policy: policy} }

func (c *addChar) Apply(receiver *string) error {
	*receiver += string(c.ch)
	return nil
}

func (c *addChar) Undo(receiver *string) error {
	if len(*receiver) == 0 {
		return errors.New("addChar: nothing to undo")
	}
	*receiver = (*receiver)[:len(*receiver)-1]
	return nil
}

func (c *addChar) MergePolicy() MergePolicy { return c.policy }

// failCmd always fails, to exercise error paths without disturbing the
// receiver (per the Command contract, a failing command must leave the
// receiver unchanged).
type failCmd struct{ err error }

func (c *failCmd) Apply(receiver *string) error { return c.err }
func (c *failCmd) Undo(receiver *string) error  { return c.err }
func (c *failCmd) MergePolicy() MergePolicy     { return Never() }

// undoFails applies cleanly but can never be undone — used to exercise
// a mid-rollback failure in Checkpoint.Cancel.
type undoFails struct{}

func (undoFails) Apply(receiver *string) error { return nil }
func (undoFails) Undo(receiver *string) error  { return errBoom }
func (undoFails) MergePolicy() MergePolicy     { return Never() }

var _ Command[string] = (*addChar)(nil)
var _ Command[string] = (*failCmd)(nil)
var _ Command[string] = undoFails{}
