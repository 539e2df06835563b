package undo

// checkpointOp records which inverse operation undoes one step the
// Checkpoint already ran against the target engine.
type checkpointOp int

const (
	cpApply checkpointOp = iota
	cpUndo
	cpRedo
)

// Checkpoint executes apply/undo/redo requests against the target
// engine immediately, same as calling it directly, while recording
// enough to unwind everything it did in one shot. Cancel runs those
// inverses in reverse order; Commit just forgets them, leaving
// whatever state the engine has already reached.
type Checkpoint[R any] struct {
	target engine[R]
	ops    []checkpointOp
}

func newCheckpoint[R any](target engine[R]) *Checkpoint[R] {
	return &Checkpoint[R]{target: target}
}

// Apply runs cmd against the target engine immediately. On success the
// step is recorded so Cancel can undo it later.
func (c *Checkpoint[R]) Apply(cmd Command[R]) error {
	if _, err := c.target.Apply(cmd); err != nil {
		return err
	}
	c.ops = append(c.ops, cpApply)
	return nil
}

// Undo runs an undo against the target engine immediately. It only
// records the step when the target reports it actually did something
// — Cancel must not redo a step that was never undone.
func (c *Checkpoint[R]) Undo() (bool, error) {
	did, err := c.target.Undo()
	if err != nil {
		return did, err
	}
	if did {
		c.ops = append(c.ops, cpUndo)
	}
	return did, nil
}

// Redo runs a redo against the target engine immediately, recording
// the step only if it did something.
func (c *Checkpoint[R]) Redo() (bool, error) {
	did, err := c.target.Redo()
	if err != nil {
		return did, err
	}
	if did {
		c.ops = append(c.ops, cpRedo)
	}
	return did, nil
}

// Extend applies each command in order, stopping at the first failure.
// Steps that ran before the failure stay recorded and are still
// reachable by Cancel.
func (c *Checkpoint[R]) Extend(cmds []Command[R]) error {
	for _, cmd := range cmds {
		if err := c.Apply(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of recorded steps Cancel would unwind.
func (c *Checkpoint[R]) Len() int { return len(c.ops) }

// Commit discards the recorded steps, leaving the target engine at
// whatever state it has already reached.
func (c *Checkpoint[R]) Commit() {
	c.ops = nil
}

// Cancel inverts every recorded step in reverse order — apply becomes
// undo, undo becomes redo, redo becomes undo — rolling the target
// engine back to the state it had before this checkpoint began. If an
// inverse fails partway through, Cancel stops and returns a
// RollbackError describing how much was undone; the checkpoint's
// remaining, unprocessed steps stay recorded so a retried Cancel
// resumes where this one stopped.
func (c *Checkpoint[R]) Cancel() error {
	total := len(c.ops)
	completed := 0
	for i := len(c.ops) - 1; i >= 0; i-- {
		var err error
		switch c.ops[i] {
		case cpApply:
			_, err = c.target.Undo()
		case cpUndo:
			_, err = c.target.Redo()
		case cpRedo:
			_, err = c.target.Undo()
		}
		if err != nil {
			c.ops = c.ops[:i+1]
			return &RollbackError{Cause: err, Completed: completed, Total: total}
		}
		completed++
	}
	c.ops = nil
	return nil
}
