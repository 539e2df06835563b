package undo

// Composite groups an ordered sequence of commands into a single
// apply/undo/redo unit: applied and redone in index order, undone in
// reverse index order. It is the mechanism behind merging — when two
// adjacent entries merge, the engine replaces them with a Composite of
// the two — and is also exposed directly via [Join] and [JoinAll] so
// callers can hand the engine several edits as one atomic apply.
type Composite[R any] struct {
	commands []Command[R]
}

// Join combines two commands into a Composite.
func Join[R any](first, second Command[R]) *Composite[R] {
	return &Composite[R]{commands: []Command[R]{first, second}}
}

// JoinAll combines any number of commands into a Composite. Joining
// zero commands yields a Composite whose MergePolicy is Always and
// whose Apply/Undo/Redo are no-ops.
func JoinAll[R any](commands ...Command[R]) *Composite[R] {
	c := &Composite[R]{commands: make([]Command[R], len(commands))}
	copy(c.commands, commands)
	return c
}

// Len returns the number of commands grouped into c.
func (c *Composite[R]) Len() int { return len(c.commands) }

// Apply runs each grouped command in index order. If one fails, the
// commands that already succeeded are undone in reverse order before
// the error is returned, so a Composite honors the same "unchanged on
// failure" contract a single command is trusted to keep — callers see
// neither a partially-applied composite nor an entry for it in the
// history.
func (c *Composite[R]) Apply(receiver *R) error {
	for i, cmd := range c.commands {
		if err := cmd.Apply(receiver); err != nil {
			for j := i - 1; j >= 0; j-- {
				c.commands[j].Undo(receiver)
			}
			return err
		}
	}
	return nil
}

// Undo runs each grouped command's Undo in reverse index order,
// stopping at the first failure.
func (c *Composite[R]) Undo(receiver *R) error {
	for i := len(c.commands) - 1; i >= 0; i-- {
		if err := c.commands[i].Undo(receiver); err != nil {
			return err
		}
	}
	return nil
}

// Redo runs each grouped command's redo (Redoer.Redo if implemented,
// Apply otherwise) in index order, stopping at the first failure.
func (c *Composite[R]) Redo(receiver *R) error {
	for _, cmd := range c.commands {
		if err := redo(cmd, receiver); err != nil {
			return err
		}
	}
	return nil
}

// MergePolicy returns the policy of the first grouped command, or
// Always if the Composite is empty.
func (c *Composite[R]) MergePolicy() MergePolicy {
	if len(c.commands) == 0 {
		return Always()
	}
	return c.commands[0].MergePolicy()
}
