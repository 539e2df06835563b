package undo

// actionKind tags a buffered Queue entry.
type actionKind int

const (
	actionApply actionKind = iota
	actionUndo
	actionRedo
)

// action is one buffered step: either a command to apply, or a bare
// undo/redo request.
type action[R any] struct {
	kind actionKind
	cmd  Command[R]
}

// Queue buffers a sequence of apply/undo/redo requests against a
// Record or History without executing any of them, then plays the
// batch back in order on Commit — or discards it on Cancel. Nothing
// reaches the underlying engine until Commit runs; a Commit that fails
// partway leaves the actions before the failure applied.
type Queue[R any] struct {
	target  engine[R]
	actions []action[R]
}

func newQueue[R any](target engine[R]) *Queue[R] {
	return &Queue[R]{target: target}
}

// Apply buffers cmd for the next Commit. It never fails on its own —
// any error surfaces only once Commit plays the batch back.
func (q *Queue[R]) Apply(cmd Command[R]) {
	q.actions = append(q.actions, action[R]{kind: actionApply, cmd: cmd})
}

// Undo buffers an undo request for the next Commit.
func (q *Queue[R]) Undo() {
	q.actions = append(q.actions, action[R]{kind: actionUndo})
}

// Redo buffers a redo request for the next Commit.
func (q *Queue[R]) Redo() {
	q.actions = append(q.actions, action[R]{kind: actionRedo})
}

// Extend buffers each command in cmds, in order.
func (q *Queue[R]) Extend(cmds []Command[R]) {
	for _, cmd := range cmds {
		q.Apply(cmd)
	}
}

// Len returns the number of buffered actions.
func (q *Queue[R]) Len() int { return len(q.actions) }

// Commit plays the buffered actions back against the target engine, in
// order, stopping at the first failure. The buffer is cleared
// regardless of outcome — a failed Commit is not retried by calling it
// again.
func (q *Queue[R]) Commit() error {
	actions := q.actions
	q.actions = nil
	for _, a := range actions {
		switch a.kind {
		case actionApply:
			if _, err := q.target.Apply(a.cmd); err != nil {
				return err
			}
		case actionUndo:
			if _, err := q.target.Undo(); err != nil {
				return err
			}
		case actionRedo:
			if _, err := q.target.Redo(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Cancel discards every buffered action without touching the target
// engine.
func (q *Queue[R]) Cancel() {
	q.actions = nil
}
