package undo

// engine is the common surface Queue and Checkpoint drive — both
// Record and History satisfy it, so the façades work identically over
// either.
type engine[R any] interface {
	Apply(cmd Command[R]) ([]Command[R], error)
	Undo() (bool, error)
	Redo() (bool, error)
}

var (
	_ engine[struct{}] = (*Record[struct{}])(nil)
	_ engine[struct{}] = (*History[struct{}])(nil)
)
