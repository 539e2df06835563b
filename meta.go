package undo

import (
	"time"

	"github.com/google/uuid"
)

// meta wraps a Command with bookkeeping the engine needs but the
// caller's Command implementation shouldn't have to carry: an identity
// for diagnostics and an optional creation time. The engine stores meta
// values in its entry list, never raw commands.
type meta[R any] struct {
	id      uuid.UUID
	command Command[R]
	created time.Time
	timed   bool
}

func newMeta[R any](command Command[R], timed bool) meta[R] {
	m := meta[R]{id: uuid.New(), command: command}
	if timed {
		m.created = time.Now()
		m.timed = true
	}
	return m
}

func (m meta[R]) apply(receiver *R) error { return m.command.Apply(receiver) }
func (m meta[R]) undo(receiver *R) error  { return m.command.Undo(receiver) }
func (m meta[R]) redo(receiver *R) error  { return redo(m.command, receiver) }
func (m meta[R]) mergePolicy() MergePolicy { return m.command.MergePolicy() }

// CreatedAt returns the time the wrapped command was applied and
// whether a timestamp was recorded at all (Record/History can be built
// without timestamp tracking).
func (m meta[R]) CreatedAt() (time.Time, bool) { return m.created, m.timed }
