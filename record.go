package undo

// Record is a linear cursor over a bounded history of applied
// commands. entries[0:cursor] have been applied to the receiver;
// entries[cursor:] have been undone but are retained so Redo can replay
// them.
type Record[R any] struct {
	receiver R
	entries  []meta[R]
	cursor   int

	hasLimit bool
	limit    int

	hasSaved bool
	saved    int

	sink  Sink
	timed bool
}

// RecordBuilder configures a Record before it owns a receiver. Its
// methods chain the way lipgloss.Style's do: each returns the same
// builder so options read left to right.
type RecordBuilder[R any] struct {
	capacity int
	hasLimit bool
	limit    int
	saved    bool
	sink     Sink
	timed    bool
}

// NewRecordBuilder returns a builder with no limit, no saved marker,
// and no signal sink — call Build to obtain a Record once configured.
func NewRecordBuilder[R any]() *RecordBuilder[R] {
	return &RecordBuilder[R]{}
}

// Capacity pre-sizes the entry slice. It is a performance hint only.
func (b *RecordBuilder[R]) Capacity(n int) *RecordBuilder[R] {
	b.capacity = n
	return b
}

// Limit caps the number of retained entries. Values below 1 are
// clamped to 1, matching the invariant that a limit, when set, is at
// least 1.
func (b *RecordBuilder[R]) Limit(n int) *RecordBuilder[R] {
	if n < 1 {
		n = 1
	}
	b.hasLimit = true
	b.limit = n
	return b
}

// Saved marks the receiver's current state (cursor 0, at construction
// time) as saved when saved is true.
func (b *RecordBuilder[R]) Saved(saved bool) *RecordBuilder[R] {
	b.saved = saved
	return b
}

// SignalSink installs the callback that receives Signal values.
func (b *RecordBuilder[R]) SignalSink(sink Sink) *RecordBuilder[R] {
	b.sink = sink
	return b
}

// TrackTime enables per-entry creation timestamps.
func (b *RecordBuilder[R]) TrackTime(timed bool) *RecordBuilder[R] {
	b.timed = timed
	return b
}

// Build finalizes the Record, handing it ownership of receiver.
func (b *RecordBuilder[R]) Build(receiver R) *Record[R] {
	r := &Record[R]{
		receiver: receiver,
		sink:     b.sink,
		timed:    b.timed,
		hasLimit: b.hasLimit,
		limit:    b.limit,
	}
	if b.capacity > 0 {
		r.entries = make([]meta[R], 0, b.capacity)
	}
	if b.saved {
		r.hasSaved = true
		r.saved = 0
	}
	return r
}

// NewRecord builds a Record with defaults: no limit, no saved marker,
// no sink.
func NewRecord[R any](receiver R) *Record[R] {
	return NewRecordBuilder[R]().Build(receiver)
}

func (r *Record[R]) flagsNow() flags {
	return flags{
		canUndo: r.cursor > 0,
		canRedo: r.cursor < len(r.entries),
		saved:   r.hasSaved && r.saved == r.cursor,
	}
}

// Apply wraps cmd, applies it to the receiver, and merges it into the
// previous entry when the merge predicate says to. It returns any
// commands that were displaced by truncating a redo tail — Record
// itself discards them, but History intercepts this to spin up a new
// branch.
func (r *Record[R]) Apply(cmd Command[R]) ([]Command[R], error) {
	before := r.flagsNow()
	oldCursor := r.cursor

	var displaced []Command[R]
	if r.cursor < len(r.entries) {
		displaced = make([]Command[R], len(r.entries)-r.cursor)
		for i, m := range r.entries[r.cursor:] {
			displaced[i] = m.command
		}
		r.entries = r.entries[:r.cursor]
		if r.hasSaved && r.saved > r.cursor {
			r.hasSaved = false
		}
	}

	m := newMeta[R](cmd, r.timed)
	if err := m.apply(&r.receiver); err != nil {
		after := r.flagsNow()
		after.diff(before, r.sink)
		return displaced, newError[R](cmd, err)
	}

	merged := false
	if n := len(r.entries); n > 0 {
		merged = shouldMerge(r.entries[n-1].mergePolicy(), m.mergePolicy())
	}

	if merged {
		top := r.entries[len(r.entries)-1]
		r.entries[len(r.entries)-1] = newMeta[R](Join[R](top.command, cmd), r.timed)
		after := r.flagsNow()
		after.diff(before, r.sink)
		r.sink.emit(CursorSignal{Old: r.cursor, New: r.cursor})
		return displaced, nil
	}

	r.entries = append(r.entries, m)
	r.cursor++
	if r.hasLimit && len(r.entries) > r.limit {
		r.entries = r.entries[1:]
		r.cursor--
		if r.hasSaved {
			r.saved--
			if r.saved < 0 {
				r.hasSaved = false
			}
		}
	}

	after := r.flagsNow()
	after.diff(before, r.sink)
	r.sink.emit(CursorSignal{Old: oldCursor, New: r.cursor})
	return displaced, nil
}

// Undo reverses the entry below the cursor. It returns (false, nil)
// when the cursor is already at 0 — the "nothing to do" sentinel — and
// leaves the cursor unchanged if the command's Undo fails.
func (r *Record[R]) Undo() (bool, error) {
	if r.cursor == 0 {
		return false, nil
	}
	before := r.flagsNow()
	idx := r.cursor - 1
	if err := r.entries[idx].undo(&r.receiver); err != nil {
		return true, newError[R](r.entries[idx].command, err)
	}
	r.cursor--
	after := r.flagsNow()
	after.diff(before, r.sink)
	r.sink.emit(CursorSignal{Old: idx + 1, New: r.cursor})
	return true, nil
}

// Redo reapplies the entry at the cursor. It returns (false, nil) when
// the cursor is already at the end.
func (r *Record[R]) Redo() (bool, error) {
	if r.cursor == len(r.entries) {
		return false, nil
	}
	before := r.flagsNow()
	idx := r.cursor
	if err := r.entries[idx].redo(&r.receiver); err != nil {
		return true, newError[R](r.entries[idx].command, err)
	}
	r.cursor++
	after := r.flagsNow()
	after.diff(before, r.sink)
	r.sink.emit(CursorSignal{Old: idx, New: r.cursor})
	return true, nil
}

// GoTo replays undo/redo until the cursor reaches target, stopping at
// the first failure. An out-of-range target is a no-op reported as
// (false, nil).
func (r *Record[R]) GoTo(target int) (bool, error) {
	if target < 0 || target > len(r.entries) {
		return false, nil
	}
	var did bool
	for r.cursor != target {
		var (
			d   bool
			err error
		)
		if r.cursor < target {
			d, err = r.Redo()
		} else {
			d, err = r.Undo()
		}
		did = did || d
		if err != nil {
			return did, err
		}
	}
	return did, nil
}

// Revert undoes everything back to cursor 0, stopping at the first
// failure.
func (r *Record[R]) Revert() (bool, error) {
	var did bool
	for r.cursor > 0 {
		d, err := r.Undo()
		did = did || d
		if err != nil {
			return did, err
		}
	}
	return did, nil
}

// Extend applies each command in order, stopping at the first failure.
func (r *Record[R]) Extend(cmds []Command[R]) error {
	for _, cmd := range cmds {
		if _, err := r.Apply(cmd); err != nil {
			return err
		}
	}
	return nil
}

// SetSaved marks the current cursor position as the saved state, or
// clears the saved marker entirely when saved is false.
func (r *Record[R]) SetSaved(saved bool) {
	before := r.flagsNow()
	if saved {
		r.hasSaved = true
		r.saved = r.cursor
	} else {
		r.hasSaved = false
	}
	after := r.flagsNow()
	after.diff(before, r.sink)
}

// IsSaved reports whether the cursor sits at the saved marker.
func (r *Record[R]) IsSaved() bool { return r.hasSaved && r.saved == r.cursor }

// CanUndo reports whether there is an entry to undo.
func (r *Record[R]) CanUndo() bool { return r.cursor > 0 }

// CanRedo reports whether there is an entry to redo.
func (r *Record[R]) CanRedo() bool { return r.cursor < len(r.entries) }

// Len returns the number of retained entries.
func (r *Record[R]) Len() int { return len(r.entries) }

// Cursor returns the current cursor position.
func (r *Record[R]) Cursor() int { return r.cursor }

// Limit returns the configured entry cap, if any.
func (r *Record[R]) Limit() (int, bool) { return r.limit, r.hasLimit }

// AsReceiver returns a read-only view of the receiver. Callers must
// not mutate through it.
func (r *Record[R]) AsReceiver() *R { return &r.receiver }

// IntoReceiver returns the receiver, relinquishing the Record's
// remaining usefulness (Go has no move semantics, so the Record
// technically remains usable, but callers should treat this as
// consuming it).
func (r *Record[R]) IntoReceiver() R { return r.receiver }

// ReceiverMut returns a mutable view of the receiver for scoped access
// outside the command contract. Mutating through it in ways that break
// command reversibility voids the engine's undo/redo guarantees.
func (r *Record[R]) ReceiverMut() *R { return &r.receiver }

// Queue allocates a Queue façade over this Record.
func (r *Record[R]) Queue() *Queue[R] { return newQueue[R](r) }

// Checkpoint allocates a Checkpoint façade over this Record.
func (r *Record[R]) Checkpoint() *Checkpoint[R] { return newCheckpoint[R](r) }
