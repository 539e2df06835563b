package undo

// BranchID identifies a branch within a History. The zero value is the
// id of the first branch, created implicitly when the History is
// built.
type BranchID int

// noBranch marks an At with no parent — only the very first branch (id
// 0) has no parent.
const noBranch BranchID = -1

// At is a position in a history tree: a branch id and a cursor within
// that branch.
type At struct {
	Branch BranchID
	Cursor int
}

// branch is the content of an inactive branch: everything needed to
// reconstruct it as the active one. The active branch's own content
// lives directly in History.record instead of here.
type branch[R any] struct {
	parent   At
	entries  []meta[R]
	hasSaved bool
	saved    int
}

// History is a forest of linear timelines. Exactly one branch is
// active at a time; its entries live in record, which does the actual
// apply/undo/redo work. Diverging — applying a command while the
// cursor sits behind the end of the active branch — spins off the
// discarded tail as a new sibling branch instead of destroying it.
type History[R any] struct {
	root       BranchID
	rootParent At
	branches   map[BranchID]*branch[R]
	record     *Record[R]
	nextID     BranchID
	sink       Sink
}

// HistoryBuilder configures a History before it owns a receiver.
type HistoryBuilder[R any] struct {
	capacity int
	hasLimit bool
	limit    int
	saved    bool
	sink     Sink
	timed    bool
}

// NewHistoryBuilder returns a builder with no limit, no saved marker,
// and no signal sink.
func NewHistoryBuilder[R any]() *HistoryBuilder[R] {
	return &HistoryBuilder[R]{}
}

// Capacity pre-sizes the active branch's entry slice.
func (b *HistoryBuilder[R]) Capacity(n int) *HistoryBuilder[R] {
	b.capacity = n
	return b
}

// Limit caps the number of retained entries on the active branch.
func (b *HistoryBuilder[R]) Limit(n int) *HistoryBuilder[R] {
	if n < 1 {
		n = 1
	}
	b.hasLimit = true
	b.limit = n
	return b
}

// Saved marks the receiver's initial state as saved when saved is
// true.
func (b *HistoryBuilder[R]) Saved(saved bool) *HistoryBuilder[R] {
	b.saved = saved
	return b
}

// SignalSink installs the callback that receives Signal values,
// including RootSignal on branch switches.
func (b *HistoryBuilder[R]) SignalSink(sink Sink) *HistoryBuilder[R] {
	b.sink = sink
	return b
}

// TrackTime enables per-entry creation timestamps.
func (b *HistoryBuilder[R]) TrackTime(timed bool) *HistoryBuilder[R] {
	b.timed = timed
	return b
}

// Build finalizes the History, handing it ownership of receiver.
func (b *HistoryBuilder[R]) Build(receiver R) *History[R] {
	rb := NewRecordBuilder[R]().SignalSink(b.sink).TrackTime(b.timed)
	if b.capacity > 0 {
		rb.Capacity(b.capacity)
	}
	if b.hasLimit {
		rb.Limit(b.limit)
	}
	if b.saved {
		rb.Saved(true)
	}
	return &History[R]{
		rootParent: At{Branch: noBranch},
		branches:   make(map[BranchID]*branch[R]),
		record:     rb.Build(receiver),
		nextID:     1,
		sink:       b.sink,
	}
}

// NewHistory builds a History with defaults: no limit, no saved
// marker, no sink.
func NewHistory[R any](receiver R) *History[R] {
	return NewHistoryBuilder[R]().Build(receiver)
}

// Apply wraps Record.Apply and intercepts any redo tail it truncates:
// a non-empty tail becomes a new sibling branch forked from the
// position the active branch was at before this apply, preserving the
// old future instead of destroying it. A saved marker that pointed
// into the truncated tail migrates onto the new branch so a later GoTo
// there restores IsSaved.
func (h *History[R]) Apply(cmd Command[R]) ([]Command[R], error) {
	cursorBefore := h.record.cursor
	hadSaved := h.record.hasSaved
	savedBefore := h.record.saved

	displaced, err := h.record.Apply(cmd)
	if len(displaced) == 0 {
		return nil, err
	}

	id := h.nextID
	h.nextID++
	b := &branch[R]{
		parent:  At{Branch: h.root, Cursor: cursorBefore},
		entries: make([]meta[R], len(displaced)),
	}
	for i, c := range displaced {
		b.entries[i] = newMeta[R](c, h.record.timed)
	}
	if hadSaved && savedBefore > cursorBefore {
		b.hasSaved = true
		b.saved = savedBefore - cursorBefore
	}
	h.branches[id] = b
	return nil, err
}

// Undo delegates to the active branch's Record.
func (h *History[R]) Undo() (bool, error) { return h.record.Undo() }

// Redo delegates to the active branch's Record.
func (h *History[R]) Redo() (bool, error) { return h.record.Redo() }

// Revert delegates to the active branch's Record.
func (h *History[R]) Revert() (bool, error) { return h.record.Revert() }

// Extend applies each command in order against the active branch,
// stopping at the first failure.
func (h *History[R]) Extend(cmds []Command[R]) error {
	for _, cmd := range cmds {
		if _, err := h.Apply(cmd); err != nil {
			return err
		}
	}
	return nil
}

// SetSaved marks the active branch's current cursor as saved, or
// clears the saved marker.
func (h *History[R]) SetSaved(saved bool) { h.record.SetSaved(saved) }

// IsSaved reports whether the active branch's cursor sits at the
// saved marker.
func (h *History[R]) IsSaved() bool { return h.record.IsSaved() }

// CanUndo reports whether the active branch has an entry to undo.
func (h *History[R]) CanUndo() bool { return h.record.CanUndo() }

// CanRedo reports whether the active branch has an entry to redo.
func (h *History[R]) CanRedo() bool { return h.record.CanRedo() }

// Len returns the number of entries retained on the active branch.
func (h *History[R]) Len() int { return h.record.Len() }

// Cursor returns the active branch's cursor, counted from the absolute
// start of history rather than from wherever the active branch forked
// off its parent — the same number GoTo expects back.
func (h *History[R]) Cursor() int { return h.forkPoint(h.root) + h.record.Cursor() }

// Limit returns the configured entry cap, if any.
func (h *History[R]) Limit() (int, bool) { return h.record.Limit() }

// AsReceiver returns a read-only view of the receiver.
func (h *History[R]) AsReceiver() *R { return h.record.AsReceiver() }

// IntoReceiver returns the receiver.
func (h *History[R]) IntoReceiver() R { return h.record.IntoReceiver() }

// ReceiverMut returns a mutable view of the receiver for scoped access
// outside the command contract.
func (h *History[R]) ReceiverMut() *R { return h.record.ReceiverMut() }

// Queue allocates a Queue façade over this History.
func (h *History[R]) Queue() *Queue[R] { return newQueue[R](h) }

// Checkpoint allocates a Checkpoint façade over this History.
func (h *History[R]) Checkpoint() *Checkpoint[R] { return newCheckpoint[R](h) }

// Root returns the id of the currently active branch.
func (h *History[R]) Root() BranchID { return h.root }

// Branch returns the id of the currently active branch — a synonym for
// Root kept for callers thinking in terms of "which branch am I on"
// rather than the data model's root field.
func (h *History[R]) Branch() BranchID { return h.root }

// climbOnce moves the active branch up to its parent. The caller must
// have already driven the active record's cursor to 0 (the fork
// point) before calling this.
func (h *History[R]) climbOnce() {
	oldID := h.root
	parentID := h.rootParent.Branch
	parentCursor := h.rootParent.Cursor
	parentInfo := h.branches[parentID]

	h.branches[oldID] = &branch[R]{
		parent:   h.rootParent,
		entries:  h.record.entries,
		hasSaved: h.record.hasSaved,
		saved:    h.record.saved,
	}
	delete(h.branches, parentID)

	h.root = parentID
	h.rootParent = parentInfo.parent
	h.record.entries = parentInfo.entries
	h.record.cursor = parentCursor
	h.record.hasSaved = parentInfo.hasSaved
	h.record.saved = parentInfo.saved

	h.sink.emit(RootSignal{Old: oldID, New: parentID})
}

// descendOnce moves the active branch down into child. The caller must
// have already driven the active record's cursor to child's fork
// cursor before calling this.
func (h *History[R]) descendOnce(child BranchID) {
	oldID := h.root
	childInfo := h.branches[child]

	h.branches[oldID] = &branch[R]{
		parent:   h.rootParent,
		entries:  h.record.entries,
		hasSaved: h.record.hasSaved,
		saved:    h.record.saved,
	}
	delete(h.branches, child)

	h.root = child
	h.rootParent = childInfo.parent
	h.record.entries = childInfo.entries
	h.record.cursor = 0
	h.record.hasSaved = childInfo.hasSaved
	h.record.saved = childInfo.saved

	h.sink.emit(RootSignal{Old: oldID, New: child})
}

// ancestorIDs returns the chain of branch ids from the active branch up
// through its ancestors to (and not including) noBranch.
func (h *History[R]) ancestorIDs() []BranchID {
	ids := []BranchID{h.root}
	parent := h.rootParent
	for parent.Branch != noBranch {
		ids = append(ids, parent.Branch)
		info, ok := h.branches[parent.Branch]
		if !ok {
			break
		}
		parent = info.parent
	}
	return ids
}

// ancestorIDsOf returns the same chain starting at an arbitrary
// inactive branch id.
func (h *History[R]) ancestorIDsOf(id BranchID) []BranchID {
	ids := []BranchID{id}
	parent := h.branches[id].parent
	for parent.Branch != noBranch {
		ids = append(ids, parent.Branch)
		info, ok := h.branches[parent.Branch]
		if !ok {
			break
		}
		parent = info.parent
	}
	return ids
}

// parentOf returns the fork point of id: the position in id's parent
// branch where id was spun off. The active branch's parent lives in
// rootParent rather than the branches map.
func (h *History[R]) parentOf(id BranchID) At {
	if id == h.root {
		return h.rootParent
	}
	return h.branches[id].parent
}

// forkPoint returns id's fork point translated into the absolute,
// whole-history cursor space: the position you'd be at if you replayed
// every ancestor branch from the very beginning up to where id forks
// off. The first branch, which has no parent, forks at 0.
func (h *History[R]) forkPoint(id BranchID) int {
	p := h.parentOf(id)
	if p.Branch == noBranch {
		return 0
	}
	return h.forkPoint(p.Branch) + p.Cursor
}

func lowestCommonAncestor(a, b []BranchID) (BranchID, bool) {
	seen := make(map[BranchID]bool, len(a))
	for _, id := range a {
		seen[id] = true
	}
	for _, id := range b {
		if seen[id] {
			return id, true
		}
	}
	return 0, false
}

// descendPath returns the chain of branch ids to hop through, in
// order, to go from lca down to the front of chain (chain is ordered
// from a target branch up through its ancestors, as returned by
// ancestorIDsOf).
func descendPath(chain []BranchID, lca BranchID) []BranchID {
	idx := -1
	for i, id := range chain {
		if id == lca {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return nil
	}
	segment := chain[:idx]
	path := make([]BranchID, len(segment))
	for i, id := range segment {
		path[len(segment)-1-i] = id
	}
	return path
}

// GoTo moves the active branch to branch and replays undo/redo until
// its cursor reaches cursor, crossing branch boundaries as needed.
// cursor is absolute — counted from the beginning of history, not from
// branch's own fork point, matching what Cursor reports once branch is
// active. An unknown branch id or out-of-range cursor is a no-op
// reported as (false, nil). A failure mid-path leaves the engine at
// the last consistent position.
func (h *History[R]) GoTo(branchID BranchID, cursor int) (bool, error) {
	var entriesLen int
	if branchID == h.root {
		entriesLen = len(h.record.entries)
	} else {
		target, ok := h.branches[branchID]
		if !ok {
			return false, nil
		}
		entriesLen = len(target.entries)
	}

	fp := h.forkPoint(branchID)
	local := cursor - fp
	if local < 0 || local > entriesLen {
		return false, nil
	}

	if branchID == h.root {
		return h.record.GoTo(local)
	}

	activeChain := h.ancestorIDs()
	targetChain := h.ancestorIDsOf(branchID)
	lca, ok := lowestCommonAncestor(activeChain, targetChain)
	if !ok {
		return false, nil
	}

	var did bool
	for h.root != lca {
		d, err := h.record.GoTo(0)
		did = did || d
		if err != nil {
			return did, err
		}
		before := h.record.flagsNow()
		h.climbOnce()
		h.record.flagsNow().diff(before, h.sink)
	}

	for _, childID := range descendPath(targetChain, lca) {
		childInfo := h.branches[childID]
		d, err := h.record.GoTo(childInfo.parent.Cursor)
		did = did || d
		if err != nil {
			return did, err
		}
		before := h.record.flagsNow()
		h.descendOnce(childID)
		h.record.flagsNow().diff(before, h.sink)
	}

	d, err := h.record.GoTo(local)
	did = did || d
	return did, err
}
