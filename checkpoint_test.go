package undo

import "testing"

func TestCheckpointCommitKeepsChanges(t *testing.T) {
	r := NewRecord[string]("")
	cp := r.Checkpoint()

	if err := cp.Apply(add('a', Never())); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := cp.Apply(add('b', Never())); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	cp.Commit()

	if got := *r.AsReceiver(); got != "ab" {
		t.Fatalf("receiver: want ab, got %q", got)
	}
	if cp.Len() != 0 {
		t.Fatalf("Len after Commit: want 0, got %d", cp.Len())
	}
}

func TestCheckpointCancelRollsBackApplyUndoRedo(t *testing.T) {
	r := NewRecord[string]("")
	if _, err := r.Apply(add('a', Never())); err != nil {
		t.Fatalf("seed Apply: %v", err)
	}

	cp := r.Checkpoint()
	if err := cp.Apply(add('b', Never())); err != nil {
		t.Fatalf("Apply b: %v", err)
	}
	if _, err := cp.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if _, err := cp.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if got := *r.AsReceiver(); got != "ab" {
		t.Fatalf("before Cancel: want ab, got %q", got)
	}

	if err := cp.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if got := *r.AsReceiver(); got != "a" {
		t.Fatalf("after Cancel: want a (the state before the checkpoint), got %q", got)
	}
}

func TestCheckpointUndoAtBoundaryIsNotRecorded(t *testing.T) {
	r := NewRecord[string]("")
	cp := r.Checkpoint()

	if did, err := cp.Undo(); did || err != nil {
		t.Fatalf("Undo on empty record: did=%v err=%v", did, err)
	}
	if cp.Len() != 0 {
		t.Fatalf("a no-op Undo should not be recorded, Len=%d", cp.Len())
	}
	if err := cp.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
}

func TestCheckpointCancelReportsPartialRollback(t *testing.T) {
	r := NewRecord[string]("")
	cp := r.Checkpoint()

	if err := cp.Apply(add('a', Never())); err != nil {
		t.Fatalf("Apply a: %v", err)
	}
	if err := cp.Apply(undoFails{}); err != nil {
		t.Fatalf("Apply undoFails: %v", err)
	}
	if err := cp.Apply(add('b', Never())); err != nil {
		t.Fatalf("Apply b: %v", err)
	}

	err := cp.Cancel()
	if err == nil {
		t.Fatalf("expected Cancel to fail: undoFails can never be undone")
	}
	rbErr, ok := err.(*RollbackError)
	if !ok {
		t.Fatalf("expected a *RollbackError, got %T", err)
	}
	if rbErr.FullyRolledBack() {
		t.Fatalf("rollback should not have fully completed")
	}
	if rbErr.Completed != 1 || rbErr.Total != 3 {
		t.Fatalf("Completed/Total: want 1/3 (only the last Apply undone), got %d/%d", rbErr.Completed, rbErr.Total)
	}
}
