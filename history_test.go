package undo

import "testing"

func TestHistoryBranchJump(t *testing.T) {
	h := NewHistory[string]("")

	if _, err := h.Apply(add('a', Never())); err != nil {
		t.Fatalf("Apply a: %v", err)
	}
	if _, err := h.Apply(add('b', Never())); err != nil {
		t.Fatalf("Apply b: %v", err)
	}
	if _, err := h.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if _, err := h.Apply(add('x', Never())); err != nil {
		t.Fatalf("Apply x: %v", err)
	}
	if got := *h.AsReceiver(); got != "ax" {
		t.Fatalf("after diverging: want ax, got %q", got)
	}

	active := h.Branch()
	if active != 0 {
		t.Fatalf("diverging should not have changed the active branch")
	}

	did, err := h.GoTo(BranchID(1), 2)
	if err != nil {
		t.Fatalf("GoTo: %v", err)
	}
	if !did {
		t.Fatalf("GoTo(1, 2) should have moved the cursor")
	}
	if got := *h.AsReceiver(); got != "ab" {
		t.Fatalf("after GoTo the old branch: want ab, got %q", got)
	}
	if h.Branch() != 1 {
		t.Fatalf("Branch: want 1 after GoTo, got %d", h.Branch())
	}

	// Jumping back to the branch we came from should restore "ax".
	if _, err := h.GoTo(active, 2); err != nil {
		t.Fatalf("GoTo back: %v", err)
	}
	if got := *h.AsReceiver(); got != "ax" {
		t.Fatalf("after GoTo back: want ax, got %q", got)
	}
}

func TestHistorySavedMarkerMigratesToBranch(t *testing.T) {
	h := NewHistory[string]("")

	if _, err := h.Apply(add('a', Never())); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	h.SetSaved(true)
	if _, err := h.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if _, err := h.Apply(add('x', Never())); err != nil {
		t.Fatalf("Apply x: %v", err)
	}
	if h.IsSaved() {
		t.Fatalf("IsSaved should be false on the new branch")
	}

	if _, err := h.GoTo(BranchID(1), 1); err != nil {
		t.Fatalf("GoTo: %v", err)
	}
	if got := *h.AsReceiver(); got != "a" {
		t.Fatalf("after GoTo the saved branch: want a, got %q", got)
	}
	if !h.IsSaved() {
		t.Fatalf("IsSaved should be true again: the saved marker migrated onto the branch")
	}
}

func TestHistoryGoToUnknownBranchIsNoOp(t *testing.T) {
	h := NewHistory[string]("")
	if _, err := h.Apply(add('a', Never())); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	did, err := h.GoTo(BranchID(99), 0)
	if err != nil {
		t.Fatalf("GoTo unknown branch should not error: %v", err)
	}
	if did {
		t.Fatalf("GoTo unknown branch should be a no-op")
	}
}

func TestHistoryApplyWithoutDivergenceCreatesNoBranch(t *testing.T) {
	h := NewHistory[string]("")
	if _, err := h.Apply(add('a', Never())); err != nil {
		t.Fatalf("Apply a: %v", err)
	}
	if _, err := h.Apply(add('b', Never())); err != nil {
		t.Fatalf("Apply b: %v", err)
	}
	did, err := h.GoTo(BranchID(1), 0)
	if err != nil {
		t.Fatalf("GoTo: %v", err)
	}
	if did {
		t.Fatalf("no branch should have been created: nothing diverged")
	}
}
