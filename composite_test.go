package undo

import "testing"

func TestCompositeAppliesInOrderUndoesInReverse(t *testing.T) {
	c := Join[string](add('a', Never()), add('b', Never()))
	receiver := ""

	if err := c.Apply(&receiver); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if receiver != "ab" {
		t.Fatalf("after Apply: want ab, got %q", receiver)
	}

	if err := c.Undo(&receiver); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if receiver != "" {
		t.Fatalf("after Undo: want empty, got %q", receiver)
	}
}

func TestCompositeApplyRollsBackOnFailure(t *testing.T) {
	c := JoinAll[string](add('a', Never()), &failCmd{err: errBoom}, add('b', Never()))
	receiver := ""

	err := c.Apply(&receiver)
	if err == nil {
		t.Fatalf("expected an error from the failing middle command")
	}
	if receiver != "" {
		t.Fatalf("receiver should be rolled back to empty, got %q", receiver)
	}
}

func TestJoinAllEmptyIsAlwaysAndNoOp(t *testing.T) {
	c := JoinAll[string]()
	if c.MergePolicy() != Always() {
		t.Fatalf("empty Composite's MergePolicy should be Always")
	}
	receiver := "x"
	if err := c.Apply(&receiver); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if receiver != "x" {
		t.Fatalf("Apply of an empty Composite should be a no-op, got %q", receiver)
	}
}

func TestCompositeMergePolicyIsFirstElements(t *testing.T) {
	c := Join[string](add('a', IfEqual(7)), add('b', Never()))
	if c.MergePolicy() != IfEqual(7) {
		t.Fatalf("MergePolicy: want the first command's policy")
	}
}
