package textops

import (
	"testing"

	undo "github.com/yourusername/undo"
)

func TestInsertApplyUndo(t *testing.T) {
	doc := &Document{}
	r := undo.NewRecord[*Document](doc)

	if _, err := r.Apply(NewInsert(0, "hello", 0)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if doc.String() != "hello" {
		t.Fatalf("String: want hello, got %q", doc.String())
	}

	if _, err := r.Apply(NewInsert(5, " world", 0)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if doc.String() != "hello world" {
		t.Fatalf("String: want hello world, got %q", doc.String())
	}

	if _, err := r.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if doc.String() != "hello" {
		t.Fatalf("after Undo: want hello, got %q", doc.String())
	}
}

func TestDeleteApplyUndo(t *testing.T) {
	doc := &Document{Text: []rune("hello world")}
	r := undo.NewRecord[*Document](doc)

	if _, err := r.Apply(NewDelete(5, 6, 0)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if doc.String() != "hello" {
		t.Fatalf("String: want hello, got %q", doc.String())
	}

	if _, err := r.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if doc.String() != "hello world" {
		t.Fatalf("after Undo: want hello world, got %q", doc.String())
	}
}

func TestInsertMergesWithMatchingTag(t *testing.T) {
	doc := &Document{}
	r := undo.NewRecord[*Document](doc)

	for _, ch := range []string{"a", "b", "c"} {
		if _, err := r.Apply(NewInsert(len(doc.Text), ch, 1)); err != nil {
			t.Fatalf("Apply(%q): %v", ch, err)
		}
	}
	if doc.String() != "abc" {
		t.Fatalf("String: want abc, got %q", doc.String())
	}
	if r.Len() != 1 {
		t.Fatalf("Len: want 1 (merged), got %d", r.Len())
	}

	if _, err := r.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if doc.String() != "" {
		t.Fatalf("a single Undo should undo the whole merged run, got %q", doc.String())
	}
}

func TestInsertOutOfRangeFails(t *testing.T) {
	doc := &Document{}
	r := undo.NewRecord[*Document](doc)

	if _, err := r.Apply(NewInsert(5, "x", 0)); err == nil {
		t.Fatalf("expected an out-of-range error")
	}
	if doc.String() != "" {
		t.Fatalf("a failed Apply must leave the receiver unchanged, got %q", doc.String())
	}
}

func TestDeleteOutOfRangeFails(t *testing.T) {
	doc := &Document{Text: []rune("ab")}
	r := undo.NewRecord[*Document](doc)

	if _, err := r.Apply(NewDelete(0, 5, 0)); err == nil {
		t.Fatalf("expected an out-of-range error")
	}
	if doc.String() != "ab" {
		t.Fatalf("a failed Apply must leave the receiver unchanged, got %q", doc.String())
	}
}
