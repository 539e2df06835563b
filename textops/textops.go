// Package textops is a small, reversible command set over a plain-text
// document — the example receiver the undoplay CLI drives through an
// undo.Record or undo.History. It plays the role of the spec's worked
// Add(c) example, generalized from single characters to rune spans.
package textops

import "fmt"

// Document is the receiver: a mutable rune buffer. The zero value is
// an empty document.
type Document struct {
	Text []rune
}

// String returns the document's current contents.
func (d *Document) String() string { return string(d.Text) }

func (d *Document) insertAt(pos int, runes []rune) error {
	if pos < 0 || pos > len(d.Text) {
		return fmt.Errorf("textops: insert position %d out of range [0, %d]", pos, len(d.Text))
	}
	out := make([]rune, 0, len(d.Text)+len(runes))
	out = append(out, d.Text[:pos]...)
	out = append(out, runes...)
	out = append(out, d.Text[pos:]...)
	d.Text = out
	return nil
}

func (d *Document) deleteAt(pos, count int) ([]rune, error) {
	if pos < 0 || count < 0 || pos+count > len(d.Text) {
		return nil, fmt.Errorf("textops: delete range [%d, %d) out of range [0, %d]", pos, pos+count, len(d.Text))
	}
	removed := make([]rune, count)
	copy(removed, d.Text[pos:pos+count])
	out := make([]rune, 0, len(d.Text)-count)
	out = append(out, d.Text[:pos]...)
	out = append(out, d.Text[pos+count:]...)
	d.Text = out
	return removed, nil
}
