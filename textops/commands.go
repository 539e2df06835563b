package textops

import undo "github.com/yourusername/undo"

// Insert splices Runes into a Document at Pos. Two Inserts merge into
// one undo step when they share a non-zero Tag — the undoplay demo
// bumps Tag whenever the cursor jumps, so a contiguous run of typing
// becomes one undo, same as the worked Add(c) example generalizes to
// spans of characters instead of one at a time.
type Insert struct {
	Pos   int
	Runes []rune
	Tag   uint32
}

// NewInsert builds an Insert command. A Tag of 0 never merges with
// anything else (0 only ever equals 0, which Never uses as a sentinel
// elsewhere, so callers that want merge behavior should pass a Tag
// greater than 0).
func NewInsert(pos int, text string, tag uint32) *Insert {
	return &Insert{Pos: pos, Runes: []rune(text), Tag: tag}
}

func (c *Insert) Apply(receiver **Document) error {
	return (*receiver).insertAt(c.Pos, c.Runes)
}

func (c *Insert) Undo(receiver **Document) error {
	_, err := (*receiver).deleteAt(c.Pos, len(c.Runes))
	return err
}

func (c *Insert) MergePolicy() undo.MergePolicy {
	if c.Tag == 0 {
		return undo.Never()
	}
	return undo.IfEqual(c.Tag)
}

// Delete removes Count runes starting at Pos. Apply stashes the
// removed runes so Undo can splice them back in and Redo (the default,
// a fresh Apply) can remove them again.
type Delete struct {
	Pos     int
	Count   int
	Tag     uint32
	removed []rune
}

// NewDelete builds a Delete command.
func NewDelete(pos, count int, tag uint32) *Delete {
	return &Delete{Pos: pos, Count: count, Tag: tag}
}

func (c *Delete) Apply(receiver **Document) error {
	removed, err := (*receiver).deleteAt(c.Pos, c.Count)
	if err != nil {
		return err
	}
	c.removed = removed
	return nil
}

func (c *Delete) Undo(receiver **Document) error {
	return (*receiver).insertAt(c.Pos, c.removed)
}

func (c *Delete) MergePolicy() undo.MergePolicy {
	if c.Tag == 0 {
		return undo.Never()
	}
	return undo.IfEqual(c.Tag)
}

var (
	_ undo.Command[*Document] = (*Insert)(nil)
	_ undo.Command[*Document] = (*Delete)(nil)
)
