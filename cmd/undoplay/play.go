package main

import (
	"fmt"

	"github.com/spf13/cobra"

	undo "github.com/yourusername/undo"
	"github.com/yourusername/undo/textops"
)

func playCmd(configFile *string) *cobra.Command {
	var scenario string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run one of the engine's worked scenarios and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(*configFile)
			if err != nil {
				return err
			}
			switch scenario {
			case "merge":
				return playMerge()
			case "limit":
				return playLimit(cfg)
			case "saved":
				return playSaved()
			case "branch":
				return playBranch()
			case "composite":
				return playComposite()
			default:
				return fmt.Errorf("unknown scenario %q (want merge, limit, saved, branch, composite)", scenario)
			}
		},
	}

	cmd.Flags().StringVar(&scenario, "scenario", "merge", "which worked scenario to run: merge, limit, saved, branch, composite")
	return cmd
}

func report(label string, doc *textops.Document, canUndo, canRedo bool) {
	fmt.Printf("%s: text=%q canUndo=%v canRedo=%v\n", label, doc.String(), canUndo, canRedo)
}

// playMerge exercises apply-time merging: three inserts sharing a tag
// collapse into one undo step.
func playMerge() error {
	doc := &textops.Document{}
	r := undo.NewRecord[*textops.Document](doc)

	for _, s := range []string{"a", "b", "c"} {
		if _, err := r.Apply(textops.NewInsert(len(doc.Text), s, 1)); err != nil {
			return err
		}
	}
	report("after apply a,b,c (merged)", doc, r.CanUndo(), r.CanRedo())
	fmt.Printf("len=%d (merged into one entry)\n", r.Len())

	if _, err := r.Undo(); err != nil {
		return err
	}
	report("after undo", doc, r.CanUndo(), r.CanRedo())

	if _, err := r.Redo(); err != nil {
		return err
	}
	report("after redo", doc, r.CanUndo(), r.CanRedo())
	return nil
}

// playLimit exercises the Record's entry cap: the oldest entry is
// evicted once the limit is exceeded.
func playLimit(cfg *Config) error {
	doc := &textops.Document{}
	r := undo.NewRecordBuilder[*textops.Document]().Limit(2).Build(doc)

	for _, s := range []string{"a", "b", "c"} {
		if _, err := r.Apply(textops.NewInsert(len(doc.Text), s, 0)); err != nil {
			return err
		}
	}
	report("after apply a,b,c with limit=2", doc, r.CanUndo(), r.CanRedo())
	fmt.Printf("len=%d\n", r.Len())

	if _, err := r.Undo(); err != nil {
		return err
	}
	if _, err := r.Undo(); err != nil {
		return err
	}
	report("after undo twice (only two undoes possible)", doc, r.CanUndo(), r.CanRedo())
	return nil
}

// playSaved exercises saved-marker invalidation: diverging from a
// saved position drops the marker on a Record but migrates it onto the
// spun-off branch on a History.
func playSaved() error {
	doc := &textops.Document{}
	h := undo.NewHistory[*textops.Document](doc)

	if _, err := h.Apply(textops.NewInsert(0, "a", 0)); err != nil {
		return err
	}
	h.SetSaved(true)
	if _, err := h.Undo(); err != nil {
		return err
	}
	if _, err := h.Apply(textops.NewInsert(0, "x", 0)); err != nil {
		return err
	}
	fmt.Printf("after diverging from the saved position: text=%q isSaved=%v\n", doc.String(), h.IsSaved())

	if _, err := h.GoTo(1, 1); err != nil {
		return err
	}
	fmt.Printf("after go_to the branch holding the old future: text=%q isSaved=%v\n", doc.String(), h.IsSaved())
	return nil
}

// playBranch exercises History's branch-forest jump: undoing then
// applying a new command spins the old future off as a sibling branch,
// and go_to replays back onto it.
func playBranch() error {
	doc := &textops.Document{}
	h := undo.NewHistory[*textops.Document](doc)

	if _, err := h.Apply(textops.NewInsert(0, "a", 0)); err != nil {
		return err
	}
	if _, err := h.Apply(textops.NewInsert(1, "b", 0)); err != nil {
		return err
	}
	if _, err := h.Undo(); err != nil {
		return err
	}
	if _, err := h.Apply(textops.NewInsert(1, "x", 0)); err != nil {
		return err
	}
	fmt.Printf("active branch %d: text=%q\n", h.Branch(), doc.String())

	if _, err := h.GoTo(1, 2); err != nil {
		return err
	}
	fmt.Printf("after go_to(1, 2): text=%q\n", doc.String())
	return nil
}

// playComposite exercises a Composite whose middle command fails: the
// whole apply is rejected and the Record is left untouched.
func playComposite() error {
	doc := &textops.Document{}
	r := undo.NewRecord[*textops.Document](doc)

	ok1 := textops.NewInsert(0, "a", 0)
	fail := textops.NewDelete(50, 1, 0) // out of range: guaranteed to fail
	ok2 := textops.NewInsert(0, "b", 0)

	composite := undo.JoinAll[*textops.Document](ok1, fail, ok2)
	_, err := r.Apply(composite)
	fmt.Printf("apply([ok, fail, ok]): err=%v len=%d cursor=%d text=%q\n", err, r.Len(), r.Cursor(), doc.String())
	return nil
}
