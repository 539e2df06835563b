package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	undo "github.com/yourusername/undo"
	"github.com/yourusername/undo/textops"
)

var (
	branchLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	activeBranch = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dimText      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func branchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branches",
		Short: "Build a small, forked History and print its active branch",
		RunE: func(cmd *cobra.Command, args []string) error {
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
			if _, err := h.Apply(textops.NewInsert(2, "y", 0)); err != nil {
				return err
			}
			if _, err := h.Undo(); err != nil {
				return err
			}
			if _, err := h.Apply(textops.NewInsert(1, "z", 0)); err != nil {
				return err
			}

			active := h.Branch()
			fmt.Printf("%s %s (cursor %d)\n", branchLabel.Render("root branch"), activeBranch.Render(fmt.Sprintf("#%d", active)), h.Cursor())
			fmt.Printf("  current text: %q\n", doc.String())
			fmt.Println(dimText.Render("  (fork points recorded as history diverges; run `play --scenario branch` to jump between them)"))
			return nil
		},
	}
}
