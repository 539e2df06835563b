package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	undo "github.com/yourusername/undo"
	"github.com/yourusername/undo/textops"
)

func demoCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Interactive Bubble Tea demo of the undo engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(*configFile)
			if err != nil {
				return err
			}
			m := newDemoModel(cfg)
			p := tea.NewProgram(m)
			_, err = p.Run()
			return err
		},
	}
}

// undoSignalMsg wraps an undo.Signal as a tea.Msg, the same pattern
// undo_redo.go uses for UndoDoneMsg/RedoDoneMsg. The demo never sends
// one: its sink discards signals and Update ignores every message that
// is not a key press (see newDemoModel).
type undoSignalMsg struct{ sig undo.Signal }

// demoStyles holds the handful of lipgloss styles the status line
// needs, the same ad hoc local-style pattern footer.go uses rather
// than threading a whole theme.Theme through a throwaway demo.
type demoStyles struct {
	dim    lipgloss.Style
	ok     lipgloss.Style
	bad    lipgloss.Style
	cursor lipgloss.Style
}

func newDemoStyles(color bool) demoStyles {
	if !color {
		return demoStyles{}
	}
	return demoStyles{
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		ok:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		bad:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		cursor: lipgloss.NewStyle().Reverse(true),
	}
}

// demoModel drives a History[*textops.Document] from keystrokes: typed
// runes insert at the cursor, backspace deletes before it, ctrl+z/
// ctrl+y undo/redo, and a run of typing without a cursor jump merges
// into one undo step via a shared Insert tag.
type demoModel struct {
	doc     *textops.Document
	history *undo.History[*textops.Document]
	styles  demoStyles

	cursor   int
	tag      uint32
	lastMsg  string
	canUndo  bool
	canRedo  bool
	isSaved  bool
	quitting bool
}

func newDemoModel(cfg *Config) *demoModel {
	doc := &textops.Document{Text: []rune(cfg.InitialText)}
	m := &demoModel{doc: doc, styles: newDemoStyles(cfg.Color), cursor: len(doc.Text), tag: 1}

	m.history = undo.NewHistoryBuilder[*textops.Document]().
		Limit(cfg.Limit).
		Saved(true).
		SignalSink(func(sig undo.Signal) {
			// The sink fires synchronously from inside engine calls, so it
			// can't safely push through a tea.Program here; demoModel reads
			// canUndo/canRedo/isSaved straight off the engine after every
			// Update instead. Kept as a Signal-shaped hook point so a
			// caller with a running tea.Program could forward sig via
			// p.Send(undoSignalMsg{sig}).
			_ = sig
		}).
		Build(doc)

	m.refresh()
	return m
}

func (m *demoModel) refresh() {
	m.canUndo = m.history.CanUndo()
	m.canRedo = m.history.CanRedo()
	m.isSaved = m.history.IsSaved()
	if m.cursor > len(m.doc.Text) {
		m.cursor = len(m.doc.Text)
	}
}

func (m *demoModel) Init() tea.Cmd { return nil }

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyCtrlZ:
		did, err := m.history.Undo()
		m.report("undo", did, err)

	case tea.KeyCtrlY:
		did, err := m.history.Redo()
		m.report("redo", did, err)

	case tea.KeyCtrlS:
		m.history.SetSaved(true)
		m.lastMsg = "marked saved"

	case tea.KeyBackspace:
		if m.cursor > 0 {
			cmd := textops.NewDelete(m.cursor-1, 1, m.tag)
			if _, err := m.history.Apply(cmd); err != nil {
				m.lastMsg = fmt.Sprintf("delete failed: %v", err)
			} else {
				m.cursor--
				m.lastMsg = ""
			}
		}

	case tea.KeyLeft:
		if m.cursor > 0 {
			m.cursor--
		}
		m.tag++ // a cursor jump starts a new merge run

	case tea.KeyRight:
		if m.cursor < len(m.doc.Text) {
			m.cursor++
		}
		m.tag++

	case tea.KeyRunes, tea.KeySpace:
		text := string(keyMsg.Runes)
		if keyMsg.Type == tea.KeySpace {
			text = " "
		}
		cmd := textops.NewInsert(m.cursor, text, m.tag)
		if _, err := m.history.Apply(cmd); err != nil {
			m.lastMsg = fmt.Sprintf("insert failed: %v", err)
		} else {
			m.cursor += len([]rune(text))
			m.lastMsg = ""
		}
	}

	m.refresh()
	return m, nil
}

func (m *demoModel) report(label string, did bool, err error) {
	switch {
	case err != nil:
		m.lastMsg = fmt.Sprintf("%s failed: %v", label, err)
	case !did:
		m.lastMsg = fmt.Sprintf("nothing to %s", label)
	default:
		m.lastMsg = ""
	}
}

func (m *demoModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("undoplay — ctrl+z undo, ctrl+y redo, ctrl+s save, esc quit\n\n")

	text := string(m.doc.Text)
	before, after := text[:min(m.cursor, len(text))], ""
	if m.cursor < len(text) {
		after = text[m.cursor:]
	}
	b.WriteString(before)
	b.WriteString(m.styles.cursor.Render("|"))
	b.WriteString(after)
	b.WriteString("\n\n")

	status := fmt.Sprintf("undo:%s redo:%s saved:%s",
		boolMark(m.canUndo, m.styles), boolMark(m.canRedo, m.styles), boolMark(m.isSaved, m.styles))
	b.WriteString(m.styles.dim.Render(status))
	if m.lastMsg != "" {
		b.WriteString("  " + m.lastMsg)
	}
	b.WriteString("\n")
	return b.String()
}

func boolMark(v bool, s demoStyles) string {
	if v {
		return s.ok.Render("yes")
	}
	return s.bad.Render("no")
}
