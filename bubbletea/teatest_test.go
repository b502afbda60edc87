package bubbletea_test

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/diffshot/bubbletea"
)

func TestModel_RendersSelectionList(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testDoc())
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("src/parser.go")) &&
			bytes.Contains(out, []byte("@@ -1,3 +1,3 @@")) &&
			bytes.Contains(out, []byte("3/3 hunks selected"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestModel_ToggleUpdatesStatusBar(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testDoc())
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("3/3 hunks selected"))
	})

	// Deselect the first file; both of its hunks go with it.
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("1/2 files, 1/3 hunks selected"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}
