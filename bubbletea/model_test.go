package bubbletea_test

import (
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffshot"
	"github.com/fwojciec/diffshot/bubbletea"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainRenderer creates a lipgloss renderer with no color profile so
// views can be asserted as plain text.
func plainRenderer() *lipgloss.Renderer {
	return lipgloss.NewRenderer(io.Discard)
}

// trueColorRenderer creates a lipgloss renderer that outputs true
// colors, for testing color output without touching global state.
func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func testDoc() *diffshot.Document {
	return &diffshot.Document{
		Files: []*diffshot.File{
			{
				ID:       "file-1",
				Path:     "src/parser.go",
				Selected: true,
				Hunks: []*diffshot.Hunk{
					{ID: "hunk-1", Header: "@@ -1,3 +1,3 @@", Selected: true},
					{ID: "hunk-2", Header: "@@ -20,2 +20,2 @@", Selected: true},
				},
			},
			{
				ID:       "file-2",
				Path:     "src/render.go",
				Selected: true,
				Hunks: []*diffshot.Hunk{
					{ID: "hunk-3", Header: "@@ -5,4 +5,4 @@", Selected: true},
				},
			},
		},
	}
}

// press sends a single rune keypress and returns the updated model.
func press(t *testing.T, m bubbletea.Model, r rune) bubbletea.Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	next, ok := updated.(bubbletea.Model)
	require.True(t, ok)
	return next
}

func TestModel_View_ListsFilesAndHunks(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(testDoc(), bubbletea.WithRenderer(plainRenderer()))
	view := m.View()

	assert.Contains(t, view, "src/parser.go")
	assert.Contains(t, view, "src/render.go")
	assert.Contains(t, view, "@@ -1,3 +1,3 @@")
	assert.Contains(t, view, "(2 hunks)")
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "2/2 files, 3/3 hunks selected")
}

func TestModel_View_EmptyDocument(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(&diffshot.Document{}, bubbletea.WithRenderer(plainRenderer()))

	assert.Contains(t, m.View(), "no changes detected")
}

func TestModel_Toggle(t *testing.T) {
	t.Parallel()

	t.Run("file row cascades to its hunks", func(t *testing.T) {
		t.Parallel()

		doc := testDoc()
		m := bubbletea.NewModel(doc, bubbletea.WithRenderer(plainRenderer()))

		m = press(t, m, ' ') // cursor starts on file-1

		assert.False(t, doc.Files[0].Selected)
		assert.False(t, doc.Files[0].Hunks[0].Selected)
		assert.Contains(t, m.View(), "1/2 files, 1/3 hunks selected")
	})

	t.Run("hunk row recomputes the summary", func(t *testing.T) {
		t.Parallel()

		doc := testDoc()
		m := bubbletea.NewModel(doc, bubbletea.WithRenderer(plainRenderer()))

		m = press(t, m, 'j') // move to hunk-1
		m = press(t, m, ' ')

		assert.False(t, doc.Files[0].Hunks[0].Selected)
		assert.True(t, doc.Files[0].Hunks[1].Selected)
		// file-1 still counts: one of its hunks remains selected.
		assert.Contains(t, m.View(), "2/2 files, 2/3 hunks selected")
	})

	t.Run("select none and all", func(t *testing.T) {
		t.Parallel()

		doc := testDoc()
		m := bubbletea.NewModel(doc, bubbletea.WithRenderer(plainRenderer()))

		m = press(t, m, 'n')
		assert.Contains(t, m.View(), "0/2 files, 0/3 hunks selected")

		m = press(t, m, 'a')
		assert.Contains(t, m.View(), "2/2 files, 3/3 hunks selected")
	})
}

func TestModel_DisplayToggles(t *testing.T) {
	t.Parallel()

	t.Run("d flips dark mode and reports it", func(t *testing.T) {
		t.Parallel()

		m := bubbletea.NewModel(testDoc(),
			bubbletea.WithRenderer(plainRenderer()),
			bubbletea.WithOptions(diffshot.DefaultRenderOptions()),
		)

		m = press(t, m, 'd')
		assert.Contains(t, m.View(), "dark mode off")

		m = press(t, m, 'd')
		assert.Contains(t, m.View(), "dark mode on")
	})

	t.Run("l flips line numbers and reports it", func(t *testing.T) {
		t.Parallel()

		m := bubbletea.NewModel(testDoc(),
			bubbletea.WithRenderer(plainRenderer()),
			bubbletea.WithOptions(diffshot.DefaultRenderOptions()),
		)

		m = press(t, m, 'l')
		assert.Contains(t, m.View(), "line numbers off")
	})
}

func TestModel_AppliesColors(t *testing.T) {
	t.Parallel()

	colored := bubbletea.NewModel(testDoc(), bubbletea.WithRenderer(trueColorRenderer())).View()
	plain := bubbletea.NewModel(testDoc(), bubbletea.WithRenderer(plainRenderer())).View()

	assert.Contains(t, colored, "\x1b[")
	assert.NotContains(t, plain, "\x1b[")
}

func TestModel_CursorMovement(t *testing.T) {
	t.Parallel()

	doc := testDoc()
	m := bubbletea.NewModel(doc, bubbletea.WithRenderer(plainRenderer()))

	// Down past the last row stays on the last row; that row is
	// file-2's only hunk.
	for i := 0; i < 10; i++ {
		m = press(t, m, 'j')
	}
	m = press(t, m, ' ')
	assert.False(t, doc.Files[1].Hunks[0].Selected)

	// Back up to the top toggles file-1.
	for i := 0; i < 10; i++ {
		m = press(t, m, 'k')
	}
	m = press(t, m, ' ')
	assert.False(t, doc.Files[0].Selected)
}

func TestModel_Export(t *testing.T) {
	t.Parallel()

	t.Run("success shows the confirmation message", func(t *testing.T) {
		t.Parallel()

		var exported *diffshot.Document
		m := bubbletea.NewModel(testDoc(),
			bubbletea.WithRenderer(plainRenderer()),
			bubbletea.WithExport(func(doc *diffshot.Document, _ diffshot.RenderOptions) (string, error) {
				exported = doc
				return "wrote out.png", nil
			}),
		)

		m = press(t, m, 'e')

		require.NotNil(t, exported)
		assert.Contains(t, m.View(), "wrote out.png")
	})

	t.Run("failure is reported without losing selection state", func(t *testing.T) {
		t.Parallel()

		doc := testDoc()
		m := bubbletea.NewModel(doc,
			bubbletea.WithRenderer(plainRenderer()),
			bubbletea.WithExport(func(*diffshot.Document, diffshot.RenderOptions) (string, error) {
				return "", errors.New("nothing selected to render")
			}),
		)

		m = press(t, m, 'n')
		m = press(t, m, 'e')

		assert.Contains(t, m.View(), "nothing selected to render")
		assert.Contains(t, m.View(), "0/2 files, 0/3 hunks selected")
	})

	t.Run("export uses the session's current display options", func(t *testing.T) {
		t.Parallel()

		var got diffshot.RenderOptions
		start := diffshot.DefaultRenderOptions()
		m := bubbletea.NewModel(testDoc(),
			bubbletea.WithRenderer(plainRenderer()),
			bubbletea.WithOptions(start),
			bubbletea.WithExport(func(_ *diffshot.Document, opts diffshot.RenderOptions) (string, error) {
				got = opts
				return "ok", nil
			}),
		)

		m = press(t, m, 'd')
		m = press(t, m, 'l')
		m = press(t, m, 'e')

		assert.Equal(t, !start.DarkMode, got.DarkMode)
		assert.Equal(t, !start.ShowLineNumbers, got.ShowLineNumbers)
		// Geometry is untouched by the display toggles.
		assert.Equal(t, start.Width, got.Width)
		assert.Equal(t, start.FontSize, got.FontSize)
	})

	t.Run("unconfigured export reports instead of panicking", func(t *testing.T) {
		t.Parallel()

		m := bubbletea.NewModel(testDoc(), bubbletea.WithRenderer(plainRenderer()))
		m = press(t, m, 'e')

		assert.Contains(t, m.View(), "export not configured")
	})
}
