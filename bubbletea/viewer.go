package bubbletea

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/diffshot"
)

// Compile-time interface verification.
var _ diffshot.Viewer = (*Viewer)(nil)

// Viewer runs the selection UI as a full-screen bubbletea program.
type Viewer struct {
	Export  ExportFunc
	Options diffshot.RenderOptions
}

// NewViewer creates a viewer whose export key triggers fn, starting
// from the given display options.
func NewViewer(fn ExportFunc, opts diffshot.RenderOptions) *Viewer {
	return &Viewer{Export: fn, Options: opts}
}

// View displays the document and blocks until the user quits. The
// document's selection flags reflect the user's toggles afterwards.
func (v *Viewer) View(ctx context.Context, doc *diffshot.Document) error {
	p := tea.NewProgram(
		NewModel(doc, WithExport(v.Export), WithOptions(v.Options)),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running selection ui: %w", err)
	}
	return nil
}
