// Package mock provides test doubles for the diffshot interfaces.
package mock

import (
	"context"
	"io"

	"github.com/fwojciec/diffshot"
)

// Compile-time interface verification.
var (
	_ diffshot.Parser   = (*Parser)(nil)
	_ diffshot.Renderer = (*Renderer)(nil)
	_ diffshot.Store    = (*Store)(nil)
	_ diffshot.Viewer   = (*Viewer)(nil)
)

// Parser implements diffshot.Parser for testing.
type Parser struct {
	ParseFn func(r io.Reader) (*diffshot.Document, error)
}

func (p *Parser) Parse(r io.Reader) (*diffshot.Document, error) {
	return p.ParseFn(r)
}

// Renderer implements diffshot.Renderer for testing.
type Renderer struct {
	RenderFn func(doc *diffshot.Document, opts diffshot.RenderOptions) ([]byte, error)
}

func (r *Renderer) Render(doc *diffshot.Document, opts diffshot.RenderOptions) ([]byte, error) {
	return r.RenderFn(doc, opts)
}

// Viewer implements diffshot.Viewer for testing.
type Viewer struct {
	ViewFn func(ctx context.Context, doc *diffshot.Document) error
}

func (v *Viewer) View(ctx context.Context, doc *diffshot.Document) error {
	return v.ViewFn(ctx, doc)
}

// Store implements diffshot.Store for testing. The zero value is a
// working in-memory store.
type Store struct {
	LoadFn func() ([]diffshot.SavedDiff, error)
	SaveFn func(list []diffshot.SavedDiff) error

	// Saved captures the last list passed to Save when SaveFn is nil.
	Saved []diffshot.SavedDiff
}

func (s *Store) Load() ([]diffshot.SavedDiff, error) {
	if s.LoadFn == nil {
		return s.Saved, nil
	}
	return s.LoadFn()
}

func (s *Store) Save(list []diffshot.SavedDiff) error {
	if s.SaveFn == nil {
		s.Saved = list
		return nil
	}
	return s.SaveFn(list)
}
