package diffshot

import "context"

// Viewer displays a document to the user for interactive selection.
type Viewer interface {
	// View displays the document and blocks until the user exits.
	// Selection toggles mutate the document in place.
	View(ctx context.Context, doc *Document) error
}
