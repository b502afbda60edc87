package diffshot

import (
	"errors"
	"strings"
	"time"
)

// ErrEmptySelection is returned by renderers when the filtered tree has
// no hunks left to draw. It aborts only the render call; the document
// and its selection state are untouched.
var ErrEmptySelection = errors.New("diffshot: nothing selected to render")

// RenderOptions control the geometry and palette of a render. The same
// document rendered twice with equal options produces identical pixels.
type RenderOptions struct {
	FontSize        int  // row heights derive from this, in pixels
	Width           int  // canvas width, supplied by the caller
	DarkMode        bool
	ShowLineNumbers bool
}

// DefaultRenderOptions returns the options used when the caller doesn't
// override anything.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		FontSize:        14,
		Width:           900,
		DarkMode:        true,
		ShowLineNumbers: true,
	}
}

// Renderer turns a document's current selection into encoded image
// bytes.
type Renderer interface {
	// Render filters doc by its selection flags and paints the result.
	// Returns ErrEmptySelection when nothing survives the filter.
	Render(doc *Document, opts RenderOptions) ([]byte, error)
}

// ExportFilename returns the file name for an exported image: the
// user-supplied name with the image extension appended, or a
// timestamp-derived fallback when the name is empty.
func ExportFilename(name string, now time.Time) string {
	if name != "" {
		return name + ".png"
	}
	ts := now.UTC().Format(time.RFC3339)
	ts = strings.ReplaceAll(ts, ":", "-")
	ts = strings.ReplaceAll(ts, ".", "-")
	return "git-diff-" + ts + ".png"
}
