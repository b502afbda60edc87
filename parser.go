package diffshot

import "io"

// Parser parses unified diff text into a Document.
type Parser interface {
	// Parse reads diff text and returns the parsed document. The error
	// reports read failures only: malformed or empty diff text is not
	// an error, it yields a document with zero files.
	Parse(r io.Reader) (*Document, error)
}
