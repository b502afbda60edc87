// Package unidiff parses pre-formatted unified diff text. It is a
// deliberately forgiving pass-through parser: unrecognized input never
// fails, it just produces fewer entities.
package unidiff

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fwojciec/diffshot"
)

// Compile-time interface verification.
var _ diffshot.Parser = (*Parser)(nil)

// fileHeaderRE extracts the new-side path from a git diff header.
var fileHeaderRE = regexp.MustCompile(`^diff --git a/(.*) b/(.*)$`)

// Parser parses unified diff text into a diffshot.Document.
type Parser struct{}

// NewParser creates a new unified diff parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads the whole text, then scans it once, left to right, with
// no backtracking. Malformed input is never an error: lines that fit
// nowhere are dropped, files and hunks open only on their header
// lines, and the worst case is a document with zero files. The
// returned error reports read failures only.
func (p *Parser) Parse(r io.Reader) (*diffshot.Document, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading diff: %w", err)
	}

	doc := &diffshot.Document{}

	var (
		currentFile *diffshot.File
		currentHunk *diffshot.Hunk
		fileCount   int
		hunkCount   int
	)

	flush := func() {
		if currentFile != nil {
			doc.Files = append(doc.Files, currentFile)
		}
		currentFile = nil
		currentHunk = nil
	}

	for _, line := range strings.Split(string(text), "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git"):
			flush()
			fileCount++
			currentFile = &diffshot.File{
				ID:       fmt.Sprintf("file-%d", fileCount),
				Header:   line,
				Path:     extractPath(line),
				Selected: true,
			}

		// Checked before the hunk-line case on purpose: ---/+++
		// metadata accumulates onto the open file header even when a
		// hunk is open. Stray leading metadata has no home and is
		// dropped.
		case strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++"):
			if currentFile != nil {
				currentFile.Header += "\n" + line
			}

		case strings.HasPrefix(line, "@@"):
			if currentFile != nil {
				hunkCount++
				currentHunk = &diffshot.Hunk{
					ID:       fmt.Sprintf("hunk-%d", hunkCount),
					Header:   line,
					Selected: true,
				}
				currentFile.Hunks = append(currentFile.Hunks, currentHunk)
			}

		default:
			if currentHunk != nil {
				currentHunk.Lines = append(currentHunk.Lines, diffshot.Line(line))
			}
		}
	}
	flush()

	return doc, nil
}

// extractPath returns the new-side path from a "diff --git a/x b/y"
// line, or "unknown" when the line doesn't match that shape.
func extractPath(line string) string {
	m := fileHeaderRE.FindStringSubmatch(line)
	if m == nil {
		return "unknown"
	}
	return m[2]
}
