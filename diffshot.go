// Package diffshot provides domain types for parsing unified diffs,
// selecting a subset of their files and hunks, and rendering the
// selection as a shareable image.
package diffshot

import "regexp"

// Document represents a complete parsed diff. Files appear in source
// order and are never reordered.
type Document struct {
	Files []*File
}

// File represents one "diff --git" section of a document.
type File struct {
	ID       string // "file-<n>", monotonic per parse
	Header   string // raw header line plus accumulated ---/+++ metadata
	Path     string // new-side path, or "unknown" if the header didn't match
	Hunks    []*Hunk
	Selected bool
}

// Hunk represents a contiguous block of changes within a file.
type Hunk struct {
	ID       string // "hunk-<n>", monotonic per parse
	Header   string // raw "@@ -N,M +N,M @@" line
	Lines    []Line
	Selected bool
}

// Line is a single raw diff line, marker character intact. The kind is
// derived from the first byte on demand rather than stored, so it can
// never drift from the text.
type Line string

// LineKind represents the type of a diff line.
type LineKind int

// Line kinds.
const (
	LineContext LineKind = iota
	LineAdded
	LineRemoved
)

// Kind derives the line's kind from its marker character. Anything that
// is not an addition or a removal is context, including lines with a
// literal leading space and empty lines.
func (l Line) Kind() LineKind {
	if len(l) == 0 {
		return LineContext
	}
	switch l[0] {
	case '+':
		return LineAdded
	case '-':
		return LineRemoved
	default:
		return LineContext
	}
}

// Marker returns the glyph drawn in the marker column: '+', '-', or a
// space for context lines.
func (l Line) Marker() rune {
	switch l.Kind() {
	case LineAdded:
		return '+'
	case LineRemoved:
		return '-'
	default:
		return ' '
	}
}

// Text returns the line's content with its marker stripped. Context
// lines lose their leading space if they have one.
func (l Line) Text() string {
	if len(l) == 0 {
		return ""
	}
	switch l[0] {
	case '+', '-', ' ':
		return string(l[1:])
	default:
		return string(l)
	}
}

// LineNumber is a derived old/new line-number pair. A zero value means
// the line does not exist on that side and its gutter cell stays blank.
type LineNumber struct {
	Old int
	New int
}

// hunkHeaderRE matches "@@ -oldStart[,oldCount] +newStart[,newCount] @@".
var hunkHeaderRE = regexp.MustCompile(`^@@ -(\d+)(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// LineNumbers derives the old/new line number for every line in the
// hunk by walking its lines from the header's start positions: every
// line except an addition consumes the next old number, every line
// except a removal consumes the next new number. The result is
// recomputed on every call, never cached, so it cannot desync from the
// lines. A header that doesn't match the hunk pattern yields nil and
// the gutter renders blank for the whole hunk.
func (h *Hunk) LineNumbers() []LineNumber {
	m := hunkHeaderRE.FindStringSubmatch(h.Header)
	if m == nil {
		return nil
	}
	old := atoi(m[1])
	new := atoi(m[2])

	nums := make([]LineNumber, len(h.Lines))
	for i, line := range h.Lines {
		switch line.Kind() {
		case LineAdded:
			nums[i] = LineNumber{New: new}
			new++
		case LineRemoved:
			nums[i] = LineNumber{Old: old}
			old++
		default:
			nums[i] = LineNumber{Old: old, New: new}
			old++
			new++
		}
	}
	return nums
}

// atoi converts a digits-only string already vetted by hunkHeaderRE.
func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
