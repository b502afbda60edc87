// Package raster renders a diff selection onto an RGBA surface and
// encodes it as PNG. Layout is two-pass: a measure pass sums fixed
// per-row heights into the canvas height, then a paint pass walks the
// same tree with a running vertical cursor. Identical inputs paint
// identical pixels.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"
	"sync"

	"github.com/fwojciec/diffshot"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Compile-time interface verification.
var _ diffshot.Renderer = (*Renderer)(nil)

// Layout constants. Row heights add the per-kind slack to the font
// size; gaps and padding are fixed.
const (
	topPadding    = 10
	bottomPadding = 10
	hunkGap       = 5
	fileGap       = 10
	textInset     = 8
	tabWidth      = 8
)

var (
	fontOnce sync.Once
	fontErr  error
	monoFont *sfnt.Font
	boldFont *sfnt.Font
)

func loadFonts() (*sfnt.Font, *sfnt.Font, error) {
	fontOnce.Do(func() {
		monoFont, fontErr = opentype.Parse(gomono.TTF)
		if fontErr != nil {
			return
		}
		boldFont, fontErr = opentype.Parse(gomonobold.TTF)
	})
	if fontErr != nil {
		return nil, nil, fmt.Errorf("parsing embedded fonts: %w", fontErr)
	}
	return monoFont, boldFont, nil
}

// Renderer paints documents as PNG images.
type Renderer struct{}

// NewRenderer creates a new raster renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render filters doc by its selection flags, lays the surviving tree
// out, paints it, and returns the encoded PNG. It returns
// diffshot.ErrEmptySelection when nothing survives the filter and
// never produces partial output: any failure leaves the document and
// its selection untouched.
func (r *Renderer) Render(doc *diffshot.Document, opts diffshot.RenderOptions) ([]byte, error) {
	if opts.FontSize <= 0 || opts.Width <= 0 {
		return nil, fmt.Errorf("raster: invalid geometry %dx%dpx font", opts.Width, opts.FontSize)
	}

	filtered := doc.FilterSelected()
	if len(filtered.Files) == 0 {
		return nil, diffshot.ErrEmptySelection
	}

	mono, bold, err := loadFonts()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(mono, &opentype.FaceOptions{
		Size:    float64(opts.FontSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: building face: %w", err)
	}
	boldFace, err := opentype.NewFace(bold, &opentype.FaceOptions{
		Size:    float64(opts.FontSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: building bold face: %w", err)
	}

	c := &canvas{
		img:   image.NewRGBA(image.Rect(0, 0, opts.Width, measureHeight(filtered, opts.FontSize))),
		theme: themeFor(opts.DarkMode),
		face:  face,
		bold:  boldFace,
		opts:  opts,
	}
	c.paint(filtered)

	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, fmt.Errorf("raster: encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// measureHeight is the measure pass: a pure sum of the fixed row-height
// formulas over the filtered tree.
func measureHeight(doc *diffshot.Document, fontSize int) int {
	h := topPadding + bottomPadding
	for fi, f := range doc.Files {
		if fi > 0 {
			h += fileGap
		}
		h += fontSize + 8 // file header band
		for hi, hunk := range f.Hunks {
			if hi > 0 {
				h += hunkGap
			}
			h += fontSize + 4                     // hunk header band
			h += len(hunk.Lines) * (fontSize + 2) // content rows
		}
	}
	return h
}

// canvas carries the paint pass state.
type canvas struct {
	img   *image.RGBA
	theme Theme
	face  font.Face
	bold  font.Face
	opts  diffshot.RenderOptions
}

func (c *canvas) paint(doc *diffshot.Document) {
	width := c.opts.Width

	c.fill(0, 0, width, c.img.Bounds().Dy(), c.theme.Background)

	y := topPadding
	for fi, f := range doc.Files {
		y = c.paintFile(f, y)
		if fi < len(doc.Files)-1 {
			// Thicker divider between files, centered in the gap.
			c.fill(0, y+fileGap/2-1, width, 2, c.theme.Divider)
			y += fileGap
		}
	}
}

func (c *canvas) paintFile(f *diffshot.File, y int) int {
	width := c.opts.Width
	fontSize := c.opts.FontSize
	headerH := fontSize + 8

	c.fill(0, y, width, headerH, c.theme.FileHeaderBG)
	c.text(c.bold, textInset, baseline(c.bold, y, headerH), headerLine(f), c.theme.HeaderText)
	y += headerH

	for hi, h := range f.Hunks {
		y = c.paintHunk(h, y)
		if hi < len(f.Hunks)-1 {
			// Thin divider at the midpoint of the inter-hunk gap.
			c.fill(0, y+hunkGap/2, width, 1, c.theme.Divider)
			y += hunkGap
		}
	}
	return y
}

func (c *canvas) paintHunk(h *diffshot.Hunk, y int) int {
	width := c.opts.Width
	fontSize := c.opts.FontSize
	headerH := fontSize + 4
	lineH := fontSize + 2

	c.fill(0, y, width, headerH, c.theme.HunkHeaderBG)
	c.text(c.face, textInset, baseline(c.face, y, headerH), h.Header, c.theme.HeaderText)
	y += headerH

	gutterW := 0
	numColW := 0
	if c.opts.ShowLineNumbers {
		numColW = c.advance("0")*5 + 6
		gutterW = numColW*2 + 2 // two columns, two 1px dividers
	}
	markerX := gutterW + textInset
	textX := markerX + c.advance(" ") + 4

	nums := h.LineNumbers()
	for i, line := range h.Lines {
		switch line.Kind() {
		case diffshot.LineAdded:
			c.fill(0, y, width, lineH, c.theme.AddedBG)
		case diffshot.LineRemoved:
			c.fill(0, y, width, lineH, c.theme.RemovedBG)
		}

		if c.opts.ShowLineNumbers {
			if nums != nil {
				c.number(nums[i].Old, 0, numColW, y, lineH)
				c.number(nums[i].New, numColW+1, numColW, y, lineH)
			}
			c.fill(numColW, y, 1, lineH, c.theme.Divider)
			c.fill(numColW*2+1, y, 1, lineH, c.theme.Divider)
		}

		col := c.theme.Text
		switch line.Kind() {
		case diffshot.LineAdded:
			col = c.theme.AddedText
		case diffshot.LineRemoved:
			col = c.theme.RemovedText
		}
		base := baseline(c.face, y, lineH)
		c.text(c.face, markerX, base, string(line.Marker()), col)
		c.text(c.face, textX, base, expandTabs(line.Text()), col)
		y += lineH
	}
	return y
}

// number right-aligns n inside its gutter column; 0 stays blank.
func (c *canvas) number(n, x, colW, y, lineH int) {
	if n == 0 {
		return
	}
	s := strconv.Itoa(n)
	c.text(c.face, x+colW-3-c.advance(s), baseline(c.face, y, lineH), s, c.theme.LineNumber)
}

func (c *canvas) fill(x, y, w, h int, col color.RGBA) {
	draw.Draw(c.img, image.Rect(x, y, x+w, y+h), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *canvas) text(face font.Face, x, y int, s string, col color.RGBA) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// advance returns the horizontal advance of s in the content face.
func (c *canvas) advance(s string) int {
	return font.MeasureString(c.face, s).Ceil()
}

// baseline vertically centers the face's em box inside a row.
func baseline(face font.Face, y, rowH int) int {
	m := face.Metrics()
	asc := m.Ascent.Ceil()
	desc := m.Descent.Ceil()
	return y + asc + (rowH-asc-desc)/2
}

// headerLine returns the display line for a file header band: the raw
// diff --git line without the accumulated ---/+++ metadata.
func headerLine(f *diffshot.File) string {
	if i := strings.IndexByte(f.Header, '\n'); i >= 0 {
		return f.Header[:i]
	}
	return f.Header
}

// expandTabs expands tabs to the next tab stop so the monospace drawer
// never sees a control character.
func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			next := ((col / tabWidth) + 1) * tabWidth
			b.WriteString(strings.Repeat(" ", next-col))
			col = next
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}
