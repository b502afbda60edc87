// Command diffshot parses a unified diff, lets the user pick files and
// hunks interactively, and exports the selection as a PNG image.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/diffshot"
	"github.com/fwojciec/diffshot/bubbletea"
	"github.com/fwojciec/diffshot/fs"
	"github.com/fwojciec/diffshot/raster"
	"github.com/fwojciec/diffshot/toml"
	"github.com/fwojciec/diffshot/unidiff"
)

// App wires the application together. Fields are exported so tests can
// inject collaborators.
type App struct {
	Input      io.Reader // diff source when FilePath is empty
	FilePath   string
	ExportName string
	Options    diffshot.RenderOptions
	NoTUI      bool

	Parser   diffshot.Parser
	Renderer diffshot.Renderer
	Viewer   diffshot.Viewer // defaults to the bubbletea picker
	Store    diffshot.Store

	Out       io.Writer
	WriteFile func(name string, data []byte) error
	Log       *slog.Logger
	Now       func() time.Time
}

// Run reads the diff, parses it, records it in the history, and either
// renders everything straight to a file or hands the document to the
// interactive picker. Persistence failures are logged and ignored; the
// in-memory document stays authoritative.
func (a *App) Run(ctx context.Context) error {
	text, err := a.readInput()
	if err != nil {
		return err
	}

	doc, err := a.Parser.Parse(bytes.NewReader(text))
	if err != nil {
		return fmt.Errorf("parsing diff: %w", err)
	}

	if len(strings.TrimSpace(string(text))) == 0 {
		fmt.Fprintln(a.Out, "no input; pass a .diff file or pipe one on stdin")
		return nil
	}

	// Every successful parse of non-empty input is recorded, even one
	// that produced no files.
	a.saveHistory(string(text))

	if len(doc.Files) == 0 {
		fmt.Fprintln(a.Out, "no changes detected")
		return nil
	}

	export := func(doc *diffshot.Document, opts diffshot.RenderOptions) (string, error) {
		data, err := a.Renderer.Render(doc, opts)
		if err != nil {
			return "", err
		}
		name := diffshot.ExportFilename(a.ExportName, a.Now())
		if err := a.WriteFile(name, data); err != nil {
			return "", fmt.Errorf("writing %s: %w", name, err)
		}
		return "wrote " + name, nil
	}

	if a.NoTUI {
		msg, err := export(doc, a.Options)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.Out, msg)
		return nil
	}

	viewer := a.Viewer
	if viewer == nil {
		viewer = bubbletea.NewViewer(export, a.Options)
	}
	return viewer.View(ctx, doc)
}

func (a *App) readInput() ([]byte, error) {
	if a.FilePath != "" {
		data, err := os.ReadFile(a.FilePath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", a.FilePath, err)
		}
		return data, nil
	}
	data, err := io.ReadAll(a.Input)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}

// saveHistory records the parsed diff, most recent first, capped and
// size-limited by the domain rules.
func (a *App) saveHistory(text string) {
	if a.Store == nil {
		return
	}
	list, err := a.Store.Load()
	if err != nil {
		a.Log.Warn("loading history failed", "error", err)
		list = nil
	}
	name := a.ExportName
	if name == "" && a.FilePath != "" {
		name = filepath.Base(a.FilePath)
	}
	if name == "" {
		name = "stdin"
	}
	now := a.Now()
	list = diffshot.AddToHistory(list, diffshot.SavedDiff{
		ID:      fmt.Sprintf("diff-%d", now.UnixMilli()),
		Name:    name,
		SavedAt: now.UnixMilli(),
		RawText: text,
	})
	if err := a.Store.Save(list); err != nil {
		a.Log.Warn("saving history failed", "error", err)
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := toml.LoadConfig(fs.DefaultConfigPath())
	if err != nil {
		logger.Warn("ignoring config", "error", err)
	}
	opts := cfg.Apply(diffshot.DefaultRenderOptions())

	var (
		exportName = flag.String("o", "", "export file name, written as <name>.png")
		width      = flag.Int("w", opts.Width, "image width in pixels")
		fontSize   = flag.Int("font-size", opts.FontSize, "font size in pixels")
		light      = flag.Bool("light", !opts.DarkMode, "use the light palette")
		noNumbers  = flag.Bool("no-line-numbers", !opts.ShowLineNumbers, "hide the line number gutter")
		noTUI      = flag.Bool("no-tui", false, "skip the picker and render everything selected")
	)
	flag.Parse()

	opts.Width = *width
	opts.FontSize = *fontSize
	opts.DarkMode = !*light
	opts.ShowLineNumbers = !*noNumbers

	app := &App{
		Input:      os.Stdin,
		FilePath:   flag.Arg(0),
		ExportName: *exportName,
		Options:    opts,
		NoTUI:      *noTUI,
		Parser:     unidiff.NewParser(),
		Renderer:   raster.NewRenderer(),
		Store:      fs.NewStore(filepath.Join(fs.DefaultDataDir(), "history.json")),
		Out:        os.Stdout,
		WriteFile: func(name string, data []byte) error {
			return os.WriteFile(name, data, 0o644)
		},
		Log: logger,
		Now: time.Now,
	}

	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "diffshot: %v\n", err)
		os.Exit(1)
	}
}
