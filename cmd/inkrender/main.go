// Command inkrender renders an ink page to PNG or PDF.
//
// It loads an optional JSON document, replays an optional event script on
// top of it and writes the resulting frame:
//
//	inkrender -doc page.json -events strokes.json -template lined -dpr 2 -o page.pdf
//
// Frames are drawn by a registered display backend, "raster" unless
// -backend names another.
//
// Build with -tags gpu to let gg use its GPU accelerator.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/display"
	"github.com/gogpu/ink/internal/export"
)

func main() {
	var (
		docPath    = flag.String("doc", "", "document JSON to load")
		eventsPath = flag.String("events", "", "event script JSON to replay")
		output     = flag.String("o", "page.png", "output file (.png or .pdf)")
		backend    = flag.String("backend", export.DefaultBackend, "display backend that renders the page")
		savePath   = flag.String("save", "", "write the resulting document JSON here")
		background = flag.String("background", "", "background image (png, jpeg, bmp or webp)")
		template   = flag.String("template", "blank", "page template: blank, lined, grid or dotted")
		width      = flag.Float64("width", ink.DefaultPageWidth, "logical page width")
		height     = flag.Float64("height", ink.DefaultPageHeight, "logical page height")
		dpr        = flag.Float64("dpr", 1, "device pixel ratio of the output")
		verbose    = flag.Bool("v", false, "log engine activity")
	)
	flag.Parse()

	if *verbose {
		ink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := checkBackend(*backend); err != nil {
		log.Fatal(err)
	}

	tmpl, err := ink.ParseTemplate(*template)
	if err != nil {
		log.Fatalf("Invalid template: %v", err)
	}

	vp := ink.NewViewport(*width, *height)
	vp.DevicePixelRatio = *dpr
	e := ink.NewEngine(ink.WithViewport(vp), ink.WithTemplate(tmpl))

	if *docPath != "" {
		f, err := os.Open(*docPath)
		if err != nil {
			log.Fatalf("Failed to open document: %v", err)
		}
		doc, err := ink.DecodeDocument(f)
		_ = f.Close()
		if err != nil {
			log.Fatalf("Failed to load document: %v", err)
		}
		e.SetDocument(doc)
	}

	if *background != "" {
		f, err := os.Open(*background)
		if err != nil {
			log.Fatalf("Failed to open background: %v", err)
		}
		if err := e.LoadBackground(f); err != nil {
			log.Printf("Rendering without background: %v", err)
		}
		_ = f.Close()
	}

	if *eventsPath != "" {
		f, err := os.Open(*eventsPath)
		if err != nil {
			log.Fatalf("Failed to open script: %v", err)
		}
		steps, err := readScript(f)
		_ = f.Close()
		if err != nil {
			log.Fatalf("Failed to read script: %v", err)
		}
		n, err := runScript(e, steps)
		if err != nil {
			log.Fatalf("Script failed: %v", err)
		}
		log.Printf("Replayed %d events", n)
	}

	if err := export.WriteFile(*output, e.Frame(), export.WithBackend(*backend)); err != nil {
		log.Fatalf("Failed to export: %v", err)
	}

	if *savePath != "" {
		f, err := os.Create(*savePath)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *savePath, err)
		}
		if err := ink.EncodeDocument(f, e.Document()); err != nil {
			log.Fatalf("Failed to save document: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("Failed to save document: %v", err)
		}
	}

	doc := e.Document()
	log.Printf("Page saved to %s (%d strokes, %d text boxes)\n", *output, len(doc.Strokes), len(doc.TextBoxes))
}

// checkBackend fails early for a backend name no imported package registered.
func checkBackend(name string) error {
	if display.IsRegistered(name) {
		return nil
	}
	return fmt.Errorf("inkrender: unknown backend %q, available: %s", name, strings.Join(display.Backends(), ", "))
}
