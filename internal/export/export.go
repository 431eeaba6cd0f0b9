// Package export writes rendered ink frames as PNG images or single-page
// PDF documents.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/ink/display"
	_ "github.com/gogpu/ink/display/raster" // default backend
	"github.com/jung-kurt/gofpdf"
)

// DefaultBackend is the display backend used when none is chosen.
const DefaultBackend = "raster"

var (
	// ErrUnknownFormat is returned by WriteFile for an unsupported extension.
	ErrUnknownFormat = errors.New("export: unknown output format")

	// ErrNotEncodable is returned for a backend that cannot encode its frame.
	ErrNotEncodable = errors.New("export: backend cannot encode frames")
)

// pageImage is the name the raster frame is registered under in a PDF.
const pageImage = "page"

// Option configures an export.
type Option func(*options)

type options struct {
	backend string
}

func defaultOptions() options {
	return options{backend: DefaultBackend}
}

// WithBackend selects the registered display backend that renders the
// frame. It must implement display.WriterBackend.
func WithBackend(name string) Option {
	return func(o *options) {
		if name != "" {
			o.backend = name
		}
	}
}

// encode replays l onto a fresh backend and writes the encoded frame to w.
func encode(w io.Writer, l *display.List, opts []Option) (err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b, err := display.NewBackend(o.backend)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if c, ok := b.(io.Closer); ok {
		defer func() {
			if cerr := c.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("export: close %s backend: %w", o.backend, cerr)
			}
		}()
	}
	wb, ok := b.(display.WriterBackend)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotEncodable, o.backend)
	}

	if err := l.Playback(wb); err != nil {
		return fmt.Errorf("export: render: %w", err)
	}
	if _, err := wb.WriteTo(w); err != nil {
		return fmt.Errorf("export: encode: %w", err)
	}
	return nil
}

// WritePNG renders l at its scale and writes it as PNG.
func WritePNG(w io.Writer, l *display.List, opts ...Option) error {
	return encode(w, l, opts)
}

// WritePDF renders l and writes a one-page PDF whose page is the logical
// size of l in points. The frame is embedded as a PNG image covering the
// page, so a scale above 1 yields a sharper print.
func WritePDF(w io.Writer, l *display.List, opts ...Option) error {
	var img bytes.Buffer
	if err := encode(&img, l, opts); err != nil {
		return err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: l.Width, Ht: l.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(pageImage, imgOpts, &img)
	pdf.ImageOptions(pageImage, 0, 0, l.Width, l.Height, false, imgOpts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}

// WriteFile writes l to path, choosing PNG or PDF from the extension.
func WriteFile(path string, l *display.List, opts ...Option) (err error) {
	var write func(io.Writer, *display.List, ...Option) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		write = WritePNG
	case ".pdf":
		write = WritePDF
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()
	return write(f, l, opts...)
}
