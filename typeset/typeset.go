// Package typeset resolves font families to gg text faces and measures
// wrapped text for ink's floating text boxes.
//
// The Go font family from golang.org/x/image/font/gofont is embedded, so
// measurement and drawing work without any system fonts:
//
//	p := typeset.Default()
//	lines := p.Wrap("hello world", "sans-serif", 16, 180)
//	h := p.TextHeight("hello world", "sans-serif", 16, 180)
//
// Both the display raster backend and the text box overlay use the same
// Provider so that what is measured is what is drawn.
package typeset

import (
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Family identifies one of the embedded font files.
type Family uint8

const (
	// Regular is the default proportional sans-serif face.
	Regular Family = iota
	// Mono is a fixed-width face.
	Mono
	// Bold is the bold proportional face.
	Bold
	// Italic is the italic proportional face.
	Italic
)

var familyData = [...][]byte{
	Regular: goregular.TTF,
	Mono:    gomono.TTF,
	Bold:    gobold.TTF,
	Italic:  goitalic.TTF,
}

// ResolveFamily maps a CSS-like font family name to an embedded family.
// Unknown names resolve to Regular.
func ResolveFamily(name string) Family {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "mono"), strings.Contains(n, "courier"), strings.Contains(n, "code"):
		return Mono
	case strings.Contains(n, "bold"):
		return Bold
	case strings.Contains(n, "italic"), strings.Contains(n, "cursive"):
		return Italic
	default:
		return Regular
	}
}

// Provider loads font sources lazily and hands out faces by family and size.
// It is safe for concurrent use.
type Provider struct {
	mu      sync.Mutex
	sources map[Family]*text.FontSource
}

// NewProvider creates an empty provider.
func NewProvider() *Provider {
	return &Provider{sources: make(map[Family]*text.FontSource)}
}

var defaultProvider = sync.OnceValue(NewProvider)

// Default returns the process-wide provider.
func Default() *Provider {
	return defaultProvider()
}

// Face returns a face for family at size points, or nil if the embedded font
// cannot be parsed.
func (p *Provider) Face(family string, size float64) text.Face {
	src := p.source(ResolveFamily(family))
	if src == nil {
		return nil
	}
	return src.Face(size)
}

func (p *Provider) source(f Family) *text.FontSource {
	p.mu.Lock()
	defer p.mu.Unlock()

	if src, ok := p.sources[f]; ok {
		return src
	}
	src, err := text.NewFontSource(familyData[f])
	if err != nil {
		return nil
	}
	p.sources[f] = src
	return src
}

// LineHeight returns the baseline-to-baseline distance for family at size.
// Without a usable face it falls back to 1.25 times the size.
func (p *Provider) LineHeight(family string, size float64) float64 {
	if face := p.Face(family, size); face != nil {
		if lh := face.Metrics().LineHeight(); lh > 0 {
			return lh
		}
	}
	return size * 1.25
}

// Ascent returns the distance from the top of a line to its baseline.
func (p *Provider) Ascent(family string, size float64) float64 {
	if face := p.Face(family, size); face != nil {
		if a := face.Metrics().Ascent; a > 0 {
			return a
		}
	}
	return size
}

// Advance returns the horizontal advance of s.
func (p *Provider) Advance(s, family string, size float64) float64 {
	face := p.Face(family, size)
	if face == nil || s == "" {
		return 0
	}
	return text.MeasureText(s, face)
}

// Wrap breaks content into lines no wider than width. Hard line breaks are
// kept and empty content yields a single empty line.
func (p *Provider) Wrap(content, family string, size, width float64) []string {
	face := p.Face(family, size)
	if face == nil {
		return strings.Split(content, "\n")
	}
	results := text.WrapText(content, face, width, text.WrapWordChar)
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, r.Text)
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

// TextHeight returns the height of content wrapped to width.
func (p *Provider) TextHeight(content, family string, size, width float64) float64 {
	n := len(p.Wrap(content, family, size, width))
	return float64(n) * p.LineHeight(family, size)
}
