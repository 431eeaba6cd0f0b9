package ink

import (
	"time"

	"github.com/gogpu/ink/typeset"
	"github.com/google/uuid"
)

// DefaultPageWidth and DefaultPageHeight are the logical size of a page when
// no viewport is given.
const (
	DefaultPageWidth  = 800.0
	DefaultPageHeight = 1000.0
)

// EngineOption configures an Engine during creation.
//
// Example:
//
//	// Default page, registry and history depth
//	e := ink.NewEngine()
//
//	// A4-ish page on a retina display with a short history
//	vp := ink.NewViewport(794, 1123)
//	vp.DevicePixelRatio = 2
//	e := ink.NewEngine(ink.WithViewport(vp), ink.WithHistoryLimit(50))
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	registry     *Registry
	viewport     Viewport
	historyLimit int
	newID        func() string
	measurer     Measurer
	template     Template
	clock        func() int64
}

// defaultEngineOptions returns the default engine options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		registry:     DefaultRegistry(),
		viewport:     NewViewport(DefaultPageWidth, DefaultPageHeight),
		historyLimit: DefaultHistoryLimit,
		newID:        uuid.NewString,
		measurer:     typeset.Default(),
		template:     TemplateBlank,
		clock:        monotonicMillis,
	}
}

// WithRegistry sets the pen style table. A nil registry keeps the default.
func WithRegistry(r *Registry) EngineOption {
	return func(o *engineOptions) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithViewport sets the initial page size, zoom, pan and device pixel ratio.
func WithViewport(v Viewport) EngineOption {
	return func(o *engineOptions) {
		o.viewport = v
	}
}

// WithHistoryLimit bounds the number of undo snapshots kept. Zero or a
// negative value means unbounded.
func WithHistoryLimit(n int) EngineOption {
	return func(o *engineOptions) {
		o.historyLimit = n
	}
}

// WithIDGenerator sets the function that names new strokes and text boxes.
// The default generates random UUIDs.
func WithIDGenerator(fn func() string) EngineOption {
	return func(o *engineOptions) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// WithMeasurer sets the text layout used for text boxes.
func WithMeasurer(m Measurer) EngineOption {
	return func(o *engineOptions) {
		if m != nil {
			o.measurer = m
		}
	}
}

// WithTemplate sets the initial page template.
func WithTemplate(t Template) EngineOption {
	return func(o *engineOptions) {
		o.template = t
	}
}

// WithClock sets the millisecond clock used for events without a
// timestamp.
func WithClock(fn func() int64) EngineOption {
	return func(o *engineOptions) {
		if fn != nil {
			o.clock = fn
		}
	}
}

var clockStart = time.Now()

// monotonicMillis returns the milliseconds elapsed since process start.
func monotonicMillis() int64 {
	return time.Since(clockStart).Milliseconds()
}
