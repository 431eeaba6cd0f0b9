package ink

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG backgrounds
	_ "image/png"  // register PNG backgrounds
	"io"

	"github.com/gogpu/ink/display"
	_ "golang.org/x/image/bmp"  // register BMP backgrounds
	_ "golang.org/x/image/webp" // register WebP backgrounds
)

// gesture is what the current pointer press started.
type gesture uint8

const (
	gestureNone gesture = iota
	gestureStroke
	gestureErase
	gestureText
)

// Engine is the ink canvas orchestrator. It owns the document of one page,
// its undo history, the selected tool and style, and every transient
// gesture, and it composes frames from them.
//
// ApplyInputEvent is the only entry point that changes the document from
// input. Engine is not safe for concurrent use; drive it from the goroutine
// that handles input and painting.
type Engine struct {
	registry *Registry
	measurer Measurer
	newID    func() string
	clock    func() int64

	viewport   Viewport
	tool       Tool
	style      Style
	template   Template
	background image.Image

	doc     Document
	history *History
	overlay Overlay

	gesture gesture
	live    *Stroke
	eraser  *EraserSession
	cursor  *Point
}

// NewEngine creates an engine with an empty document.
//
// Example:
//
//	e := ink.NewEngine(ink.WithViewport(ink.NewViewport(800, 1000)))
//	e.SetTool(ink.Pen{Style: ink.Ballpoint})
//	doc, req := e.ApplyInputEvent(ink.PointerDown{ScreenX: 10, ScreenY: 10})
func NewEngine(opts ...EngineOption) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		registry: o.registry,
		measurer: o.measurer,
		newID:    o.newID,
		clock:    o.clock,
		viewport: o.viewport.normalized(),
		tool:     Pen{Style: Fountain},
		style:    DefaultStyle(),
		template: o.template,
		doc:      Document{Strokes: []Stroke{}, TextBoxes: []TextBox{}},
		history:  NewHistory(nil, o.historyLimit),
	}
}

// Document returns a deep copy of the committed document, points included.
func (e *Engine) Document() Document {
	return e.doc.Clone()
}

// SetDocument replaces the document, as when another page is loaded. Any
// gesture in progress is dropped and the history restarts with doc as its
// only entry.
func (e *Engine) SetDocument(doc Document) {
	e.abortGesture()
	e.doc = doc.Clone().sanitize()
	e.overlay = Overlay{}
	for _, b := range e.doc.TextBoxes {
		e.overlay.schedule(b.ID)
	}
	e.history.Reset(e.doc.Strokes)
	Logger().Debug("ink: document loaded", "strokes", len(e.doc.Strokes), "textBoxes", len(e.doc.TextBoxes))
}

// Tool returns the selected tool.
func (e *Engine) Tool() Tool {
	return e.tool
}

// SetTool selects the tool for subsequent gestures. A gesture in progress
// is committed first. Leaving the text tool deselects any text box.
func (e *Engine) SetTool(t Tool) {
	if t == nil {
		t = Pen{Style: Fountain}
	}
	e.finishGesture()
	if _, ok := t.(Text); !ok && e.overlay.State != StateIdle {
		e.overlay.deselect()
	}
	if _, ok := t.(Eraser); !ok {
		e.cursor = nil
	}
	e.tool = t
}

// Style returns the drawing style.
func (e *Engine) Style() Style {
	return e.style
}

// SetStyle sets the color, width, eraser radius and font of subsequent
// strokes and text boxes. Zero fields take their defaults.
func (e *Engine) SetStyle(s Style) {
	e.style = s.normalized()
}

// Viewport returns the current viewport.
func (e *Engine) Viewport() Viewport {
	return e.viewport
}

// SetViewport sets zoom, pan, origin and device pixel ratio. Zoom is
// clamped to [MinZoom, MaxZoom].
func (e *Engine) SetViewport(v Viewport) {
	e.viewport = v.normalized()
}

// SetTemplate sets the ruled pattern drawn under the strokes.
func (e *Engine) SetTemplate(t Template) {
	e.template = t
}

// SetBackground sets the image drawn beneath the template and strokes.
// A nil image removes it.
func (e *Engine) SetBackground(img image.Image) {
	e.background = img
}

// LoadBackground decodes a PNG, JPEG, BMP or WebP image and uses it as the
// background. On failure the background is cleared, so frames render
// without it, and the returned error wraps ErrBackgroundDecode.
func (e *Engine) LoadBackground(r io.Reader) error {
	img, format, err := image.Decode(r)
	if err != nil {
		e.background = nil
		Logger().Warn("ink: background image decode failed", "error", err)
		return fmt.Errorf("%w: %w", ErrBackgroundDecode, err)
	}
	Logger().Debug("ink: background loaded", "format", format, "bounds", img.Bounds())
	e.background = img
	return nil
}

// Overlay returns the text box interaction state.
func (e *Engine) Overlay() Overlay {
	return e.overlay
}

// CanUndo reports whether Undo would change the document.
func (e *Engine) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo would change the document.
func (e *Engine) CanRedo() bool { return e.history.CanRedo() }

// HistoryLen returns the number of snapshots in the undo history.
func (e *Engine) HistoryLen() int { return e.history.Len() }

// Undo restores the previous stroke snapshot. Text boxes are not part of
// the history. A gesture in progress is dropped.
func (e *Engine) Undo() Document {
	e.abortGesture()
	if snap, ok := e.history.Undo(); ok {
		e.doc.Strokes = snap
		Logger().Debug("ink: undo", "cursor", e.history.Cursor(), "strokes", len(snap))
	}
	return e.Document()
}

// Redo re-applies the next stroke snapshot.
func (e *Engine) Redo() Document {
	e.abortGesture()
	if snap, ok := e.history.Redo(); ok {
		e.doc.Strokes = snap
		Logger().Debug("ink: redo", "cursor", e.history.Cursor(), "strokes", len(snap))
	}
	return e.Document()
}

// ApplyInputEvent applies one input event and returns the committed
// document together with how much of the frame needs repainting.
//
// PointerLeave and PointerCancel end a gesture exactly like PointerUp.
// Strokes and erasures are committed, and pushed to the history, when their
// gesture ends.
func (e *Engine) ApplyInputEvent(ev Event) (Document, RenderRequest) {
	var req RenderRequest
	switch ev := ev.(type) {
	case PointerDown:
		req = e.pointerDown(PointerEvent(ev))
	case PointerMove:
		req = e.pointerMove(PointerEvent(ev))
	case PointerUp:
		req = e.finishGesture()
	case PointerLeave:
		req = e.finishGesture()
		if e.cursor != nil {
			e.cursor = nil
			req = req.merge(RenderOverlay)
		}
	case PointerCancel:
		req = e.finishGesture()
	case PointerHover:
		req = e.hover(PointerEvent(ev))
	case KeyDown:
		req = e.keyDown(ev)
	case TextInput:
		req = e.overlay.insert(&e.doc, ev.Text, e.measurer)
	default:
		Logger().Debug("ink: unknown event ignored", "event", fmt.Sprintf("%T", ev))
	}
	return e.Document(), req
}

// logical maps a pointer event to a logical point inside the page.
func (e *Engine) logical(ev PointerEvent) Point {
	x, y := e.viewport.ScreenToLogical(ev.ScreenX, ev.ScreenY)
	ts := ev.Timestamp
	if ts == 0 {
		ts = e.clock()
	}
	return Point{
		X:         clamp(x, 0, e.viewport.LogicalWidth),
		Y:         clamp(y, 0, e.viewport.LogicalHeight),
		Pressure:  ev.Pressure,
		Timestamp: ts,
	}
}

func (e *Engine) pointerDown(ev PointerEvent) RenderRequest {
	req := e.finishGesture()
	p := e.logical(ev)

	if _, ok := e.tool.(Eraser); ok || ev.Button == ButtonEraser {
		return req.merge(e.beginErase(p))
	}
	if ev.Button != ButtonPrimary {
		return req
	}

	switch t := e.tool.(type) {
	case Pen:
		e.beginStroke(ToolPen, t.Style, p)
	case Highlighter:
		e.beginStroke(ToolHighlighter, 0, p)
	case Text:
		e.gesture = gestureText
		return req.merge(e.overlay.pointerDown(&e.doc, p, p.Timestamp, e.newTextBox))
	}
	return req.merge(RenderOverlay)
}

func (e *Engine) pointerMove(ev PointerEvent) RenderRequest {
	p := e.logical(ev)
	switch e.gesture {
	case gestureStroke:
		if e.addPoint(p) {
			return RenderOverlay
		}
		return RenderNone
	case gestureErase:
		e.cursor = &p
		if e.eraser.Apply(p) {
			return RenderFull
		}
		return RenderOverlay
	case gestureText:
		return e.overlay.pointerMove(&e.doc, p)
	}
	return e.hover(ev)
}

func (e *Engine) hover(ev PointerEvent) RenderRequest {
	if _, ok := e.tool.(Eraser); !ok && ev.Button != ButtonEraser {
		return RenderNone
	}
	p := e.logical(ev)
	e.cursor = &p
	return RenderOverlay
}

func (e *Engine) beginStroke(kind ToolKind, style PenStyle, p Point) {
	e.gesture = gestureStroke
	e.live = &Stroke{
		ID:       e.newID(),
		Tool:     kind,
		PenStyle: style,
		Color:    e.style.Color,
		Width:    e.style.Width,
	}
	e.addPoint(p)
}

// addPoint appends p to the live stroke, estimating its pressure when the
// device reported none. Repeated positions are skipped.
func (e *Engine) addPoint(p Point) bool {
	pts := e.live.Points
	var prev *Point
	if n := len(pts); n > 0 {
		prev = &pts[n-1]
		if prev.X == p.X && prev.Y == p.Y {
			return false
		}
	}
	if NeedsPressureEstimate(p.Pressure) {
		var dt int64
		if prev != nil {
			dt = p.Timestamp - prev.Timestamp
		}
		p.Pressure = EstimatePressure(p, prev, dt)
	} else {
		p.Pressure = clamp(p.Pressure, 0, 1)
	}
	e.live.Points = append(e.live.Points, p)
	return true
}

func (e *Engine) beginErase(p Point) RenderRequest {
	e.gesture = gestureErase
	e.eraser = NewEraserSession(e.doc.Strokes, e.style.EraserRadius)
	e.cursor = &p
	if e.eraser.Apply(p) {
		return RenderFull
	}
	return RenderOverlay
}

// finishGesture commits the gesture in progress, if any.
func (e *Engine) finishGesture() RenderRequest {
	g := e.gesture
	e.gesture = gestureNone

	switch g {
	case gestureStroke:
		s := *e.live
		e.live = nil
		if !s.Committable() {
			Logger().Debug("ink: discarding short stroke", "id", s.ID, "points", len(s.Points))
			return RenderOverlay
		}
		e.doc.Strokes = append(cloneStrokes(e.doc.Strokes), s)
		e.history.Push(e.doc.Strokes)
		Logger().Debug("ink: stroke committed", "id", s.ID, "tool", s.Tool, "points", len(s.Points))
		return RenderFull

	case gestureErase:
		session := e.eraser
		e.eraser = nil
		if _, ok := e.tool.(Eraser); !ok {
			e.cursor = nil
		}
		if !session.Changed {
			return RenderOverlay
		}
		e.doc.Strokes = cloneStrokes(session.Now)
		e.history.Push(e.doc.Strokes)
		Logger().Debug("ink: erase committed", "removed", session.Removed(), "remaining", len(session.Now))
		return RenderFull

	case gestureText:
		return e.overlay.pointerUp()
	}
	return RenderNone
}

// abortGesture drops the gesture in progress without committing it.
func (e *Engine) abortGesture() {
	if e.gesture != gestureNone {
		Logger().Debug("ink: gesture aborted", "gesture", int(e.gesture))
	}
	e.gesture = gestureNone
	e.live = nil
	e.eraser = nil
	e.overlay.Mode = ModeNone
	e.overlay.Handle = HandleNone
}

func (e *Engine) keyDown(k KeyDown) RenderRequest {
	if req, ok := e.overlay.keyDown(&e.doc, k, e.measurer); ok {
		return req
	}
	if !k.Ctrl && !k.Meta {
		return RenderNone
	}
	switch k.Key {
	case "z", "Z":
		if k.Shift {
			return e.historyStep(e.Redo)
		}
		return e.historyStep(e.Undo)
	case "y", "Y":
		return e.historyStep(e.Redo)
	}
	return RenderNone
}

func (e *Engine) historyStep(step func() Document) RenderRequest {
	cursor := e.history.Cursor()
	step()
	if e.history.Cursor() == cursor {
		return RenderNone
	}
	return RenderFull
}

// newTextBox builds a default-sized box centered on p in the current style.
func (e *Engine) newTextBox(p Point) TextBox {
	return TextBox{
		ID:         e.newID(),
		X:          p.X - DefaultTextBoxWidth/2,
		Y:          p.Y - DefaultTextBoxHeight/2,
		Width:      DefaultTextBoxWidth,
		Height:     DefaultTextBoxHeight,
		FontSize:   e.style.FontSize,
		FontFamily: e.style.FontFamily,
		Color:      e.style.Color,
	}
}

// Settle applies the text box measurements scheduled since the last frame
// and reports whether any box grew. Frame calls it before building.
func (e *Engine) Settle() bool {
	return e.overlay.settle(&e.doc, e.measurer)
}

// Frame settles pending measurements and builds the complete frame: the
// committed document, or the eraser preview during an erase, plus the live
// stroke, text box selection and eraser cursor.
func (e *Engine) Frame() *display.List {
	e.Settle()

	doc := e.doc
	if e.eraser != nil {
		doc.Strokes = e.eraser.Now
	}
	opts := RenderOptions{
		Width:      e.viewport.LogicalWidth,
		Height:     e.viewport.LogicalHeight,
		Scale:      e.viewport.BackingScale(),
		Registry:   e.registry,
		Measurer:   e.measurer,
		Background: e.background,
		Template:   e.template,
		Live:       e.live,
	}
	if e.cursor != nil {
		c := &EraserCursor{Center: *e.cursor, Radius: e.style.EraserRadius}
		if e.eraser != nil {
			c.Trail = e.eraser.Trail()
		}
		opts.Eraser = c
	}
	return Render(doc, e.overlay, opts)
}

// Draw builds a frame and replays it onto b. A nil backend, or one whose
// surface cannot be started, leaves the frame unpainted and returns an
// error wrapping ErrSurfaceUnavailable.
func (e *Engine) Draw(b display.Backend) error {
	if b == nil {
		Logger().Warn("ink: draw skipped, no render surface")
		return ErrSurfaceUnavailable
	}
	if err := e.Frame().Playback(b); err != nil {
		Logger().Warn("ink: draw failed", "error", err)
		return fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	return nil
}
