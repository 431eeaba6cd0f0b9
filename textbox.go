package ink

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/ink/typeset"
)

// DoubleTapInterval is the longest gap in milliseconds between two presses
// on the same text box that still counts as a double tap.
const DoubleTapInterval = 400

// HandleSize is the half extent of a resize handle's hit square.
const HandleSize = 10.0

// Measurer lays out text box content. *typeset.Provider is the default.
type Measurer interface {
	Wrap(content, family string, size, width float64) []string
	LineHeight(family string, size float64) float64
	Ascent(family string, size float64) float64
	Advance(s, family string, size float64) float64
	TextHeight(content, family string, size, width float64) float64
}

var _ Measurer = (*typeset.Provider)(nil)

// OverlayState is the selection state of the text box overlay.
type OverlayState uint8

const (
	StateIdle OverlayState = iota
	StateSelected
	StateEditing
)

// String returns the state name.
func (s OverlayState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelected:
		return "selected"
	case StateEditing:
		return "editing"
	default:
		return unknownStr
	}
}

// InteractionMode is the pointer interaction running on the selected box.
type InteractionMode uint8

const (
	ModeNone InteractionMode = iota
	ModeDragging
	ModeResizing
)

// String returns the mode name.
func (m InteractionMode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeDragging:
		return "dragging"
	case ModeResizing:
		return "resizing"
	default:
		return unknownStr
	}
}

// ResizeHandle identifies one of the eight resize handles of a text box.
type ResizeHandle uint8

const (
	HandleNone ResizeHandle = iota
	HandleN
	HandleNE
	HandleE
	HandleSE
	HandleS
	HandleSW
	HandleW
	HandleNW
)

var handleNames = [...]string{
	HandleNone: "none",
	HandleN:    "n",
	HandleNE:   "ne",
	HandleE:    "e",
	HandleSE:   "se",
	HandleS:    "s",
	HandleSW:   "sw",
	HandleW:    "w",
	HandleNW:   "nw",
}

// String returns the compass name of the handle.
func (h ResizeHandle) String() string {
	if int(h) < len(handleNames) {
		return handleNames[h]
	}
	return unknownStr
}

// IsCorner reports whether h is one of the four corner handles.
func (h ResizeHandle) IsCorner() bool {
	return h == HandleNE || h == HandleSE || h == HandleSW || h == HandleNW
}

// Handles lists the handles in hit-test order, corners first.
var Handles = [...]ResizeHandle{HandleNW, HandleNE, HandleSE, HandleSW, HandleN, HandleE, HandleS, HandleW}

// HandlePoint returns the center of handle h on b.
func HandlePoint(b TextBox, h ResizeHandle) Point {
	cx, cy := b.X+b.Width/2, b.Y+b.Height/2
	right, bottom := b.X+b.Width, b.Y+b.Height
	switch h {
	case HandleN:
		return Pt(cx, b.Y)
	case HandleNE:
		return Pt(right, b.Y)
	case HandleE:
		return Pt(right, cy)
	case HandleSE:
		return Pt(right, bottom)
	case HandleS:
		return Pt(cx, bottom)
	case HandleSW:
		return Pt(b.X, bottom)
	case HandleW:
		return Pt(b.X, cy)
	case HandleNW:
		return Pt(b.X, b.Y)
	}
	return Pt(cx, cy)
}

// HandleAt returns the handle of b under p, or HandleNone.
func HandleAt(b TextBox, p Point) ResizeHandle {
	for _, h := range Handles {
		c := HandlePoint(b, h)
		if math.Abs(p.X-c.X) <= HandleSize && math.Abs(p.Y-c.Y) <= HandleSize {
			return h
		}
	}
	return HandleNone
}

// ResizeBox returns start resized by dragging handle h by (dx, dy).
//
// Edge handles change one dimension; the north and west edges also move the
// box so the opposite edge stays put. Corner handles average the scale of
// both dimensions and apply it to width, height and font size, keeping the
// opposite corner anchored. Width never drops below MinTextBoxWidth, height
// never below MinTextBoxHeight, and the font size stays within
// [MinFontSize, MaxFontSize].
func ResizeBox(start TextBox, h ResizeHandle, dx, dy float64) TextBox {
	b := start
	w0 := max(start.Width, 1)
	h0 := max(start.Height, 1)

	switch h {
	case HandleE:
		b.Width = max(MinTextBoxWidth, w0+dx)
	case HandleW:
		b.Width = max(MinTextBoxWidth, w0-dx)
		b.X = start.X + w0 - b.Width
	case HandleS:
		b.Height = max(MinTextBoxHeight, h0+dy)
	case HandleN:
		b.Height = max(MinTextBoxHeight, h0-dy)
		b.Y = start.Y + h0 - b.Height

	case HandleNE, HandleSE, HandleSW, HandleNW:
		sx, sy := dx, dy
		if h == HandleSW || h == HandleNW {
			sx = -dx
		}
		if h == HandleNE || h == HandleNW {
			sy = -dy
		}
		rawW := max(MinTextBoxWidth, w0+sx)
		rawH := max(MinTextBoxHeight, h0+sy)
		scale := (rawW/w0 + rawH/h0) / 2
		scale = max(scale, MinTextBoxWidth/w0, MinTextBoxHeight/h0)

		b.Width = w0 * scale
		b.Height = h0 * scale
		fs := start.FontSize
		if fs <= 0 {
			fs = DefaultFontSize
		}
		b.FontSize = clamp(fs*scale, MinFontSize, MaxFontSize)

		if h == HandleSW || h == HandleNW {
			b.X = start.X + w0 - b.Width
		}
		if h == HandleNE || h == HandleNW {
			b.Y = start.Y + h0 - b.Height
		}
	}
	return b
}

// Overlay is the interaction state of the floating text boxes. It holds no
// document data: boxes live in the Document and are referenced by ID.
type Overlay struct {
	State OverlayState
	Mode  InteractionMode
	// Handle is the handle being dragged while Mode is ModeResizing.
	Handle ResizeHandle
	// Selected is the ID of the selected or edited box.
	Selected string
	// Caret is the byte offset of the caret in the edited box's content.
	// It always sits on a grapheme boundary.
	Caret int

	anchor    Point
	start     TextBox
	lastTapID string
	lastTapAt int64
	pending   map[string]struct{}
}

// Pending reports whether the box with the given ID awaits a measurement.
func (o *Overlay) Pending(id string) bool {
	_, ok := o.pending[id]
	return ok
}

func (o *Overlay) schedule(id string) {
	if o.pending == nil {
		o.pending = make(map[string]struct{})
	}
	o.pending[id] = struct{}{}
}

// deselect returns to Idle, scheduling a measurement for a box that was
// being edited.
func (o *Overlay) deselect() {
	if o.State == StateEditing {
		o.schedule(o.Selected)
	}
	o.State = StateIdle
	o.Mode = ModeNone
	o.Handle = HandleNone
	o.Selected = ""
	o.Caret = 0
}

// selectedIndex returns the index of the selected box in doc, or -1.
func (o *Overlay) selectedIndex(doc *Document) int {
	if o.State == StateIdle {
		return -1
	}
	return doc.textBoxIndex(o.Selected)
}

// boxAt returns the index of the topmost box containing p, or -1.
func boxAt(doc *Document, p Point) int {
	for i := len(doc.TextBoxes) - 1; i >= 0; i-- {
		if doc.TextBoxes[i].Contains(p) {
			return i
		}
	}
	return -1
}

// pointerDown handles a press while the text tool is active. create builds
// a new box centered on p when the press lands on empty canvas.
func (o *Overlay) pointerDown(doc *Document, p Point, at int64, create func(Point) TextBox) RenderRequest {
	if sel := o.selectedIndex(doc); sel >= 0 && o.State == StateSelected {
		if h := HandleAt(doc.TextBoxes[sel], p); h != HandleNone {
			o.Mode = ModeResizing
			o.Handle = h
			o.anchor = p
			o.start = doc.TextBoxes[sel]
			return RenderOverlay
		}
	}

	i := boxAt(doc, p)
	if i < 0 {
		if o.State != StateIdle {
			o.deselect()
			return RenderOverlay
		}
		b := create(p)
		doc.TextBoxes = append(doc.TextBoxes, b)
		o.State = StateEditing
		o.Selected = b.ID
		o.Caret = len(b.Content)
		Logger().Debug("ink: text box created", "id", b.ID, "x", b.X, "y", b.Y)
		return RenderFull
	}

	b := doc.TextBoxes[i]
	doubleTap := o.lastTapID == b.ID && at >= o.lastTapAt && at-o.lastTapAt <= DoubleTapInterval
	o.lastTapID, o.lastTapAt = b.ID, at

	switch {
	case o.State == StateEditing && o.Selected == b.ID:
		return RenderNone
	case doubleTap && o.Selected == b.ID:
		o.State = StateEditing
		o.Mode = ModeNone
		o.Caret = len(b.Content)
		o.lastTapID = ""
		return RenderOverlay
	case o.State == StateSelected && o.Selected == b.ID:
		o.Mode = ModeDragging
		o.anchor = p
		o.start = b
		return RenderNone
	default:
		if o.State == StateEditing {
			o.schedule(o.Selected)
		}
		o.State = StateSelected
		o.Mode = ModeNone
		o.Selected = b.ID
		o.Caret = 0
		return RenderOverlay
	}
}

// pointerMove drags or resizes the selected box.
func (o *Overlay) pointerMove(doc *Document, p Point) RenderRequest {
	if o.Mode == ModeNone {
		return RenderNone
	}
	i := o.selectedIndex(doc)
	if i < 0 {
		o.Mode = ModeNone
		return RenderNone
	}
	dx, dy := p.X-o.anchor.X, p.Y-o.anchor.Y

	switch o.Mode {
	case ModeDragging:
		b := o.start
		b.X += dx
		b.Y += dy
		doc.TextBoxes[i] = b
	case ModeResizing:
		b := ResizeBox(o.start, o.Handle, dx, dy)
		if b.Width != doc.TextBoxes[i].Width {
			o.schedule(b.ID)
		}
		doc.TextBoxes[i] = b
	}
	return RenderFull
}

// pointerUp ends a drag or resize.
func (o *Overlay) pointerUp() RenderRequest {
	if o.Mode == ModeNone {
		return RenderNone
	}
	o.Mode = ModeNone
	o.Handle = HandleNone
	return RenderOverlay
}

// keyDown handles a key press and reports whether the overlay consumed it.
func (o *Overlay) keyDown(doc *Document, k KeyDown, m Measurer) (RenderRequest, bool) {
	i := o.selectedIndex(doc)
	if i < 0 {
		if o.State != StateIdle {
			o.deselect()
		}
		return RenderNone, false
	}

	if o.State == StateSelected {
		switch k.Key {
		case "Escape":
			o.deselect()
			return RenderOverlay, true
		case "Delete", "Backspace":
			id := doc.TextBoxes[i].ID
			doc.TextBoxes = append(doc.TextBoxes[:i:i], doc.TextBoxes[i+1:]...)
			o.deselect()
			delete(o.pending, id)
			Logger().Debug("ink: text box deleted", "id", id)
			return RenderFull, true
		case "Enter":
			o.State = StateEditing
			o.Caret = len(doc.TextBoxes[i].Content)
			return RenderOverlay, true
		}
		return RenderNone, false
	}

	// Editing consumes every key.
	b := &doc.TextBoxes[i]
	o.Caret = clampCaret(b.Content, o.Caret)
	switch k.Key {
	case "Escape":
		o.State = StateSelected
		o.schedule(b.ID)
		return RenderOverlay, true
	case "Backspace":
		if o.Caret == 0 {
			return RenderNone, true
		}
		prev := min(typeset.PrevBoundary(b.Content, o.Caret), o.Caret)
		b.Content = b.Content[:prev] + b.Content[o.Caret:]
		o.Caret = prev
	case "Delete":
		if o.Caret >= len(b.Content) {
			return RenderNone, true
		}
		next := min(typeset.NextBoundary(b.Content, o.Caret), len(b.Content))
		b.Content = b.Content[:o.Caret] + b.Content[next:]
	case "ArrowLeft":
		o.Caret = typeset.PrevBoundary(b.Content, o.Caret)
		return RenderOverlay, true
	case "ArrowRight":
		o.Caret = typeset.NextBoundary(b.Content, o.Caret)
		return RenderOverlay, true
	case "Home":
		o.Caret = strings.LastIndexByte(b.Content[:o.Caret], '\n') + 1
		return RenderOverlay, true
	case "End":
		if j := strings.IndexByte(b.Content[o.Caret:], '\n'); j >= 0 {
			o.Caret += j
		} else {
			o.Caret = len(b.Content)
		}
		return RenderOverlay, true
	case "Enter":
		return o.insert(doc, "\n", m), true
	default:
		if k.Ctrl || k.Meta || len(typeset.Boundaries(k.Key)) != 2 {
			Logger().Debug("ink: key ignored while editing", "key", k.Key)
			return RenderNone, true
		}
		return o.insert(doc, k.Key, m), true
	}
	o.fit(b, m)
	return RenderFull, true
}

// insert puts s at the caret of the edited box.
func (o *Overlay) insert(doc *Document, s string, m Measurer) RenderRequest {
	i := o.selectedIndex(doc)
	if i < 0 || o.State != StateEditing || s == "" {
		return RenderNone
	}
	b := &doc.TextBoxes[i]
	s = strings.ToValidUTF8(s, string(utf8.RuneError))
	caret := clampCaret(b.Content, o.Caret)
	head := typeset.Normalize(b.Content[:caret] + s)
	b.Content = typeset.Normalize(head + b.Content[caret:])
	o.Caret = clampCaret(b.Content, len(head))
	o.fit(b, m)
	return RenderFull
}

// fit sets the height of b from its wrapped content.
func (o *Overlay) fit(b *TextBox, m Measurer) {
	b.Height = fittedHeight(*b, m)
}

// settle applies pending measurements and reports whether any box changed.
func (o *Overlay) settle(doc *Document, m Measurer) bool {
	if len(o.pending) == 0 {
		return false
	}
	changed := false
	for id := range o.pending {
		i := doc.textBoxIndex(id)
		if i < 0 {
			continue
		}
		b := &doc.TextBoxes[i]
		if h := fittedHeight(*b, m); h != b.Height {
			b.Height = h
			changed = true
		}
	}
	clear(o.pending)
	return changed
}

// fittedHeight is the content height of b, never below MinTextBoxHeight.
func fittedHeight(b TextBox, m Measurer) float64 {
	return max(contentHeight(b, m), MinTextBoxHeight)
}

// contentHeight is the frame height needed to show the wrapped content of b.
func contentHeight(b TextBox, m Measurer) float64 {
	return m.TextHeight(b.Content, b.FontFamily, b.FontSize, b.contentWidth()) + 2*TextPadding
}

// clampCaret moves pos onto a grapheme boundary of s within [0, len(s)].
func clampCaret(s string, pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos >= len(s) {
		return len(s)
	}
	return typeset.PrevBoundary(s, pos+1)
}
