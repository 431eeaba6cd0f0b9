package ink

// Button identifies the pointer button or stylus end that produced an event.
type Button uint8

const (
	// ButtonPrimary is the left mouse button, a touch contact or the pen tip.
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
	// ButtonEraser is the eraser end of a stylus. It erases regardless of
	// the selected tool.
	ButtonEraser
)

// Event is an input event accepted by Engine.ApplyInputEvent.
//
// The set of events is closed: PointerDown, PointerMove, PointerUp,
// PointerLeave, PointerCancel, PointerHover, KeyDown and TextInput.
type Event interface {
	isEvent()
}

// PointerEvent carries the fields shared by all pointer events.
// Coordinates are in screen space; the engine maps them to logical space.
type PointerEvent struct {
	ScreenX, ScreenY float64
	// Pressure is the device pressure in [0, 1]. Zero or exactly 0.5 means
	// the device reported none and velocity is used instead.
	Pressure float64
	Button   Button
	// Timestamp is a monotonic time in milliseconds. Zero means unknown
	// and the engine clock is used.
	Timestamp int64
}

// PointerDown starts a gesture.
type PointerDown PointerEvent

// PointerMove continues a gesture.
type PointerMove PointerEvent

// PointerUp ends a gesture and commits it.
type PointerUp PointerEvent

// PointerLeave is treated exactly like PointerUp.
type PointerLeave PointerEvent

// PointerCancel is treated exactly like PointerUp.
type PointerCancel PointerEvent

// PointerHover moves the cursor without a pressed button. It only affects
// transient overlays such as the eraser cursor.
type PointerHover PointerEvent

// KeyDown is a key press. Key uses web key names: "Escape", "Delete",
// "Backspace", "Enter", "ArrowLeft", "ArrowRight", "Home", "End", or the
// typed character itself.
type KeyDown struct {
	Key   string
	Ctrl  bool
	Shift bool
	Meta  bool
}

// TextInput inserts committed text, for example from an input method or a
// paste, into the text box being edited.
type TextInput struct {
	Text string
}

func (PointerDown) isEvent()   {}
func (PointerMove) isEvent()   {}
func (PointerUp) isEvent()     {}
func (PointerLeave) isEvent()  {}
func (PointerCancel) isEvent() {}
func (PointerHover) isEvent()  {}
func (KeyDown) isEvent()       {}
func (TextInput) isEvent()     {}

// RenderRequest tells the host how much of the frame an event invalidated.
type RenderRequest uint8

const (
	// RenderNone means nothing visible changed.
	RenderNone RenderRequest = iota
	// RenderOverlay means only transient state changed: the in-progress
	// stroke, cursors or the text box selection.
	RenderOverlay
	// RenderFull means the document changed.
	RenderFull
)

// String returns the name of the request.
func (r RenderRequest) String() string {
	switch r {
	case RenderNone:
		return "none"
	case RenderOverlay:
		return "overlay"
	case RenderFull:
		return "full"
	default:
		return unknownStr
	}
}

// merge returns the larger of two requests.
func (r RenderRequest) merge(o RenderRequest) RenderRequest {
	return max(r, o)
}
