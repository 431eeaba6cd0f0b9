package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gogpu/ink"
)

// step is one entry of an event script. Type selects which fields apply:
//
//	{"type": "tool", "tool": "pen", "penStyle": "brush"}
//	{"type": "style", "color": "#c00", "width": 3}
//	{"type": "down", "x": 10, "y": 20, "pressure": 0.6, "t": 1000}
//	{"type": "move", "x": 30, "y": 20, "t": 1016}
//	{"type": "up"}
//	{"type": "key", "key": "z", "ctrl": true}
//	{"type": "text", "text": "hello"}
//	{"type": "undo"}
type step struct {
	Type string `json:"type"`

	Tool     string       `json:"tool,omitempty"`
	PenStyle ink.PenStyle `json:"penStyle,omitempty"`

	Color        string  `json:"color,omitempty"`
	Width        float64 `json:"width,omitempty"`
	EraserRadius float64 `json:"eraserRadius,omitempty"`
	FontSize     float64 `json:"fontSize,omitempty"`
	FontFamily   string  `json:"fontFamily,omitempty"`

	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Pressure float64 `json:"pressure,omitempty"`
	Button   uint8   `json:"button,omitempty"`
	T        int64   `json:"t,omitempty"`

	Key   string `json:"key,omitempty"`
	Ctrl  bool   `json:"ctrl,omitempty"`
	Shift bool   `json:"shift,omitempty"`
	Meta  bool   `json:"meta,omitempty"`
	Text  string `json:"text,omitempty"`
}

// readScript decodes a JSON array of steps.
func readScript(r io.Reader) ([]step, error) {
	var steps []step
	if err := json.NewDecoder(r).Decode(&steps); err != nil {
		return nil, fmt.Errorf("inkrender: decode script: %w", err)
	}
	return steps, nil
}

// runScript applies steps to e in order and returns the number of input
// events it dispatched.
func runScript(e *ink.Engine, steps []step) (int, error) {
	events := 0
	for i, s := range steps {
		pe := ink.PointerEvent{
			ScreenX:   s.X,
			ScreenY:   s.Y,
			Pressure:  s.Pressure,
			Button:    ink.Button(s.Button),
			Timestamp: s.T,
		}
		var ev ink.Event
		switch s.Type {
		case "tool":
			t, err := parseTool(s.Tool, s.PenStyle)
			if err != nil {
				return events, fmt.Errorf("inkrender: step %d: %w", i, err)
			}
			e.SetTool(t)
		case "style":
			e.SetStyle(ink.Style{
				Color:        s.Color,
				Width:        s.Width,
				EraserRadius: s.EraserRadius,
				FontSize:     s.FontSize,
				FontFamily:   s.FontFamily,
			})
		case "undo":
			e.Undo()
		case "redo":
			e.Redo()
		case "down":
			ev = ink.PointerDown(pe)
		case "move":
			ev = ink.PointerMove(pe)
		case "up":
			ev = ink.PointerUp(pe)
		case "leave":
			ev = ink.PointerLeave(pe)
		case "cancel":
			ev = ink.PointerCancel(pe)
		case "hover":
			ev = ink.PointerHover(pe)
		case "key":
			ev = ink.KeyDown{Key: s.Key, Ctrl: s.Ctrl, Shift: s.Shift, Meta: s.Meta}
		case "text":
			ev = ink.TextInput{Text: s.Text}
		default:
			return events, fmt.Errorf("inkrender: step %d: unknown type %q", i, s.Type)
		}
		if ev != nil {
			e.ApplyInputEvent(ev)
			events++
		}
	}
	return events, nil
}

func parseTool(name string, style ink.PenStyle) (ink.Tool, error) {
	switch name {
	case "pen":
		if style == 0 {
			style = ink.Fountain
		}
		return ink.Pen{Style: style}, nil
	case "highlighter":
		return ink.Highlighter{}, nil
	case "eraser":
		return ink.Eraser{}, nil
	case "text":
		return ink.Text{}, nil
	}
	return nil, fmt.Errorf("unknown tool %q", name)
}
