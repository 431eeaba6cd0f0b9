// Package ink is a freehand ink annotation engine built on gg.
//
// # Overview
//
// ink turns a stream of pointer and keyboard events into an annotated page:
// pressure-aware pen strokes, translucent highlighter bands, an eraser that
// removes whole strokes by proximity, an undo/redo history and floating text
// boxes that can be dragged, resized and edited in place.
//
// # Quick Start
//
//	e := ink.NewEngine(ink.WithViewport(ink.NewViewport(800, 1000)))
//	e.SetTool(ink.Pen{Style: ink.Fountain})
//
//	e.ApplyInputEvent(ink.PointerDown{ScreenX: 100, ScreenY: 100})
//	e.ApplyInputEvent(ink.PointerMove{ScreenX: 150, ScreenY: 110})
//	doc, _ := e.ApplyInputEvent(ink.PointerUp{ScreenX: 150, ScreenY: 110})
//
//	// Rasterize the current frame with gg.
//	b := raster.NewBackend()
//	_ = e.Draw(b)
//	_ = b.SavePNG("page.png")
//
// # Architecture
//
//   - Geometry: Point, Distance, PointToSegmentDistance
//   - Input: EstimatePressure, Viewport (screen to logical coordinates)
//   - Strokes: MovingAverage, CatmullRom, SmoothStroke, Registry of pen styles
//   - Editing: EraseAt with EraserSession batching, History snapshots,
//     Overlay (text box selection, drag, resize, in-place editing)
//   - Output: Render builds a display.List; display backends replay it
//
// # Coordinate System
//
// All stroke, eraser and text box math works in logical canvas units.
// Zoom, pan and device pixel ratio are confined to Viewport and to the
// scale handed to display backends.
//
// # Concurrency
//
// An Engine is driven from a single goroutine, like a gg.Context.
// The style Registry and Document snapshots it returns are safe to share.
package ink
