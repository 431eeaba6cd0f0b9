package ink

import (
	"bytes"
	"strings"
	"testing"
)

func TestDocumentEncodeDecode(t *testing.T) {
	doc := Document{
		Strokes: []Stroke{
			{ID: "a", Tool: ToolPen, PenStyle: Fountain, Color: "#000", Width: 2, Points: []Point{Pt(0, 0), Pt(5, 5)}},
			{ID: "b", Tool: ToolHighlighter, Color: "yellow", Width: 12, Points: []Point{Pt(1, 1), Pt(9, 1)}},
		},
		TextBoxes: []TextBox{
			{ID: "t", X: 10, Y: 20, Width: 200, Height: 60, Content: "note", FontSize: 18, FontFamily: "serif", Color: "navy"},
		},
	}

	var buf bytes.Buffer
	if err := EncodeDocument(&buf, doc); err != nil {
		t.Fatalf("EncodeDocument failed: %v", err)
	}
	for _, key := range []string{`"strokes"`, `"textBoxes"`, `"penStyle": "fountain"`, `"fontSize": 18`, `"fontFamily": "serif"`} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("encoded document is missing %s", key)
		}
	}

	got, err := DecodeDocument(&buf)
	if err != nil {
		t.Fatalf("DecodeDocument failed: %v", err)
	}
	if len(got.Strokes) != 2 || got.Strokes[1].Tool != ToolHighlighter || got.Strokes[0].PenStyle != Fountain {
		t.Errorf("decoded strokes = %+v", got.Strokes)
	}
	if len(got.TextBoxes) != 1 || got.TextBoxes[0] != doc.TextBoxes[0] {
		t.Errorf("decoded text boxes = %+v, want %+v", got.TextBoxes, doc.TextBoxes)
	}
}

func TestEncodeEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, Document{}); err != nil {
		t.Fatalf("EncodeDocument failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"strokes": []`) || !strings.Contains(buf.String(), `"textBoxes": []`) {
		t.Errorf("empty document should encode empty arrays, got %s", buf.String())
	}
}

func TestDecodeDocumentSanitizes(t *testing.T) {
	in := `{
		"strokes": [
			{"id": "dot", "tool": "pen", "color": "#000", "width": 2, "points": [{"x": 1, "y": 1, "pressure": 0.5}]},
			{"id": "ok", "tool": "pen", "color": "#000", "width": 2, "points": [{"x": 1, "y": 1, "pressure": 0.5}, {"x": 2, "y": 2, "pressure": 0.5}]}
		],
		"textBoxes": [{"id": "t", "x": 0, "y": 0, "width": 10, "height": 5, "content": "", "fontSize": 900}]
	}`
	doc, err := DecodeDocument(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeDocument failed: %v", err)
	}
	if len(doc.Strokes) != 1 || doc.Strokes[0].ID != "ok" {
		t.Errorf("strokes = %v, want [ok]", ids(doc.Strokes))
	}
	b := doc.TextBoxes[0]
	if b.Width != MinTextBoxWidth || b.Height != MinTextBoxHeight || b.FontSize != MaxFontSize || b.FontFamily != DefaultFontFamily {
		t.Errorf("text box not clamped: %+v", b)
	}
}

func TestDecodeDocumentErrors(t *testing.T) {
	tests := []string{
		`{`,
		`{"strokes": [{"tool": "crayon"}]}`,
	}
	for _, in := range tests {
		if _, err := DecodeDocument(strings.NewReader(in)); err == nil {
			t.Errorf("DecodeDocument(%q) should fail", in)
		}
	}
}

func TestDocumentClone(t *testing.T) {
	doc := Document{
		Strokes:   []Stroke{line("a", 0, 0, 1, 1, 1)},
		TextBoxes: []TextBox{{ID: "t", Content: "x"}},
	}
	c := doc.Clone()
	c.Strokes[0].Points[0].X = 99
	c.TextBoxes[0].Content = "changed"
	if doc.Strokes[0].Points[0].X == 99 || doc.TextBoxes[0].Content != "x" {
		t.Error("Clone shares data with the original")
	}
}

func TestTextBoxContains(t *testing.T) {
	b := TextBox{X: 10, Y: 10, Width: 100, Height: 40}
	if !b.Contains(Pt(10, 10)) || !b.Contains(Pt(110, 50)) || b.Contains(Pt(111, 20)) {
		t.Error("Contains does not match the frame")
	}
}
