package ink

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/ink/display"
)

// Template is the ruled pattern drawn between the background image and the
// strokes.
type Template uint8

const (
	TemplateBlank Template = iota
	TemplateLined
	TemplateGrid
	TemplateDotted
)

// Template geometry in logical units.
const (
	TemplateSpacing = 32.0
	templateLine    = 1.0
	templateDot     = 1.5
)

// TemplateColor is the ink of ruled lines and dots.
var TemplateColor = gg.RGBA{R: 0.75, G: 0.80, B: 0.88, A: 1}

var templateNames = [...]string{
	TemplateBlank:  "blank",
	TemplateLined:  "lined",
	TemplateGrid:   "grid",
	TemplateDotted: "dotted",
}

// String returns the template name.
func (t Template) String() string {
	if int(t) < len(templateNames) {
		return templateNames[t]
	}
	return unknownStr
}

// ParseTemplate returns the template with the given name.
func ParseTemplate(name string) (Template, error) {
	for i, n := range templateNames {
		if n == name {
			return Template(i), nil
		}
	}
	return TemplateBlank, fmt.Errorf("ink: unknown template %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (t Template) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Template) UnmarshalText(b []byte) error {
	v, err := ParseTemplate(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// commands returns the draw commands of t over a width by height page.
func (t Template) commands(width, height float64) []display.Command {
	line := display.LineStyle{Color: TemplateColor, Width: templateLine, Cap: display.CapButt}
	var cmds []display.Command

	horizontal := func() {
		for y := TemplateSpacing; y < height; y += TemplateSpacing {
			cmds = append(cmds, display.CurveCommand{From: gg.Pt(0, y), To: gg.Pt(width, y), Line: line})
		}
	}
	vertical := func() {
		for x := TemplateSpacing; x < width; x += TemplateSpacing {
			cmds = append(cmds, display.CurveCommand{From: gg.Pt(x, 0), To: gg.Pt(x, height), Line: line})
		}
	}

	switch t {
	case TemplateLined:
		horizontal()
	case TemplateGrid:
		horizontal()
		vertical()
	case TemplateDotted:
		for y := TemplateSpacing; y < height; y += TemplateSpacing {
			for x := TemplateSpacing; x < width; x += TemplateSpacing {
				cmds = append(cmds, display.CircleCommand{
					Center: gg.Pt(x, y),
					Radius: templateDot,
					Fill:   true,
					Line:   display.LineStyle{Color: TemplateColor},
				})
			}
		}
	}
	return cmds
}
