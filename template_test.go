package ink

import (
	"testing"

	"github.com/gogpu/ink/display"
)

func TestTemplateCommands(t *testing.T) {
	// 100x70 page with 32 unit spacing: rows at 32 and 64, columns at 32, 64 and 96.
	tests := []struct {
		tmpl    Template
		curves  int
		circles int
	}{
		{TemplateBlank, 0, 0},
		{TemplateLined, 2, 0},
		{TemplateGrid, 5, 0},
		{TemplateDotted, 0, 6},
	}
	for _, tt := range tests {
		t.Run(tt.tmpl.String(), func(t *testing.T) {
			l := display.NewList(100, 70)
			l.Append(tt.tmpl.commands(100, 70)...)
			if got := l.Count(display.CmdCurve); got != tt.curves {
				t.Errorf("curves = %d, want %d", got, tt.curves)
			}
			if got := l.Count(display.CmdCircle); got != tt.circles {
				t.Errorf("circles = %d, want %d", got, tt.circles)
			}
		})
	}
}

func TestParseTemplate(t *testing.T) {
	for _, tmpl := range []Template{TemplateBlank, TemplateLined, TemplateGrid, TemplateDotted} {
		got, err := ParseTemplate(tmpl.String())
		if err != nil || got != tmpl {
			t.Errorf("ParseTemplate(%q) = %v, %v", tmpl.String(), got, err)
		}
	}
	if _, err := ParseTemplate("hexagons"); err == nil {
		t.Error("ParseTemplate(hexagons) should fail")
	}

	var tmpl Template
	if err := tmpl.UnmarshalText([]byte("grid")); err != nil || tmpl != TemplateGrid {
		t.Errorf("UnmarshalText(grid) = %v, %v", tmpl, err)
	}
}
