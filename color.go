package ink

import (
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// DefaultColor is used when a stroke or text box color cannot be parsed.
var DefaultColor = gg.Black

// ParseColor parses a CSS-style color string. Supported forms are
// "#rgb", "#rgba", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)", "rgba(r, g, b, a)"
// and SVG/CSS color keywords ("red", "cornflowerblue", "transparent").
// The boolean result is false when s is not a recognizable color.
func ParseColor(s string) (gg.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return gg.RGBA{}, false
	case s == "transparent":
		return gg.Transparent, true
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgb"):
		return parseFuncColor(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return gg.FromColor(c), true
	}
	return gg.RGBA{}, false
}

// resolveColor parses s and falls back to DefaultColor.
func resolveColor(s string) gg.RGBA {
	c, ok := ParseColor(s)
	if !ok {
		Logger().Debug("ink: unparseable color, using default", "color", s)
		return DefaultColor
	}
	return c
}

// withAlpha multiplies the color's alpha by a.
func withAlpha(c gg.RGBA, a float64) gg.RGBA {
	c.A *= a
	return c
}

func parseHexColor(h string) (gg.RGBA, bool) {
	if _, err := strconv.ParseUint(h, 16, 64); err != nil {
		return gg.RGBA{}, false
	}
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return gg.RGBA{}, false
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, _ := strconv.ParseUint(h, 16, 32)
	return gg.RGBA{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, true
}

func parseFuncColor(s string) (gg.RGBA, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return gg.RGBA{}, false
	}
	parts := strings.FieldsFunc(s[open+1:len(s)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(parts) != 3 && len(parts) != 4 {
		return gg.RGBA{}, false
	}

	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		pct := strings.HasSuffix(p, "%")
		v, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
		if err != nil {
			return gg.RGBA{}, false
		}
		switch {
		case pct:
			v /= 100
		case i < 3:
			v /= 255
		}
		ch[i] = clamp(v, 0, 1)
	}
	return gg.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, true
}
