package typeset

import (
	"slices"
	"testing"
)

func TestResolveFamily(t *testing.T) {
	tests := []struct {
		name string
		want Family
	}{
		{"", Regular},
		{"sans-serif", Regular},
		{"Helvetica", Regular},
		{"monospace", Mono},
		{"Courier New", Mono},
		{"Fira Code", Mono},
		{"Arial Bold", Bold},
		{"serif italic", Italic},
		{"cursive", Italic},
	}
	for _, tt := range tests {
		if got := ResolveFamily(tt.name); got != tt.want {
			t.Errorf("ResolveFamily(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestProviderFaces(t *testing.T) {
	p := NewProvider()
	for _, family := range []string{"sans-serif", "monospace", "bold", "italic"} {
		if p.Face(family, 16) == nil {
			t.Errorf("Face(%q) = nil", family)
		}
	}
	if Default() != Default() {
		t.Error("Default() should return a shared provider")
	}
}

func TestProviderMetrics(t *testing.T) {
	p := Default()
	if lh := p.LineHeight("sans-serif", 16); lh <= 0 {
		t.Errorf("LineHeight = %v, want positive", lh)
	}
	if a := p.Ascent("sans-serif", 16); a <= 0 || a > 32 {
		t.Errorf("Ascent = %v", a)
	}
	if p.Advance("", "sans-serif", 16) != 0 {
		t.Error("Advance of empty string should be 0")
	}
	short, long := p.Advance("ab", "sans-serif", 16), p.Advance("abcd", "sans-serif", 16)
	if short <= 0 || long <= short {
		t.Errorf("Advance(ab) = %v, Advance(abcd) = %v", short, long)
	}

	// Monospace advances do not depend on the glyph.
	if i, m := p.Advance("iii", "monospace", 16), p.Advance("mmm", "monospace", 16); i != m {
		t.Errorf("mono advances differ: %v vs %v", i, m)
	}
}

func TestProviderWrap(t *testing.T) {
	p := Default()

	if lines := p.Wrap("", "sans-serif", 16, 200); len(lines) != 1 || lines[0] != "" {
		t.Errorf("Wrap(empty) = %q, want one empty line", lines)
	}
	if lines := p.Wrap("hello world", "sans-serif", 16, 1000); len(lines) != 1 {
		t.Errorf("Wrap(wide) = %q, want one line", lines)
	}
	if lines := p.Wrap("one\ntwo", "sans-serif", 16, 1000); len(lines) != 2 {
		t.Errorf("Wrap(hard break) = %q, want two lines", lines)
	}
	if lines := p.Wrap("hello wide world of ink", "sans-serif", 16, 60); len(lines) < 2 {
		t.Errorf("Wrap(narrow) = %q, want several lines", lines)
	}

	lh := p.LineHeight("sans-serif", 16)
	if h := p.TextHeight("one\ntwo", "sans-serif", 16, 1000); h != 2*lh {
		t.Errorf("TextHeight = %v, want %v", h, 2*lh)
	}
}

func TestBoundaries(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want []int
	}{
		{"empty", "", []int{0}},
		{"ascii", "abc", []int{0, 1, 2, 3}},
		{"combining mark", "e\u0301x", []int{0, 3, 4}},
		{"flag", "a\U0001F1EB\U0001F1F7", []int{0, 1, 9}},
		{"crlf", "a\r\nb", []int{0, 1, 3, 4}},
		{"invalid bytes", "a\xff\xfe\xc3", []int{0, 1, 2, 3, 4}},
		{"invalid then ascii", "\xffb", []int{0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Boundaries(tt.s); !slices.Equal(got, tt.want) {
				t.Errorf("Boundaries(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestPrevNextBoundary(t *testing.T) {
	s := "e\u0301x"
	tests := []struct {
		pos, prev, next int
	}{
		{0, 0, 3},
		{2, 0, 3},
		{3, 0, 4},
		{4, 3, 4},
	}
	for _, tt := range tests {
		if got := PrevBoundary(s, tt.pos); got != tt.prev {
			t.Errorf("PrevBoundary(%d) = %d, want %d", tt.pos, got, tt.prev)
		}
		if got := NextBoundary(s, tt.pos); got != tt.next {
			t.Errorf("NextBoundary(%d) = %d, want %d", tt.pos, got, tt.next)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("e\u0301"); got != "\u00e9" {
		t.Errorf("Normalize = %q, want composed e acute", got)
	}
}
