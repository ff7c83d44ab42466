package ggtex

import (
	"image/color"
	"testing"
)

func TestResizeFont(t *testing.T) {
	base := Font{Family: "Go", Size: 12}
	tests := []struct {
		arg   string
		size  float64
		shift int
		ok    bool
	}{
		{"20", 20, -8, true},
		{"8", 8, 4, true},
		{"39", 39, -27, true},
		{"40", 12, 0, false},
		{"0", 12, 0, false},
		{"+4", 16, -4, true},
		{"+28", 40, -28, true},
		{"+100", 40, -28, true},
		{"+0", 12, 0, false},
		{"-4", 8, 4, true},
		{"-11", 1, 11, true},
		{"-12", 12, 0, false},
		{"-20", 12, 0, false},
		{"1.5", 12, 0, false},
		{"abc", 12, 0, false},
		{"", 12, 0, false},
	}
	for _, tt := range tests {
		f, shift, ok := resizeFont(base, tt.arg)
		if ok != tt.ok || f.Size != tt.size || shift != tt.shift {
			t.Errorf("resizeFont(12, %q) = %v, %d, %v; want %v, %d, %v",
				tt.arg, f.Size, shift, ok, tt.size, tt.shift, tt.ok)
		}
		if f.Family != base.Family {
			t.Errorf("resizeFont(12, %q) changed family to %q", tt.arg, f.Family)
		}
	}
}

func TestResizeFontFractional(t *testing.T) {
	// Relative changes start from the truncated size.
	f, shift, ok := resizeFont(Font{Size: 8.4}, "+2")
	if !ok || f.Size != 10 || shift != -2 {
		t.Errorf("resizeFont(8.4, +2) = %v, %d, %v", f.Size, shift, ok)
	}
}

func TestFontDerive(t *testing.T) {
	f := DefaultFont.AddStyle(StyleBold).AddStyle(StyleItalic)
	if !f.Style.Bold() || !f.Style.Italic() {
		t.Errorf("AddStyle: style = %v", f.Style)
	}
	if DefaultFont.Style != StyleRegular {
		t.Error("AddStyle modified DefaultFont")
	}
	if g := f.WithStyle(StyleRegular); g.Style != StyleRegular {
		t.Errorf("WithStyle(regular) = %v", g.Style)
	}
	if g := f.WithFamily("Go Mono").WithSize(20); g.Family != "Go Mono" || g.Size != 20 || g.Style != f.Style {
		t.Errorf("WithFamily/WithSize = %+v", g)
	}
}

func TestFontString(t *testing.T) {
	tests := []struct {
		f    Font
		want string
	}{
		{Font{Family: "Go", Size: 12}, "Go 12px"},
		{Font{Family: "Go", Size: 8.4, Style: StyleBold}, "Go 8.4px bold"},
		{Font{Family: "Go", Size: 10, Style: StyleBold | StyleItalic, Unit: UnitPoint}, "Go 10pt bolditalic"},
		{Font{Family: "Latin Modern Roman", Size: 12, Style: StyleItalic}, "Latin Modern Roman 12px italic"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestFontPPEM(t *testing.T) {
	if got := (Font{Size: 12}).PPEM(); got != 12 {
		t.Errorf("px PPEM = %v", got)
	}
	if got := (Font{Size: 12, Unit: UnitPoint}).PPEM(); got != 16 {
		t.Errorf("pt PPEM = %v, want 16", got)
	}
}

func TestParseUnit(t *testing.T) {
	for _, s := range []string{"", "px", "PX", "pixel"} {
		if u, ok := ParseUnit(s); !ok || u != UnitPixel {
			t.Errorf("ParseUnit(%q) = %v, %v", s, u, ok)
		}
	}
	for _, s := range []string{"pt", "Point"} {
		if u, ok := ParseUnit(s); !ok || u != UnitPoint {
			t.Errorf("ParseUnit(%q) = %v, %v", s, u, ok)
		}
	}
	if _, ok := ParseUnit("em"); ok {
		t.Error("ParseUnit(em) accepted")
	}
}

func TestParseColorArg(t *testing.T) {
	prev := color.Gray{Y: 0x80}
	tests := []struct {
		arg  string
		want color.Color
		ok   bool
	}{
		{"#FF0000", color.NRGBA{R: 0xff, A: 0xff}, true},
		{"#00ff7f", color.NRGBA{G: 0xff, B: 0x7f, A: 0xff}, true},
		{"#ZZZZZZ", prev, false},
		{"#FF00000", prev, false},
		{"#", prev, false},
		{"", prev, false},
		{"red", color.RGBA{R: 0xff, A: 0xff}, true},
		{"RED", color.RGBA{R: 0xff, A: 0xff}, true},
		{"SteelBlue", color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}, true},
		{"notacolor", prev, false},
	}
	for _, tt := range tests {
		got, ok := parseColor(tt.arg, prev)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseColor(%q) = %v, %v; want %v, %v", tt.arg, got, ok, tt.want, tt.ok)
		}
	}
}
