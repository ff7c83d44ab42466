package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// ShapedGlyph is a positioned glyph in a shaped run, in pixels relative to
// the run origin on the baseline.
type ShapedGlyph struct {
	GID     uint16
	X, Y    float64
	Advance float64
}

// ShapedRun is the result of shaping one run of text.
type ShapedRun struct {
	Glyphs  []ShapedGlyph
	Advance float64
}

// Shaper converts text runs into positioned glyphs using HarfBuzz shaping
// from go-text/typesetting, so kerning and ligatures are applied.
//
// Shaper is safe for concurrent use. Parsed go-text fonts are cached per
// FontSource (font.Font is read-only); a lightweight font.Face is created
// per call because font.Face is not safe for concurrent use. HarfbuzzShaper
// instances are pooled for the same reason.
type Shaper struct {
	pool  sync.Pool
	fonts *Cache[*FontSource, *font.Font]
}

// NewShaper creates a Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		fonts: NewCache[*FontSource, *font.Font](64),
	}
}

// Shape shapes s with src at ppem pixels per em, left to right.
// It returns an empty run if s is empty or the font cannot be read by
// go-text.
func (sh *Shaper) Shape(src *FontSource, ppem float64, s string) ShapedRun {
	if s == "" || src == nil {
		return ShapedRun{}
	}

	f := sh.fonts.GetOrCreate(src, func() *font.Font {
		face, err := font.ParseTTF(bytes.NewReader(src.data))
		if err != nil {
			logger().Warn("text: go-text cannot parse font", "family", src.Name(), "err", err)
			return nil
		}
		return face.Font
	})
	if f == nil {
		return ShapedRun{}
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      toFixed(ppem),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := sh.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	sh.pool.Put(hb)

	run := ShapedRun{Glyphs: make([]ShapedGlyph, len(out.Glyphs))}
	x := 0.0
	for i, g := range out.Glyphs {
		adv := fromFixed(g.XAdvance)
		run.Glyphs[i] = ShapedGlyph{
			GID:     uint16(g.GlyphID), //nolint:gosec // glyph ids fit in uint16 for TrueType/CFF fonts
			X:       x + fromFixed(g.XOffset),
			Y:       -fromFixed(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	run.Advance = x
	return run
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
