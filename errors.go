package ggtex

import "errors"

// Sentinel errors for ggtex.
var (
	// ErrGlyphMissing is returned by Label.Draw when a queued run is not
	// (or no longer) available from the glyph source.
	ErrGlyphMissing = errors.New("ggtex: glyph not in cache")

	// ErrNilGlyph is returned when a Rasterizer returns neither a glyph
	// nor an error.
	ErrNilGlyph = errors.New("ggtex: rasterizer returned nil glyph")
)
