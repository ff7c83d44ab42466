package text

// SetGlyphFallbacks sets the families SourceFor tries, in order, when the
// requested face lacks a glyph for the run.
func (l *Library) SetGlyphFallbacks(names ...string) {
	keys := make([]string, len(names))
	for i, n := range names {
		keys[i] = foldName(n)
	}
	l.mu.Lock()
	l.glyphFallbacks = keys
	l.mu.Unlock()
}

// SourceFor returns the FontSource for family and style that can render
// every rune of s. If the requested face cannot, the glyph fallback
// families are tried in order with the same style; if none covers s
// either, the requested face is returned and the missing runes render as
// the font's notdef glyph.
func (l *Library) SourceFor(name string, style Style, s string) (*FontSource, error) {
	src, err := l.Source(name, style)
	if err != nil {
		return nil, err
	}
	if covers(src, s) {
		return src, nil
	}

	l.mu.RLock()
	chain := l.glyphFallbacks
	l.mu.RUnlock()

	for _, key := range chain {
		alt, err := l.Source(key, style)
		if err != nil || alt == src || !covers(alt, s) {
			continue
		}
		logger().Debug("text: glyph fallback", "family", name, "fallback", alt.Name(), "text", s)
		return alt, nil
	}
	return src, nil
}

func covers(src *FontSource, s string) bool {
	for _, r := range s {
		if !src.HasGlyph(r) {
			return false
		}
	}
	return true
}
