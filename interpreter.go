package ggtex

import (
	"fmt"
	"image"
	"image/color"
	"unicode/utf8"
)

const (
	// scriptScale is the font size factor for sub- and superscripts.
	scriptScale = 0.7

	// subscriptShift and superscriptShift move sub- and superscripts down
	// and up by a fraction of the parent font's line height.
	subscriptShift   = 0.3
	superscriptShift = 0.2

	// DefaultMaxDepth is the default limit on nested sub/superscripts.
	DefaultMaxDepth = 16
)

// State is the font, offset and color in effect at a point of an
// expression. It is passed by value into every recursive parse, so a
// change inside a sub/superscript group never leaks out of it.
type State struct {
	Font   Font
	Offset image.Point
	// Color is nil while unset; renderers then use their own default.
	Color color.Color
}

// Item is one entry of a label's render queue: either a run to draw from
// the glyph cache, or a line-position control character.
type Item struct {
	// Key identifies the cached run. It is zero for control items.
	Key Key

	// Control is '\n' or '\r' for line-position items, 0 otherwise.
	Control rune

	// Offset is added to the pen position when drawing the run.
	Offset image.Point

	Color color.Color
}

// IsControl reports whether it is a line-position item.
func (it Item) IsControl() bool { return it.Control != 0 }

// Text returns the literal text of a run, or the control character.
func (it Item) Text() string {
	if it.IsControl() {
		return string(it.Control)
	}
	return it.Key.Text
}

// Label is the result of interpreting an expression: the render queue in
// drawing order and the bounding size of the laid out text.
type Label struct {
	Items []Item
	Size  Size
}

// Interpreter turns TeX-like markup into labels.
//
// Recognized markup, with the default keywords:
//
//	\it \bf \rm                  add italic, add bold, back to regular
//	\reset                       default font, origin offset, unset color
//	\fontname{NAME}              switch family
//	\fontsize{N} {+N} {-N}       set or adjust size
//	\color{#RRGGBB} \color{NAME} set color
//	\alpha \rightarrow ...       symbols, see Symbols
//	_x _{...} ^x ^{...}          sub- and superscripts
//	\r \n (control characters)   carriage return, newline
//
// Malformed or unknown sequences are drawn as literal text, and rejected
// parameters leave the state unchanged; only rasterization failures make
// a parse fail.
//
// An Interpreter is safe for concurrent use.
type Interpreter struct {
	font     Font
	keywords Keywords
	raster   Rasterizer
	store    GlyphStore
	maxDepth int
}

// New creates an Interpreter. Without options it uses DefaultFont, the
// default keywords, a FontRasterizer over text.DefaultLibrary and a fresh
// GlyphCache.
func New(opts ...Option) *Interpreter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.raster == nil {
		o.raster = NewFontRasterizer(o.library)
	}
	if o.store == nil {
		o.store = NewGlyphCache(o.cacheCapacity)
	}
	return &Interpreter{
		font:     o.font,
		keywords: o.keywords.merge(),
		raster:   o.raster,
		store:    o.store,
		maxDepth: o.maxDepth,
	}
}

// Font returns the default font.
func (in *Interpreter) Font() Font { return in.font }

// Keywords returns the control sequence names in effect.
func (in *Interpreter) Keywords() Keywords { return in.keywords }

// Store returns the glyph store.
func (in *Interpreter) Store() GlyphStore { return in.store }

// Glyphs returns the store as a GlyphSource for Label.Draw, or nil if the
// store cannot hand out bitmaps.
func (in *Interpreter) Glyphs() GlyphSource {
	src, _ := in.store.(GlyphSource)
	return src
}

// DefaultState returns the state a parse starts from and \reset returns
// to: the default font at the origin with no color.
func (in *Interpreter) DefaultState() State {
	return State{Font: in.font}
}

// Parse interprets expr starting from DefaultState.
func (in *Interpreter) Parse(expr string) (*Label, error) {
	return in.ParseState(expr, in.DefaultState())
}

// ParseState interprets expr starting from st.
func (in *Interpreter) ParseState(expr string, st State) (*Label, error) {
	p := parser{in: in}
	if err := p.parse(expr, st, 0); err != nil {
		return nil, err
	}
	return &Label{Items: p.items, Size: p.lay.bounds()}, nil
}

// parser holds the output of one top-level parse. Recursive calls for
// sub- and superscripts append to the same queue and layout.
type parser struct {
	in    *Interpreter
	items []Item
	lay   layout
}

func (p *parser) parse(expr string, st State, depth int) error {
	pos := 0
	for pos < len(expr) {
		r, n := utf8.DecodeRuneInString(expr[pos:])
		lit := expr[pos : pos+n]
		pos += n

		switch {
		case r == '\n' || r == '\r':
			p.items = append(p.items, Item{Control: r, Color: st.Color})
			if r == '\n' {
				p.lay.newline()
			} else {
				p.lay.carriageReturn()
			}
			continue

		case r == '\\':
			if next, nst, ok := p.control(expr, pos, st); ok {
				pos, st = next, nst
				continue
			}
			if sym, next := MatchSymbol(expr, pos); sym != SymbolNothing {
				pos = next
				if lit = TranslateSymbol(sym); lit == "" {
					continue
				}
			}

		case (r == '_' || r == '^') && pos < len(expr):
			if depth >= p.in.maxDepth {
				Logger().Debug("ggtex: script nesting limit reached", "depth", depth)
				break
			}
			group, next := scriptGroup(expr, pos)
			if err := p.parse(group, p.scriptState(st, r == '_'), depth+1); err != nil {
				return err
			}
			pos = next
			continue
		}

		if err := p.emit(lit, st); err != nil {
			return err
		}
	}
	return nil
}

// control tries the state-changing control sequences at expr[pos:], just
// after an escape character.
func (p *parser) control(expr string, pos int, st State) (int, State, bool) {
	kw := &p.in.keywords

	if next, ok := matchKeyword(expr, pos, kw.Italic); ok {
		st.Font = st.Font.AddStyle(StyleItalic)
		return next, st, true
	}
	if next, ok := matchKeyword(expr, pos, kw.Bold); ok {
		st.Font = st.Font.AddStyle(StyleBold)
		return next, st, true
	}
	if next, ok := matchKeyword(expr, pos, kw.Roman); ok {
		st.Font = st.Font.WithStyle(StyleRegular)
		return next, st, true
	}
	if next, ok := matchKeyword(expr, pos, kw.Reset); ok {
		return next, p.in.DefaultState(), true
	}

	if arg, next, ok := matchArgument(expr, pos, kw.Fontname); ok {
		if arg != "" {
			st.Font = st.Font.WithFamily(arg)
		}
		return next, st, true
	}
	if arg, next, ok := matchArgument(expr, pos, kw.Fontsize); ok {
		if f, shift, ok := resizeFont(st.Font, arg); ok {
			st.Font = f
			st.Offset.Y += shift
		} else {
			Logger().Debug("ggtex: font size ignored", "arg", arg, "size", st.Font.Size)
		}
		return next, st, true
	}
	if arg, next, ok := matchArgument(expr, pos, kw.Color); ok {
		c, ok := parseColor(arg, st.Color)
		if !ok {
			Logger().Debug("ggtex: color ignored", "arg", arg)
		}
		st.Color = c
		return next, st, true
	}
	return pos, st, false
}

// scriptState derives the state of a sub- or superscript group.
func (p *parser) scriptState(st State, sub bool) State {
	h := p.in.raster.LineHeight(st.Font)
	if sub {
		st.Offset.Y += int(subscriptShift * h)
	} else {
		st.Offset.Y -= int(superscriptShift * h)
	}
	st.Font = st.Font.WithSize(st.Font.Size * scriptScale)
	return st
}

// scriptGroup returns the operand of a sub/superscript marker starting at
// expr[pos:] and the cursor after it: the contents of a {...} group, or
// else the single next character (including an unmatched '{').
// Groups end at the first '}'. An unmatched '{' is itself drawn at
// script size, and the text after it continues at the parent state.
func scriptGroup(expr string, pos int) (string, int) {
	if expr[pos] == '{' {
		for end := pos + 1; end < len(expr); end++ {
			if expr[end] == '}' {
				return expr[pos+1 : end], end + 1
			}
		}
	}
	_, n := utf8.DecodeRuneInString(expr[pos:])
	return expr[pos : pos+n], pos + n
}

// emit queues the run s in state st, rasterizing it on a cache miss.
func (p *parser) emit(s string, st State) error {
	key := NewKey(st.Font, s)
	size, ok := p.in.store.Lookup(key)
	if !ok {
		var err error
		if size, err = p.in.rasterize(key); err != nil {
			return err
		}
	}
	p.items = append(p.items, Item{Key: key, Offset: st.Offset, Color: st.Color})
	p.lay.add(size)
	return nil
}

// rasterize renders key and stores it. The whole check-render-store
// sequence runs under the store's lock.
func (in *Interpreter) rasterize(key Key) (Size, error) {
	in.store.Lock()
	defer in.store.Unlock()

	if size, ok := in.store.Lookup(key); ok {
		return size, nil
	}

	g, err := in.raster.Rasterize(key.Text, key.Font)
	if err != nil {
		return Size{}, fmt.Errorf("ggtex: rasterize %q: %w", key.Text, err)
	}
	if g == nil {
		return Size{}, ErrNilGlyph
	}
	in.store.Store(key, g)

	Logger().Debug("ggtex: rasterized run", "key", key.String(), "width", g.Size.Width, "height", g.Size.Height)
	return g.Size, nil
}
