package text

import (
	"sort"
	"sync"

	"github.com/go-fonts/latin-modern/lmmath"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/cases"
)

// Bundled family names registered in DefaultLibrary.
const (
	FamilyGo          = "Go"
	FamilyGoMono      = "Go Mono"
	FamilyGoMedium    = "Go Medium"
	FamilyLatinModern = "Latin Modern Roman"
	FamilyLatinMath   = "Latin Modern Math"
)

// Library resolves a family name and style to a FontSource.
// Family names are matched case-insensitively. Font data is parsed on first
// use and the parsed source is shared by all callers.
//
// Library is safe for concurrent use.
type Library struct {
	mu             sync.RWMutex
	families       map[string]*family
	fallback       string
	glyphFallbacks []string

	sources *Cache[faceKey, sourceResult]
}

type family struct {
	name  string
	faces map[Style][]byte
}

type faceKey struct {
	family string
	style  Style
}

type sourceResult struct {
	src *FontSource
	err error
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{
		families: make(map[string]*family),
		sources:  NewCache[faceKey, sourceResult](0),
	}
}

var (
	defaultOnce    sync.Once
	defaultLibrary *Library
)

// DefaultLibrary returns the shared library holding the bundled Go and
// Latin Modern families. FamilyGo is the fallback family, and runs it
// cannot cover fall back to FamilyLatinMath.
func DefaultLibrary() *Library {
	defaultOnce.Do(func() {
		defaultLibrary = NewBundledLibrary()
	})
	return defaultLibrary
}

// NewBundledLibrary creates a library with the bundled families registered.
// Unlike DefaultLibrary, the result is not shared.
func NewBundledLibrary() *Library {
	l := NewLibrary()

	l.Register(FamilyGo, StyleRegular, goregular.TTF)
	l.Register(FamilyGo, StyleBold, gobold.TTF)
	l.Register(FamilyGo, StyleItalic, goitalic.TTF)
	l.Register(FamilyGo, StyleBoldItalic, gobolditalic.TTF)

	l.Register(FamilyGoMono, StyleRegular, gomono.TTF)
	l.Register(FamilyGoMono, StyleBold, gomonobold.TTF)
	l.Register(FamilyGoMono, StyleItalic, gomonoitalic.TTF)
	l.Register(FamilyGoMono, StyleBoldItalic, gomonobolditalic.TTF)

	l.Register(FamilyGoMedium, StyleRegular, gomedium.TTF)
	l.Register(FamilyGoMedium, StyleItalic, gomediumitalic.TTF)

	l.Register(FamilyLatinModern, StyleRegular, lmroman10regular.TTF)
	l.Register(FamilyLatinModern, StyleBold, lmroman10bold.TTF)
	l.Register(FamilyLatinModern, StyleItalic, lmroman10italic.TTF)
	l.Register(FamilyLatinModern, StyleBoldItalic, lmroman10bolditalic.TTF)

	l.Register(FamilyLatinMath, StyleRegular, lmmath.TTF)

	l.SetFallback(FamilyGo)
	l.SetGlyphFallbacks(FamilyGo, FamilyLatinMath)
	return l
}

// Register adds font data for family and style, replacing any earlier
// registration. The first registered family becomes the fallback unless
// SetFallback is called.
func (l *Library) Register(name string, style Style, data []byte) {
	key := foldName(name)

	l.mu.Lock()
	f, ok := l.families[key]
	if !ok {
		f = &family{name: name, faces: make(map[Style][]byte)}
		l.families[key] = f
	}
	f.faces[style] = data
	if l.fallback == "" {
		l.fallback = key
	}
	l.mu.Unlock()

	l.sources.Delete(faceKey{key, style})
	logger().Debug("text: font registered", "family", name, "style", style.String(), "bytes", len(data))
}

// RegisterFile reads a font file and registers it for family and style.
// The file is parsed immediately so that errors surface here.
func (l *Library) RegisterFile(name string, style Style, path string) error {
	src, err := NewFontSourceFromFile(path)
	if err != nil {
		return &FontError{Family: name, Style: style, Err: err}
	}
	l.Register(name, style, src.data)
	return nil
}

// SetFallback sets the family used when a requested family is unknown.
func (l *Library) SetFallback(name string) {
	l.mu.Lock()
	l.fallback = foldName(name)
	l.mu.Unlock()
}

// Families returns the registered family names in sorted order.
func (l *Library) Families() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.families))
	for _, f := range l.families {
		names = append(names, f.name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether family is registered.
func (l *Library) Has(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.families[foldName(name)]
	return ok
}

// Source returns the FontSource for family and style.
// An unknown family resolves to the fallback family; a missing style
// resolves to the closest registered one (bold italic, then bold or italic,
// then regular).
func (l *Library) Source(name string, style Style) (*FontSource, error) {
	key, resolved, data, ok := l.resolve(foldName(name), style)
	if !ok {
		return nil, ErrNoFonts
	}

	res := l.sources.GetOrCreate(faceKey{key, resolved}, func() sourceResult {
		src, err := NewFontSource(data)
		if err != nil {
			return sourceResult{err: &FontError{Family: name, Style: resolved, Err: err}}
		}
		return sourceResult{src: src}
	})
	return res.src, res.err
}

func (l *Library) resolve(key string, style Style) (string, Style, []byte, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	f, ok := l.families[key]
	if !ok {
		key = l.fallback
		if f, ok = l.families[key]; !ok {
			return "", 0, nil, false
		}
	}
	for _, s := range styleFallbacks(style) {
		if data, ok := f.faces[s]; ok {
			return key, s, data, true
		}
	}
	for s, data := range f.faces {
		return key, s, data, true
	}
	return "", 0, nil, false
}

func styleFallbacks(s Style) []Style {
	switch s {
	case StyleBoldItalic:
		return []Style{StyleBoldItalic, StyleBold, StyleItalic, StyleRegular}
	case StyleBold:
		return []Style{StyleBold, StyleRegular}
	case StyleItalic:
		return []Style{StyleItalic, StyleRegular}
	default:
		return []Style{StyleRegular}
	}
}

// foldName case-folds a family name. A Caser is stateful, so one is made
// per call.
func foldName(name string) string {
	return cases.Fold().String(name)
}
