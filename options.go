package ggtex

import "github.com/gogpu/ggtex/text"

// Option configures an Interpreter during creation.
//
// Example:
//
//	in := ggtex.New(
//	    ggtex.WithFont(ggtex.Font{Family: text.FamilyLatinModern, Size: 16}),
//	    ggtex.WithMaxDepth(4),
//	)
type Option func(*options)

type options struct {
	font          Font
	keywords      Keywords
	raster        Rasterizer
	library       *text.Library
	store         GlyphStore
	cacheCapacity int
	maxDepth      int
}

func defaultOptions() options {
	return options{
		font:     DefaultFont,
		keywords: DefaultKeywords(),
		maxDepth: DefaultMaxDepth,
	}
}

// WithFont sets the default font. An empty family keeps the default
// family; a non-positive size keeps the default size.
func WithFont(f Font) Option {
	return func(o *options) {
		if f.Family == "" {
			f.Family = DefaultFont.Family
		}
		if f.Size <= 0 {
			f.Size = DefaultFont.Size
		}
		o.font = f
	}
}

// WithKeywords renames the control sequences. Empty fields keep their
// default names.
func WithKeywords(kw Keywords) Option {
	return func(o *options) {
		o.keywords = kw
	}
}

// WithRasterizer replaces the default FontRasterizer.
func WithRasterizer(r Rasterizer) Option {
	return func(o *options) {
		o.raster = r
	}
}

// WithLibrary makes the default FontRasterizer resolve families through
// lib instead of text.DefaultLibrary. It has no effect together with
// WithRasterizer.
func WithLibrary(lib *text.Library) Option {
	return func(o *options) {
		o.library = lib
	}
}

// WithStore replaces the default GlyphCache. Interpreters sharing a store
// share rasterized runs.
func WithStore(s GlyphStore) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithCacheCapacity sets the per-shard capacity of the default GlyphCache.
// It has no effect together with WithStore.
//
// The cache evicts least recently used runs, including runs a parsed Label
// still refers to. A label with more distinct runs than roughly
// cache.ShardCount*n cannot be drawn reliably: Label.Draw then fails with
// ErrGlyphMissing. Keep n well above the run count of the largest label,
// and larger still when many labels are parsed concurrently.
func WithCacheCapacity(n int) Option {
	return func(o *options) {
		o.cacheCapacity = n
	}
}

// WithMaxDepth limits how deeply sub- and superscripts nest. Markers
// beyond the limit are drawn literally. Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}
