// Package text provides the font resources behind ggtex labels.
//
// The pipeline separates the heavyweight, shared pieces from the cheap
// per-call ones:
//
//   - Library: family name + style to font data, with lazy parsing
//   - FontSource: a parsed TTF/OTF font (golang.org/x/image/font/sfnt)
//   - Shaper: HarfBuzz shaping of a run (github.com/go-text/typesetting)
//   - Rasterize: shaped glyph outlines drawn into an alpha mask
//     (golang.org/x/image/vector)
//
// # Example usage
//
//	lib := text.DefaultLibrary()
//	src, err := lib.Source("Go", text.StyleBold)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	shaped := text.NewShaper().Shape(src, 16, "Hello")
//	bmp, err := src.Rasterize(shaped, 16)
//
// The default library bundles the Go fonts (golang.org/x/image/font/gofont)
// and the Latin Modern Roman and Math fonts (github.com/go-fonts/latin-modern).
// Additional families are added with Library.Register or
// Library.RegisterFile. Library.SourceFor picks a glyph fallback family
// for runs the requested face cannot render.
package text
