// Package ggtex interprets a small TeX-like markup language for labels
// and plot annotations.
//
// # Overview
//
// An Interpreter walks an expression such as
//
//	\it f\rm(x) = x^{2} + \alpha_0 \rightarrow \color{red}\infty
//
// and produces a Label: an ordered render queue of runs, each tagged with
// a font, a vertical offset and a color, plus the bounding size of the
// laid out text. Every run is rasterized once into a shared GlyphStore
// and referenced from the queue by Key.
//
// # Quick Start
//
//	in := ggtex.New()
//	label, err := in.Parse(`E = mc^2`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img, err := label.Image(in.Glyphs(), color.Black, color.White)
//
// # Markup
//
// Font changes (\it, \bf, \rm, \fontname{}, \fontsize{}), colors
// (\color{#RRGGBB} or an SVG color name), \reset, the Greek letters and
// math symbols listed by Symbols, and _ / ^ for sub- and superscripts
// are recognized. Anything else is drawn literally, so no input makes a
// parse fail; errors only come from the Rasterizer.
//
// Control sequence names can be changed with WithKeywords, for hosts
// whose own syntax already uses them.
//
// # Fonts
//
// The default FontRasterizer resolves families through a text.Library.
// text.DefaultLibrary bundles the Go fonts and Latin Modern; more
// families are added with text.Library.Register or through the config
// package.
//
// # Logging
//
// ggtex is silent by default. See SetLogger.
package ggtex
