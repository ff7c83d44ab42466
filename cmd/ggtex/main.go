// Command ggtex interprets a label expression, prints its render queue
// and optionally writes it as a PNG image.
//
//	ggtex -o label.png 'E = mc^2 \rightarrow \color{red}\infty'
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/ggtex"
	"github.com/gogpu/ggtex/config"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "TOML configuration file")
		output  = flag.String("o", "", "write the label to this PNG file")
		fg      = flag.String("fg", "black", "default text color")
		bg      = flag.String("bg", "white", "background color, or \"none\"")
		verbose = flag.Bool("v", false, "debug logging to stderr")
		symbols = flag.Bool("symbols", false, "list the symbol names and exit")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: ggtex [flags] EXPR\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *symbols {
		listSymbols()
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		ggtex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	in, err := newInterpreter(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to configure: %v", err)
	}

	label, err := in.Parse(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to parse: %v", err)
	}
	printLabel(label)

	if *output == "" {
		return
	}
	fgColor, ok := ggtex.ParseColor(*fg)
	if !ok {
		log.Fatalf("Unknown color %q", *fg)
	}
	var bgColor color.Color
	if *bg != "none" {
		if bgColor, ok = ggtex.ParseColor(*bg); !ok {
			log.Fatalf("Unknown color %q", *bg)
		}
	}
	if err := writePNG(*output, label, in.Glyphs(), fgColor, bgColor); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Label saved to %s (%dx%d)\n", *output, label.Size.Width, label.Size.Height)
}

func newInterpreter(path string) (*ggtex.Interpreter, error) {
	if path == "" {
		return ggtex.New(), nil
	}
	return config.New(path)
}

func printLabel(l *ggtex.Label) {
	for i, it := range l.Items {
		if it.IsControl() {
			fmt.Printf("%3d  %q\n", i, it.Text())
			continue
		}
		fmt.Printf("%3d  %-36s offset=%v", i, it.Key, it.Offset)
		if it.Color != nil {
			r, g, b, _ := it.Color.RGBA()
			fmt.Printf(" color=#%02X%02X%02X", r>>8, g>>8, b>>8)
		}
		fmt.Println()
	}
	fmt.Printf("size %dx%d\n", l.Size.Width, l.Size.Height)
}

func listSymbols() {
	var b strings.Builder
	for _, s := range ggtex.Symbols() {
		fmt.Fprintf(&b, "\\%-16s %s\n", s, ggtex.TranslateSymbol(s))
	}
	fmt.Print(b.String())
}

func writePNG(path string, l *ggtex.Label, src ggtex.GlyphSource, fg, bg color.Color) error {
	img, err := l.Image(src, fg, bg)
	if err != nil {
		return err
	}
	// #nosec G304 -- output path is provided by the user
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
