// Package config loads interpreter settings from TOML files.
//
// A file looks like:
//
//	max_depth = 16
//	cache_capacity = 256
//
//	[font]
//	family = "Latin Modern Roman"
//	size = 14
//	italic = true
//	unit = "px"
//
//	[keywords]
//	bold = "textbf"
//
//	[[fonts]]
//	family = "My Sans"
//	style = "bold"
//	path = "fonts/MySans-Bold.ttf"
//
// Every key is optional. Relative font paths are resolved against the
// directory of the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/ggtex"
	"github.com/gogpu/ggtex/text"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the file form of an Interpreter's options.
type Config struct {
	MaxDepth      int            `toml:"max_depth"`
	CacheCapacity int            `toml:"cache_capacity"`
	Font          Font           `toml:"font"`
	Keywords      ggtex.Keywords `toml:"keywords"`
	Fonts         []FontFile     `toml:"fonts"`
}

// Font is the default font.
type Font struct {
	Family string  `toml:"family"`
	Size   float64 `toml:"size"`
	Bold   bool    `toml:"bold"`
	Italic bool    `toml:"italic"`
	Unit   string  `toml:"unit"`
}

// FontFile is an extra font file registered into the font library.
type FontFile struct {
	Family string `toml:"family"`
	Style  string `toml:"style"`
	Path   string `toml:"path"`
}

// Default returns the configuration matching ggtex.New without options.
func Default() *Config {
	return &Config{
		MaxDepth:      ggtex.DefaultMaxDepth,
		CacheCapacity: 0,
		Font: Font{
			Family: ggtex.DefaultFont.Family,
			Size:   ggtex.DefaultFont.Size,
			Unit:   ggtex.DefaultFont.Unit.String(),
		},
		Keywords: ggtex.DefaultKeywords(),
	}
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i := range c.Fonts {
		if p := c.Fonts[i].Path; !filepath.IsAbs(p) {
			c.Fonts[i].Path = filepath.Join(dir, p)
		}
	}
	return c, nil
}

// Parse decodes and validates TOML data. Keys missing from data keep
// their Default values; unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return nil, fmt.Errorf("%w: %s", ErrInvalid, sme.String())
		}
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth %d is negative", ErrInvalid, c.MaxDepth)
	}
	if c.CacheCapacity < 0 {
		return fmt.Errorf("%w: cache_capacity %d is negative", ErrInvalid, c.CacheCapacity)
	}
	if c.Font.Size < 0 || c.Font.Size >= ggtex.MaxFontSize {
		return fmt.Errorf("%w: font size %g out of range", ErrInvalid, c.Font.Size)
	}
	if _, ok := ggtex.ParseUnit(c.Font.Unit); !ok {
		return fmt.Errorf("%w: unknown font unit %q", ErrInvalid, c.Font.Unit)
	}
	for i, f := range c.Fonts {
		if f.Family == "" || f.Path == "" {
			return fmt.Errorf("%w: fonts[%d] needs family and path", ErrInvalid, i)
		}
		if _, ok := text.ParseStyle(f.Style); !ok {
			return fmt.Errorf("%w: fonts[%d]: unknown style %q", ErrInvalid, i, f.Style)
		}
	}
	return nil
}

// DefaultFont returns the configured default font.
func (c *Config) DefaultFont() ggtex.Font {
	var style ggtex.Style
	if c.Font.Bold {
		style |= ggtex.StyleBold
	}
	if c.Font.Italic {
		style |= ggtex.StyleItalic
	}
	unit, _ := ggtex.ParseUnit(c.Font.Unit)
	return ggtex.Font{
		Family: c.Font.Family,
		Size:   c.Font.Size,
		Style:  style,
		Unit:   unit,
	}
}

// Library returns the font library for the configuration: the shared
// text.DefaultLibrary when no extra fonts are listed, otherwise a new
// bundled library with the extra fonts registered.
func (c *Config) Library() (*text.Library, error) {
	if len(c.Fonts) == 0 {
		return text.DefaultLibrary(), nil
	}
	lib := text.NewBundledLibrary()
	for _, f := range c.Fonts {
		style, _ := text.ParseStyle(f.Style)
		if err := lib.RegisterFile(f.Family, style, f.Path); err != nil {
			return nil, fmt.Errorf("config: font %q: %w", f.Family, err)
		}
	}
	return lib, nil
}

// Options converts the configuration to interpreter options. Font files
// are loaded here.
func (c *Config) Options() ([]ggtex.Option, error) {
	lib, err := c.Library()
	if err != nil {
		return nil, err
	}
	return []ggtex.Option{
		ggtex.WithFont(c.DefaultFont()),
		ggtex.WithKeywords(c.Keywords),
		ggtex.WithMaxDepth(c.MaxDepth),
		ggtex.WithCacheCapacity(c.CacheCapacity),
		ggtex.WithLibrary(lib),
	}, nil
}

// New loads the file at path and creates an Interpreter from it.
// Extra options are applied after the file's.
func New(path string, opts ...ggtex.Option) (*ggtex.Interpreter, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	fileOpts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return ggtex.New(append(fileOpts, opts...)...), nil
}

// Write encodes c as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).SetIndentTables(true).Encode(c)
}
