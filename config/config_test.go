package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/gogpu/ggtex"
	"github.com/gogpu/ggtex/text"
)

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, ggtex.DefaultFont, c.DefaultFont())
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
max_depth = 4
cache_capacity = 32

[font]
family = "Latin Modern Roman"
size = 14
italic = true
unit = "pt"

[keywords]
bold = "textbf"
`))
	require.NoError(t, err)

	assert.Equal(t, 4, c.MaxDepth)
	assert.Equal(t, 32, c.CacheCapacity)
	assert.Equal(t, ggtex.Font{
		Family: text.FamilyLatinModern,
		Size:   14,
		Style:  ggtex.StyleItalic,
		Unit:   ggtex.UnitPoint,
	}, c.DefaultFont())
	assert.Equal(t, "textbf", c.Keywords.Bold)
	assert.Equal(t, "it", c.Keywords.Italic)
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "colour = 1",
		"negative depth": "max_depth = -1",
		"size too large": "[font]\nsize = 40",
		"bad unit":       "[font]\nunit = \"em\"",
		"bad style":      "[[fonts]]\nfamily = \"X\"\nstyle = \"heavy\"\npath = \"x.ttf\"",
		"missing path":   "[[fonts]]\nfamily = \"X\"",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("max_depth = "))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func TestLoadWithFonts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "fonts", "mono.ttf"), gomono.TTF)
	cfg := filepath.Join(dir, "ggtex.toml")
	writeFile(t, cfg, []byte(`
[font]
family = "Test Mono"

[[fonts]]
family = "Test Mono"
path = "fonts/mono.ttf"
`))

	c, err := Load(cfg)
	require.NoError(t, err)
	require.Len(t, c.Fonts, 1)
	assert.Equal(t, filepath.Join(dir, "fonts", "mono.ttf"), c.Fonts[0].Path)

	lib, err := c.Library()
	require.NoError(t, err)
	assert.True(t, lib.Has("test mono"))
	assert.True(t, lib.Has(text.FamilyGo))
	assert.NotSame(t, text.DefaultLibrary(), lib)

	in, err := New(cfg)
	require.NoError(t, err)
	l, err := in.Parse("iW")
	require.NoError(t, err)
	require.Len(t, l.Items, 2)
	assert.Equal(t, "Test Mono", l.Items[0].Key.Font.Family)

	// Monospaced: both runs have the same width.
	gi, ok := in.Glyphs().Glyph(l.Items[0].Key)
	require.True(t, ok)
	gw, ok := in.Glyphs().Glyph(l.Items[1].Key)
	require.True(t, ok)
	assert.Equal(t, gi.Size.Width, gw.Size.Width)
}

func TestLoadMissingFontFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "ggtex.toml")
	writeFile(t, cfg, []byte("[[fonts]]\nfamily = \"Gone\"\npath = \"gone.ttf\"\n"))

	c, err := Load(cfg)
	require.NoError(t, err)
	_, err = c.Options()
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = New(cfg)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptionsWithoutFonts(t *testing.T) {
	c := Default()
	lib, err := c.Library()
	require.NoError(t, err)
	assert.Same(t, text.DefaultLibrary(), lib)

	opts, err := c.Options()
	require.NoError(t, err)
	in := ggtex.New(opts...)
	assert.Equal(t, ggtex.DefaultFont, in.Font())
	assert.Equal(t, ggtex.DefaultKeywords(), in.Keywords())
}

func TestWriteRoundTrip(t *testing.T) {
	c := Default()
	c.MaxDepth = 3
	c.Font.Bold = true
	c.Keywords.Color = "textcolor"
	c.Fonts = []FontFile{{Family: "X", Style: "italic", Path: "/fonts/x.ttf"}}

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))

	got, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, c, got)
}
