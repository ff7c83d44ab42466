package ggtex

import (
	"strconv"

	"github.com/gogpu/ggtex/cache"
)

// Key identifies a rasterized run: the same font and text always yield an
// equal Key, so a renderer can use it as a stable bitmap identity.
type Key struct {
	Font Font
	Text string
}

// NewKey returns the key for text rendered with f.
func NewKey(f Font, text string) Key {
	return Key{Font: f, Text: text}
}

// String returns the textual identity of k, e.g. `Go 12px bold:"x"`.
func (k Key) String() string {
	return k.Font.String() + ":" + strconv.Quote(k.Text)
}

// Hash returns the FNV-1a hash of k's textual identity.
func (k Key) Hash() uint64 {
	return cache.StringHasher(k.String())
}
