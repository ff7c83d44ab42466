package ggtex

import "strings"

// Keywords holds the names of the control sequences an Interpreter
// recognizes after the escape character. An empty field means "use the
// default name"; a control sequence can be renamed but not disabled.
type Keywords struct {
	Italic   string `toml:"italic"`
	Bold     string `toml:"bold"`
	Roman    string `toml:"roman"`
	Reset    string `toml:"reset"`
	Fontname string `toml:"fontname"`
	Fontsize string `toml:"fontsize"`
	Color    string `toml:"color"`
}

// DefaultKeywords returns the standard names: it, bf, rm, reset,
// fontname, fontsize and color.
func DefaultKeywords() Keywords {
	return Keywords{
		Italic:   "it",
		Bold:     "bf",
		Roman:    "rm",
		Reset:    "reset",
		Fontname: "fontname",
		Fontsize: "fontsize",
		Color:    "color",
	}
}

// merge returns k with empty fields taken from the defaults.
func (k Keywords) merge() Keywords {
	d := DefaultKeywords()
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return Keywords{
		Italic:   pick(k.Italic, d.Italic),
		Bold:     pick(k.Bold, d.Bold),
		Roman:    pick(k.Roman, d.Roman),
		Reset:    pick(k.Reset, d.Reset),
		Fontname: pick(k.Fontname, d.Fontname),
		Fontsize: pick(k.Fontsize, d.Fontsize),
		Color:    pick(k.Color, d.Color),
	}
}

// matchKeyword reports whether expr[pos:] starts with kw and returns the
// cursor past it.
func matchKeyword(expr string, pos int, kw string) (int, bool) {
	if kw == "" || !strings.HasPrefix(expr[pos:], kw) {
		return pos, false
	}
	return pos + len(kw), true
}

// matchArgument matches kw followed by a brace-delimited argument at
// expr[pos:]. The argument ends at the first closing brace (no nesting)
// and is returned trimmed; next points past the closing brace. On any
// mismatch the cursor is left at pos.
func matchArgument(expr string, pos int, kw string) (arg string, next int, ok bool) {
	start, ok := matchKeyword(expr, pos, kw)
	if !ok || start >= len(expr) || expr[start] != '{' {
		return "", pos, false
	}
	end := strings.IndexByte(expr[start+1:], '}')
	if end < 0 {
		return "", pos, false
	}
	end += start + 1
	return strings.TrimSpace(expr[start+1 : end]), end + 1, true
}
