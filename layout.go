package ggtex

// layout accumulates the bounding size of a label while it is parsed.
// Recursive sub-parses add to the same line as their parent.
type layout struct {
	lineWidth  int // width of the current line
	lineHeight int // tallest item on the current line
	height     int // height of all finished lines
	maxWidth   int // widest finished line
}

// add places an item of size s on the current line.
func (l *layout) add(s Size) {
	l.lineWidth += s.Width
	l.lineHeight = max(l.lineHeight, s.Height)
}

// carriageReturn returns to the start of the current line.
func (l *layout) carriageReturn() {
	l.maxWidth = max(l.maxWidth, l.lineWidth)
	l.lineWidth = 0
}

// newline finishes the current line and starts a new one below it.
func (l *layout) newline() {
	l.carriageReturn()
	l.height += l.lineHeight
	l.lineHeight = 0
}

// bounds returns the size of everything added so far.
func (l *layout) bounds() Size {
	return Size{
		Width:  max(l.maxWidth, l.lineWidth),
		Height: l.height + l.lineHeight,
	}
}
