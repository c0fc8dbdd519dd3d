package app

// Buffer is the shared single-line input used while adding or editing a
// task. The cursor counts runes and stays within [0, len].
type Buffer struct {
	text   []rune
	cursor int
}

func (b *Buffer) String() string {
	return string(b.text)
}

// Cursor returns the cursor offset in runes.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Empty reports whether the buffer holds no text.
func (b *Buffer) Empty() bool {
	return len(b.text) == 0
}

// Reset clears the text and moves the cursor to 0.
func (b *Buffer) Reset() {
	b.text = b.text[:0]
	b.cursor = 0
}

// Set replaces the text and puts the cursor at the end.
func (b *Buffer) Set(s string) {
	b.text = []rune(s)
	b.cursor = len(b.text)
}

// Insert puts r at the cursor and advances the cursor.
func (b *Buffer) Insert(r rune) {
	b.text = append(b.text, 0)
	copy(b.text[b.cursor+1:], b.text[b.cursor:])
	b.text[b.cursor] = r
	b.cursor++
}

// Backspace removes the rune before the cursor.
func (b *Buffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.cursor--
	b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
}
