package words

// Writer accumulates a word stream.
type Writer struct {
	buf []uint32
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Words returns the written words.
func (w *Writer) Words() []uint32 {
	return w.buf
}

// Len returns the number of words written.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Word writes a single word.
func (w *Writer) Word(v uint32) {
	w.buf = append(w.buf, v)
}

// WriteWords writes a word slice.
func (w *Writer) WriteWords(ws []uint32) {
	w.buf = append(w.buf, ws...)
}

// WriteString writes a packed UTF-8 string with its NUL terminator, padded
// with NUL bytes to the word boundary.
func (w *Writer) WriteString(s string) {
	var word uint32
	shift := 0
	for i := 0; i < len(s); i++ {
		word |= uint32(s[i]) << shift
		shift += 8
		if shift == 32 {
			w.buf = append(w.buf, word)
			word, shift = 0, 0
		}
	}
	// The terminator lands in the current word; a full word means the
	// terminator needs a word of its own.
	w.buf = append(w.buf, word)
}

// StringWordCount returns the number of words WriteString will emit for s.
func StringWordCount(s string) int {
	return len(s)/4 + 1
}
