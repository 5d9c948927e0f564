// Package words provides word-stream reading and writing utilities for the
// SPIR-V binary codec. SPIR-V binaries are streams of 32-bit words; literal
// strings are UTF-8 bytes packed four per word, first character in the
// lowest-order byte, terminated by a NUL inside the stream.
package words

import (
	"encoding/binary"
	"errors"
	"unicode/utf8"
)

// Errors returned by the Reader.
var (
	ErrUnexpectedEnd       = errors.New("unexpected end of word stream")
	ErrUnterminatedString  = errors.New("literal string missing NUL terminator")
	ErrInvalidUTF8         = errors.New("invalid UTF-8 in literal string")
	ErrStringPadding       = errors.New("nonzero padding after string terminator")
	ErrUnalignedByteStream = errors.New("byte length is not a multiple of the word size")
)

// FromBytes reinterprets a byte stream as 32-bit words in the given order.
func FromBytes(data []byte, order binary.ByteOrder) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, ErrUnalignedByteStream
	}
	out := make([]uint32, len(data)/4)
	for i := range out {
		out[i] = order.Uint32(data[i*4:])
	}
	return out, nil
}

// ToBytes serializes words as a byte stream in the given order.
func ToBytes(ws []uint32, order binary.ByteOrder) []byte {
	out := make([]byte, len(ws)*4)
	for i, w := range ws {
		order.PutUint32(out[i*4:], w)
	}
	return out
}

// Reader walks a word stream with position tracking.
type Reader struct {
	words []uint32
	pos   int
}

// NewReader creates a Reader over the given words.
func NewReader(ws []uint32) *Reader {
	return &Reader{words: ws}
}

// Position returns the current word offset.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread words.
func (r *Reader) Remaining() int {
	return len(r.words) - r.pos
}

// Word reads a single word and advances the position.
func (r *Reader) Word() (uint32, error) {
	if r.pos >= len(r.words) {
		return 0, ErrUnexpectedEnd
	}
	w := r.words[r.pos]
	r.pos++
	return w, nil
}

// Words reads exactly n words.
func (r *Reader) Words(n int) ([]uint32, error) {
	if n < 0 || r.pos+n > len(r.words) {
		return nil, ErrUnexpectedEnd
	}
	ws := r.words[r.pos : r.pos+n]
	r.pos += n
	return ws, nil
}

// String reads a NUL-terminated packed UTF-8 string, consuming whole words
// including the padding after the terminator. Padding bytes must be zero,
// otherwise re-encoding would silently drop them.
func (r *Reader) String() (string, error) {
	var buf []byte
	for {
		w, err := r.Word()
		if err != nil {
			return "", ErrUnterminatedString
		}
		for shift := 0; shift < 32; shift += 8 {
			b := byte(w >> shift)
			if b == 0 {
				if w>>(shift+8) != 0 {
					return "", ErrStringPadding
				}
				if !utf8.Valid(buf) {
					return "", ErrInvalidUTF8
				}
				return string(buf), nil
			}
			buf = append(buf, b)
		}
	}
}
