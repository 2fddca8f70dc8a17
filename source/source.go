// Package source implements the double-buffered character source
// described in spec §4.1: a fixed-size two-buffer sliding view over an
// input file, with a begin/forward cursor pair and bounded retraction.
//
// It is the leaf of the pipeline: the scanner is the only client and
// drives it one byte at a time, exactly as db47h/lex's lexer.State.Next
// drives its own single sliding buffer — the difference here is that the
// spec calls for two fixed buffers with an explicit swap on exhaustion
// rather than one buffer that slides its contents down, so that a lexeme
// may straddle exactly one buffer boundary without ever being copied.
package source

import (
	"fmt"
	"io"

	"github.com/apoorva106/compiler-project/token"
)

// EOF is returned by NextChar once the input is exhausted. It is returned
// forever after the first occurrence.
const EOF = -1

// DefaultBufSize is the size (in bytes) of each of the two buffers, B in
// spec §4.1.
const DefaultBufSize = 4096

// Source is a double-buffered byte source over an io.Reader.
type Source struct {
	r    io.Reader
	file *token.File

	buf     []byte // 2*bufSize bytes: two adjacent fixed-size buffers
	bufSize int

	loaded [2]int // loaded[h] = global offset of buf index h*bufSize
	dataEnd [2]int // dataEnd[h] = index one past the last valid byte loaded into half h
	eofAt   int    // buffer index of the true EOF sentinel position, or -1 if not yet known
	total   int    // total bytes read from r so far

	begin   int // index into buf
	forward int // index into buf

	line    int // current 1-based line number, decremented on retract across '\n'
	maxLine int // highest line number ever registered with file.AddLine
}

// New creates a Source reading from r, using the default buffer size, and
// registers file as the destination for line-offset bookkeeping (see
// token.File.AddLine). file must be freshly constructed (no lines added).
func New(r io.Reader, file *token.File) *Source {
	return NewSize(r, file, DefaultBufSize)
}

// NewSize is New with an explicit buffer size B (bytes per half).
func NewSize(r io.Reader, file *token.File, bufSize int) *Source {
	if bufSize < 1 {
		panic("source: bufSize must be positive")
	}
	s := &Source{
		r:       r,
		file:    file,
		buf:     make([]byte, 2*bufSize),
		bufSize: bufSize,
		eofAt:   -1,
		line:    1,
		maxLine: 0,
	}
	file.AddLine(0, 1)
	s.maxLine = 1
	s.loadHalf(0)
	return s
}

// loadHalf (re)fills buffer half h (0 or 1) from the underlying reader. A
// short read that is not EOF is retried; a non-EOF read error is fatal,
// per spec §4.1 ("file read errors are fatal"). dataEnd[h] marks the
// index one past the last byte actually loaded — this is the logical
// sentinel position described in §4.1, represented here by position
// rather than by a reserved byte value so that a genuine NUL byte in the
// input is never confused with end-of-buffer.
func (s *Source) loadHalf(h int) {
	s.loaded[h] = s.total
	base := h * s.bufSize
	n := 0
	for n < s.bufSize-1 {
		m, err := s.r.Read(s.buf[base+n : base+s.bufSize-1])
		n += m
		if err != nil {
			if err == io.EOF {
				break
			}
			panic(fmt.Errorf("source: read error: %w", err))
		}
		if m == 0 {
			// Reader returned (0, nil): treat as EOF per io.Reader contract
			// ambiguity, matching the teacher's ioErr handling.
			break
		}
	}
	s.dataEnd[h] = base + n
	s.total += n
	if n < s.bufSize-1 && s.eofAt < 0 {
		// This half ends in true EOF.
		s.eofAt = base + n
	}
}

// halfOf returns which buffer half index idx falls in.
func (s *Source) halfOf(idx int) int {
	return idx / s.bufSize
}

// pos converts a raw buffer index to a global (file-wide) byte offset.
func (s *Source) pos(idx int) token.Pos {
	h := s.halfOf(idx)
	return token.Pos(s.loaded[h] + idx%s.bufSize)
}

// NextChar returns the next byte in the input, or EOF once the input is
// exhausted (repeatedly, on every subsequent call).
func (s *Source) NextChar() int {
	for {
		h := s.halfOf(s.forward)
		if s.forward == s.dataEnd[h] {
			if s.forward == s.eofAt {
				return EOF
			}
			// Exhausted this half; swap to the other one.
			other := 1 - h
			s.loadHalf(other)
			s.forward = other * s.bufSize
			continue
		}
		b := s.buf[s.forward]
		s.forward++
		if b == '\n' {
			s.line++
			if s.line > s.maxLine {
				s.file.AddLine(s.pos(s.forward), s.line)
				s.maxLine = s.line
			}
		}
		return int(b)
	}
}

// Retract moves forward back by k bytes (1 <= k <= bufSize). Crossing a
// newline backwards decrements the line count, matching NextChar's
// forward bookkeeping (spec §4.1, §9: "the character source must
// correctly reverse line-count bookkeeping when retracting across a
// newline").
func (s *Source) Retract(k int) {
	for i := 0; i < k; i++ {
		s.forward--
		if s.buf[s.forward] == '\n' {
			s.line--
		}
	}
}

// Lexeme returns the bytes from begin (inclusive) to forward (exclusive).
// The returned slice aliases the internal buffer and is only valid until
// the next call that advances begin past it (i.e. until Commit); callers
// that need to retain it must copy, which token.Token.Lexeme does by
// converting to string.
func (s *Source) Lexeme() []byte {
	return s.buf[s.begin:s.forward]
}

// Commit sets begin := forward, discarding the current lexeme.
func (s *Source) Commit() {
	s.begin = s.forward
}

// Line returns the current 1-based line count: one plus the number of
// newline bytes consumed so far. After NextChar returns any byte other
// than '\n' this is that byte's line; after it returns '\n' it is
// already the following line.
func (s *Source) Line() int {
	return s.line
}

// TokenStartPos returns the global byte offset of begin, for diagnostics.
func (s *Source) TokenStartPos() token.Pos {
	return s.pos(s.begin)
}
