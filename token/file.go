package token

import (
	"errors"
	"fmt"
)

// ErrLine is the value AddLine panics with when a line is registered out
// of order.
var ErrLine = errors.New("invalid line number")

// Pos is a byte offset from the start of a File.
type Pos int

// IsValid reports whether p is a valid position (i.e. p >= 0).
func (p Pos) IsValid() bool {
	return p >= 0
}

// Position describes a 1-based line and column within a named source.
type Position struct {
	Filename string
	Line     int // 1-based
	Column   int // 1-based, byte offset within the line
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A File tracks the byte offset at which each source line begins, so that
// a Pos produced while scanning can later be converted back to a 1-based
// line/column pair for diagnostics. It does not itself hold source bytes:
// those live in the source.Source that scanned the file (see §4.1 and the
// diag package for rendering).
type File struct {
	name  string
	lines []Pos // lines[i] is the byte offset where line i+1 (1-based) starts
}

// NewFile returns a new, empty File named name. The caller (normally
// source.New) must register line 1 with AddLine(0, 1) before any Pos
// lookups are performed.
func NewFile(name string) *File {
	return &File{name: name}
}

// Name returns the file name.
func (f *File) Name() string {
	return f.name
}

// AddLine records that line begins at byte offset pos.
//
// line is the 1-based line index. AddLine panics if pos does not strictly
// follow the previously recorded line's offset, or if line is not the
// previous line number plus one — both indicate a caller bug, not a
// reportable source error.
func (f *File) AddLine(pos Pos, line int) {
	l := len(f.lines)
	if (l > 0 && f.lines[l-1] >= pos) || l+1 != line {
		panic(ErrLine)
	}
	f.lines = append(f.lines, pos)
}

// Position returns the 1-based line and column for pos.
func (f *File) Position(pos Pos) Position {
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	return Position{f.name, i, int(pos-f.lines[i-1]) + 1}
}

// LinePos returns the byte offset at which the given 1-based line starts,
// or -1 if line is out of range.
func (f *File) LinePos(line int) Pos {
	if line < 1 || line > len(f.lines) {
		return -1
	}
	return f.lines[line-1]
}
