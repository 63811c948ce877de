package layout

import (
	"fmt"
	"iter"
	"strings"
)

type Dimension struct {
	Lines   int64
	Columns int64
}

func (d Dimension) Max(other Dimension) Dimension {
	if other.Lines > d.Lines {
		d.Lines = other.Lines
	}
	if other.Columns > d.Columns {
		d.Columns = other.Columns
	}
	return d
}

type Range struct {
	Starts Position
	Ends   Position
}

func NewRange(starts, ends Position) Range {
	return Range{
		Starts: starts,
		Ends:   ends,
	}
}

func RangeFromString(str string) Range {
	fst, lst, ok := strings.Cut(str, ":")
	starts := ParsePosition(fst)
	ends := starts
	if ok {
		ends = ParsePosition(lst)
	}
	return NewRange(starts, ends)
}

func (r Range) Contains(pos Position) bool {
	ok := pos.Line >= r.Starts.Line && pos.Line <= r.Ends.Line
	if !ok {
		return false
	}
	return pos.Column >= r.Starts.Column && pos.Column <= r.Ends.Column
}

func (r Range) Width() int64 {
	return r.Ends.Column - r.Starts.Column + 1
}

func (r Range) Height() int64 {
	return r.Ends.Line - r.Starts.Line + 1
}

func (r Range) String() string {
	if r.Starts.Equal(r.Ends) {
		return r.Starts.Addr()
	}
	return fmt.Sprintf("%s:%s", r.Starts.Addr(), r.Ends.Addr())
}

// Normalize reorders the corners so that Starts is the top-left
// one. Cells and Contains expect a normalized range.
func (r Range) Normalize() Range {
	x := NewRange(r.Starts, r.Ends)
	x.Starts.Line = min(r.Starts.Line, r.Ends.Line)
	x.Starts.Column = min(r.Starts.Column, r.Ends.Column)
	x.Ends.Line = max(r.Starts.Line, r.Ends.Line)
	x.Ends.Column = max(r.Starts.Column, r.Ends.Column)
	return x
}

// Cells yields every position of the rectangle in row-major order.
func (r Range) Cells() iter.Seq[Position] {
	it := func(yield func(Position) bool) {
		for line := r.Starts.Line; line <= r.Ends.Line; line++ {
			for col := r.Starts.Column; col <= r.Ends.Column; col++ {
				pos := Position{
					Line:   line,
					Column: col,
				}
				if !yield(pos) {
					return
				}
			}
		}
	}
	return it
}
