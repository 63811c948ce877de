package book

import (
	"github.com/Lakret/cells/layout"
	"github.com/Lakret/cells/value"
)

// bookContext is the window the evaluator gets on the book: cached
// values only, never raw text nor expressions.
type bookContext struct {
	book *Book
}

func (b *Book) context() value.Context {
	return bookContext{
		book: b,
	}
}

func (c bookContext) Resolve(name string) (value.Value, error) {
	return c.book.env.Resolve(name)
}

func (c bookContext) At(pos layout.Position) (value.Value, error) {
	return c.book.Value(pos), nil
}

func (c bookContext) Range(start, end layout.Position) (value.Value, error) {
	var data [][]value.ScalarValue
	for line := start.Line; line <= end.Line; line++ {
		var row []value.ScalarValue
		for col := start.Column; col <= end.Column; col++ {
			pos := layout.Position{
				Line:   line,
				Column: col,
			}
			sv, ok := c.book.Value(pos).(value.ScalarValue)
			if !ok {
				sv = value.Empty()
			}
			row = append(row, sv)
		}
		data = append(data, row)
	}
	return value.NewArray(data), nil
}
