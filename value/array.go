package value

import (
	"fmt"

	"github.com/Lakret/cells/layout"
)

type Array struct {
	Data [][]ScalarValue
}

func NewArray(data [][]ScalarValue) Array {
	return Array{
		Data: data,
	}
}

func (a Array) Type() string {
	dim := a.Dimension()
	return fmt.Sprintf("array(%d, %d)", dim.Lines, dim.Columns)
}

func (Array) Kind() ValueKind {
	return KindArray
}

func (Array) String() string {
	return ""
}

func (a Array) Dimension() layout.Dimension {
	var (
		d layout.Dimension
		n = len(a.Data)
	)
	if n > 0 {
		d.Lines = int64(n)
		d.Columns = int64(len(a.Data[0]))
	}
	return d
}

func (a Array) At(row, col int) ScalarValue {
	if len(a.Data) == 0 || row >= len(a.Data) {
		return nil
	}
	v := a.Data[row]
	if len(v) == 0 || col >= len(v) {
		return nil
	}
	return a.Data[row][col]
}

// Values yields the array cells left to right, top to bottom. Nil
// entries stand for empty cells and are yielded as Blank.
func (a Array) Values() []Value {
	var res []Value
	for i := range a.Data {
		for j := range a.Data[i] {
			v := a.Data[i][j]
			if v == nil {
				res = append(res, Blank{})
				continue
			}
			res = append(res, v)
		}
	}
	return res
}
