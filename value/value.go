package value

import (
	"fmt"

	"github.com/Lakret/cells/layout"
)

type ValueKind int8

const (
	KindScalar ValueKind = 1 << iota
	KindError
	KindArray
	KindFunction
)

type Value interface {
	Kind() ValueKind
	fmt.Stringer
}

type ScalarValue interface {
	Value
	Scalar() any
}

type ArrayValue interface {
	Value
	Dimension() layout.Dimension
	At(int, int) ScalarValue
}

type FunctionValue interface {
	Value
	Call(args []Value) (Value, error)
}

// Context is the evaluator's only window on the workbook: named
// functions, single cell lookup and rectangular range lookup.
type Context interface {
	Resolve(name string) (Value, error)
	At(pos layout.Position) (Value, error)
	Range(start, end layout.Position) (Value, error)
}

func IsError(v Value) bool {
	return v != nil && v.Kind() == KindError
}

func IsNumber(v Value) bool {
	_, ok := v.(Float)
	return ok
}

func IsBlank(v Value) bool {
	_, ok := v.(Blank)
	return ok || v == nil
}

func IsScalar(v Value) bool {
	return v != nil && v.Kind() == KindScalar
}
