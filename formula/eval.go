package formula

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Lakret/cells/value"
)

// Eval computes the value of an expression against a context. Domain
// failures (bad operands, division by zero, unknown names) come back
// as error values with a nil error; a non-nil error means the
// expression itself is broken.
func Eval(expr Expr, ctx value.Context) (value.Value, error) {
	return eval(expr, ctx)
}

func eval(expr Expr, ctx value.Context) (value.Value, error) {
	switch e := expr.(type) {
	case number:
		return value.Float(e.value), nil
	case literal:
		return value.Text(e.value), nil
	case boolean:
		return value.Boolean(e.value), nil
	case cellAddr:
		return evalCell(e, ctx)
	case rangeAddr:
		return evalRange(e, ctx)
	case identifier:
		return value.ErrName, nil
	case unary:
		return evalUnary(e, ctx)
	case binary:
		return evalBinary(e, ctx)
	case call:
		return evalCall(e, ctx)
	default:
		return nil, fmt.Errorf("unsupported expression type %T", expr)
	}
}

func evalCell(e cellAddr, ctx value.Context) (value.Value, error) {
	val, err := ctx.At(e.Position)
	if err != nil {
		return value.ErrRef, nil
	}
	if val == nil {
		return value.Empty(), nil
	}
	return val, nil
}

func evalRange(e rangeAddr, ctx value.Context) (value.Value, error) {
	rg := e.bounds()
	val, err := ctx.Range(rg.Starts, rg.Ends)
	if err != nil {
		return value.ErrRef, nil
	}
	return val, nil
}

func evalUnary(e unary, ctx value.Context) (value.Value, error) {
	val, err := eval(e.right, ctx)
	if err != nil {
		return nil, err
	}
	if value.IsError(val) {
		return val, nil
	}
	x, err := value.CastToFloat(val)
	if err != nil {
		return value.ErrValue, nil
	}
	if e.op == Sub {
		x = -x
	}
	return x, nil
}

func evalBinary(e binary, ctx value.Context) (value.Value, error) {
	left, err := eval(e.left, ctx)
	if err != nil {
		return nil, err
	}
	if value.IsError(left) {
		return left, nil
	}
	right, err := eval(e.right, ctx)
	if err != nil {
		return nil, err
	}
	if value.IsError(right) {
		return right, nil
	}
	if left.Kind() == value.KindArray || right.Kind() == value.KindArray {
		return value.ErrValue, nil
	}
	switch e.op {
	case Add, Sub, Mul, Div, Pow:
		return doMath(e.op, left, right)
	case Concat:
		return doConcat(left, right)
	case Eq, Ne, Lt, Le, Gt, Ge:
		return doCompare(e.op, left, right)
	default:
		return nil, fmt.Errorf("unsupported operator %s", symbol(e.op))
	}
}

func evalCall(e call, ctx value.Context) (value.Value, error) {
	fn, err := ctx.Resolve(strings.ToLower(e.ident.name))
	if err != nil {
		return value.ErrName, nil
	}
	callable, ok := fn.(value.FunctionValue)
	if !ok {
		return value.ErrName, nil
	}
	args := make([]value.Value, 0, len(e.args))
	for i := range e.args {
		arg, err := eval(e.args[i], ctx)
		if err != nil {
			return nil, err
		}
		if value.IsError(arg) {
			return arg, nil
		}
		args = append(args, arg)
	}
	res, err := callable.Call(args)
	if err != nil {
		var ev value.Error
		if errors.As(err, &ev) {
			return ev, nil
		}
		return value.ErrValue, nil
	}
	return res, nil
}

func doMath(op rune, left, right value.Value) (value.Value, error) {
	x, err := value.CastToFloat(left)
	if err != nil {
		return value.ErrValue, nil
	}
	y, err := value.CastToFloat(right)
	if err != nil {
		return value.ErrValue, nil
	}
	switch op {
	case Add:
		return x + y, nil
	case Sub:
		return x - y, nil
	case Mul:
		return x * y, nil
	case Div:
		if y == 0 {
			return value.ErrDiv0, nil
		}
		return x / y, nil
	case Pow:
		res := math.Pow(float64(x), float64(y))
		if math.IsNaN(res) || math.IsInf(res, 0) {
			return value.ErrNum, nil
		}
		return value.Float(res), nil
	default:
		return nil, fmt.Errorf("unsupported operator %s", symbol(op))
	}
}

func doConcat(left, right value.Value) (value.Value, error) {
	x, err := value.CastToText(left)
	if err != nil {
		return value.ErrValue, nil
	}
	y, err := value.CastToText(right)
	if err != nil {
		return value.ErrValue, nil
	}
	return x + y, nil
}

func doCompare(op rune, left, right value.Value) (value.Value, error) {
	cmp, ok := left.(value.Comparable)
	if !ok {
		return value.ErrValue, nil
	}
	switch op {
	case Eq, Ne:
		eq, err := cmp.Equal(right)
		if err != nil {
			return value.ErrValue, nil
		}
		if op == Ne {
			eq = !eq
		}
		return value.Boolean(eq), nil
	case Lt, Ge:
		less, err := cmp.Less(right)
		if err != nil {
			return value.ErrValue, nil
		}
		if op == Ge {
			less = !less
		}
		return value.Boolean(less), nil
	case Gt, Le:
		less, err := cmp.Less(right)
		if err != nil {
			return value.ErrValue, nil
		}
		eq, err := cmp.Equal(right)
		if err != nil {
			return value.ErrValue, nil
		}
		res := less || eq
		if op == Gt {
			res = !res
		}
		return value.Boolean(res), nil
	default:
		return nil, fmt.Errorf("unsupported operator %s", symbol(op))
	}
}
