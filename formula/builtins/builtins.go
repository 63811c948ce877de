package builtins

import (
	"errors"

	"github.com/Lakret/cells/formula/env"
	"github.com/Lakret/cells/value"
)

var ErrArity = errors.New("wrong number of arguments")

var registry = map[string]value.Func{
	"sum":     runSum,
	"avg":     runAvg,
	"average": runAvg,
	"min":     runMin,
	"max":     runMax,
	"count":   runCount,
	"typeof":  runTypeof,
}

// Environment returns a fresh environment with every builtin
// function defined.
func Environment() *env.Environment {
	e := env.Empty()
	for name, fn := range registry {
		e.Define(name, value.NewFunction(name, fn))
	}
	return e
}

// spread flattens array arguments to their member cells. An error
// value inside an array aborts the call and propagates.
func spread(args []value.Value) ([]value.Value, error) {
	var res []value.Value
	for _, a := range args {
		arr, ok := a.(value.Array)
		if !ok {
			res = append(res, a)
			continue
		}
		for _, v := range arr.Values() {
			if e, ok := v.(value.Error); ok {
				return nil, e
			}
			res = append(res, v)
		}
	}
	return res, nil
}

// numbers gives the numeric reading of every non blank argument,
// arrays included. Text makes the whole call fail with #VALUE!.
func numbers(args []value.Value) ([]value.Float, error) {
	args, err := spread(args)
	if err != nil {
		return nil, err
	}
	var res []value.Float
	for _, a := range args {
		if value.IsBlank(a) {
			continue
		}
		x, err := value.CastToFloat(a)
		if err != nil {
			return nil, value.ErrValue
		}
		res = append(res, x)
	}
	return res, nil
}
