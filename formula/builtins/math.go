package builtins

import (
	"github.com/Lakret/cells/value"
)

func runSum(args []value.Value) (value.Value, error) {
	list, err := numbers(args)
	if err != nil {
		return nil, err
	}
	var total value.Float
	for _, x := range list {
		total += x
	}
	return total, nil
}

func runAvg(args []value.Value) (value.Value, error) {
	list, err := numbers(args)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, value.ErrDiv0
	}
	var total value.Float
	for _, x := range list {
		total += x
	}
	return total / value.Float(len(list)), nil
}

func runMin(args []value.Value) (value.Value, error) {
	list, err := numbers(args)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return value.Float(0), nil
	}
	res := list[0]
	for _, x := range list[1:] {
		if x < res {
			res = x
		}
	}
	return res, nil
}

func runMax(args []value.Value) (value.Value, error) {
	list, err := numbers(args)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return value.Float(0), nil
	}
	res := list[0]
	for _, x := range list[1:] {
		if x > res {
			res = x
		}
	}
	return res, nil
}

// runCount counts the numeric values among the arguments; blanks and
// text do not count.
func runCount(args []value.Value) (value.Value, error) {
	args, err := spread(args)
	if err != nil {
		return nil, err
	}
	var count int
	for _, a := range args {
		if value.IsNumber(a) {
			count++
		}
	}
	return value.Float(count), nil
}

func runTypeof(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, ErrArity
	}
	t, ok := args[0].(interface{ Type() string })
	if !ok {
		return value.Text("unknown"), nil
	}
	return value.Text(t.Type()), nil
}
