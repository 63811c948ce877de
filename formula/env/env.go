package env

import (
	"fmt"
	"strings"

	"github.com/Lakret/cells/value"
)

// Environment maps names to values. Names are case insensitive:
// sum, SUM and Sum resolve to the same entry.
type Environment struct {
	parent *Environment
	values map[string]value.Value
}

func Empty() *Environment {
	return Enclosed(nil)
}

func Enclosed(parent *Environment) *Environment {
	return &Environment{
		parent: parent,
		values: make(map[string]value.Value),
	}
}

func (e *Environment) Define(name string, val value.Value) {
	e.values[strings.ToLower(name)] = val
}

func (e *Environment) Resolve(name string) (value.Value, error) {
	val, ok := e.values[strings.ToLower(name)]
	if ok {
		return val, nil
	}
	if e.parent != nil {
		return e.parent.Resolve(name)
	}
	return nil, fmt.Errorf("%s: undefined name", name)
}
