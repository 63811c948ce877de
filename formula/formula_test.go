package formula

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Lakret/cells/layout"
	"github.com/Lakret/cells/value"
)

func TestParseFormula(t *testing.T) {
	tests := []struct {
		Input string
		Want  string
	}{
		{
			Input: "=2+3*4",
			Want:  "binary(number(2), binary(number(3), number(4), *), +)",
		},
		{
			Input: "=(2+3)*4",
			Want:  "binary(binary(number(2), number(3), +), number(4), *)",
		},
		{
			Input: "=2^3^2",
			Want:  "binary(number(2), binary(number(3), number(2), ^), ^)",
		},
		{
			Input: "=-2^2",
			Want:  "unary(binary(number(2), number(2), ^), -)",
		},
		{
			Input: "=A1+$B$2",
			Want:  "binary(cell(A1), cell($B$2), +)",
		},
		{
			Input: "=sum(A1:B2, 10)",
			Want:  "call(sum, [range(A1, B2), number(10)])",
		},
		{
			Input: "=A1<>\"done\"",
			Want:  "binary(cell(A1), literal(done), <>)",
		},
		{
			Input: "=true",
			Want:  "boolean(true)",
		},
		{
			Input: "=count()",
			Want:  "call(count, [])",
		},
	}
	for _, c := range tests {
		expr, err := ParseFormula(c.Input)
		if err != nil {
			t.Errorf("%s: parse error! %s", c.Input, err)
			continue
		}
		got := DumpExpr(expr)
		if got != c.Want {
			t.Errorf("%s: tree mismatch! want %s, got %s", c.Input, c.Want, got)
		}
	}
}

func TestParseFormulaErrors(t *testing.T) {
	tests := []struct {
		Input string
		Lex   bool
	}{
		{Input: "=1A", Lex: true},
		{Input: "=\"open", Lex: true},
		{Input: "=A1 @ B1", Lex: true},
		{Input: "=1\xff+2", Lex: true},
		{Input: "=sum(1,)"},
		{Input: "=A1+"},
		{Input: "=(1+2"},
		{Input: "=foo"},
		{Input: "=A1:B2"},
		{Input: "=A1:B2+1"},
		{Input: "=-A1:B2"},
		{Input: "=A1(2)"},
		{Input: "=1 2"},
	}
	for _, c := range tests {
		_, err := ParseFormula(c.Input)
		if err == nil {
			t.Errorf("%s: parsing should have failed", c.Input)
			continue
		}
		var lex LexError
		if got := errors.As(err, &lex); got != c.Lex {
			t.Errorf("%s: error type mismatch! got %s", c.Input, err)
		}
	}
}

func TestCloneWithOffset(t *testing.T) {
	tests := []struct {
		Input  string
		Offset layout.Position
		Want   string
	}{
		{
			Input:  "=A1+1",
			Offset: layout.Position{Line: 1, Column: 1},
			Want:   "(B2 + 1)",
		},
		{
			Input:  "=$A$1+C$3",
			Offset: layout.Position{Line: 2, Column: 1},
			Want:   "($A$1 + D$3)",
		},
		{
			Input:  "=sum(A1:A3)",
			Offset: layout.Position{Line: 0, Column: 2},
			Want:   "sum(C1:C3)",
		},
	}
	for _, c := range tests {
		expr, err := ParseFormula(c.Input)
		if err != nil {
			t.Errorf("%s: parse error! %s", c.Input, err)
			continue
		}
		got := expr.CloneWithOffset(c.Offset).String()
		if got != c.Want {
			t.Errorf("%s: clone mismatch! want %s, got %s", c.Input, c.Want, got)
		}
	}
}

func TestReferences(t *testing.T) {
	tests := []struct {
		Input string
		Want  []string
	}{
		{
			Input: "=A1+A1+B1",
			Want:  []string{"A1", "B1"},
		},
		{
			Input: "=sum(B2:A1)",
			Want:  []string{"A1", "B1", "A2", "B2"},
		},
		{
			Input: "=1+2",
			Want:  nil,
		},
	}
	for _, c := range tests {
		expr, err := ParseFormula(c.Input)
		if err != nil {
			t.Errorf("%s: parse error! %s", c.Input, err)
			continue
		}
		refs := References(expr)
		if len(refs) != len(c.Want) {
			t.Errorf("%s: references mismatch! want %v, got %v", c.Input, c.Want, refs)
			continue
		}
		for i := range refs {
			if refs[i].Addr() != c.Want[i] {
				t.Errorf("%s: reference %d mismatch! want %s, got %s", c.Input, i, c.Want[i], refs[i])
			}
		}
	}
}

type fakeContext struct {
	cells map[string]value.Value
}

func (c fakeContext) Resolve(name string) (value.Value, error) {
	if name != "sum" {
		return nil, fmt.Errorf("%s: undefined function", name)
	}
	return value.NewFunction(name, sumAll), nil
}

func (c fakeContext) At(pos layout.Position) (value.Value, error) {
	val, ok := c.cells[pos.Addr()]
	if !ok {
		return value.Empty(), nil
	}
	return val, nil
}

func (c fakeContext) Range(start, end layout.Position) (value.Value, error) {
	var data [][]value.ScalarValue
	for line := start.Line; line <= end.Line; line++ {
		var row []value.ScalarValue
		for col := start.Column; col <= end.Column; col++ {
			pos := layout.Position{Line: line, Column: col}
			val, _ := c.At(pos)
			sv, ok := val.(value.ScalarValue)
			if !ok {
				sv = value.Empty()
			}
			row = append(row, sv)
		}
		data = append(data, row)
	}
	return value.NewArray(data), nil
}

func sumAll(args []value.Value) (value.Value, error) {
	var total value.Float
	for _, a := range args {
		if arr, ok := a.(value.Array); ok {
			for _, v := range arr.Values() {
				x, err := value.CastToFloat(v)
				if err != nil {
					continue
				}
				total += x
			}
			continue
		}
		x, err := value.CastToFloat(a)
		if err != nil {
			return nil, err
		}
		total += x
	}
	return total, nil
}

func TestEval(t *testing.T) {
	ctx := fakeContext{
		cells: map[string]value.Value{
			"A1": value.Float(1),
			"A2": value.Float(2),
			"B1": value.Text("note"),
			"C1": value.ErrDiv0,
		},
	}
	tests := []struct {
		Input string
		Want  string
	}{
		{Input: "=2+3*4", Want: "14"},
		{Input: "=2^3^2", Want: "512"},
		{Input: "=-2^2", Want: "-4"},
		{Input: "=(2+3)*4", Want: "20"},
		{Input: "=10/4", Want: "2.5"},
		{Input: "=1/0", Want: "#DIV/0!"},
		{Input: "=0^-1", Want: "#NUM!"},
		{Input: "=A1+A2", Want: "3"},
		{Input: "=A1+Z99", Want: "1"},
		{Input: "=B1+1", Want: "#VALUE!"},
		{Input: "=C1+1", Want: "#DIV/0!"},
		{Input: "=B1&\"!\"", Want: "note!"},
		{Input: "=\"n=\"&A2", Want: "n=2"},
		{Input: "=A1<A2", Want: "true"},
		{Input: "=A1>=A2", Want: "false"},
		{Input: "=A1<>A2", Want: "true"},
		{Input: "=A1<B1", Want: "#VALUE!"},
		{Input: "=sum(A1:A3)", Want: "3"},
		{Input: "=sum(A1, A2, 7)", Want: "10"},
		{Input: "=nope(1)", Want: "#NAME?"},
		{Input: "=true+1", Want: "2"},
	}
	for _, c := range tests {
		expr, err := ParseFormula(c.Input)
		if err != nil {
			t.Errorf("%s: parse error! %s", c.Input, err)
			continue
		}
		got, err := Eval(expr, ctx)
		if err != nil {
			t.Errorf("%s: eval error! %s", c.Input, err)
			continue
		}
		if got.String() != c.Want {
			t.Errorf("%s: value mismatch! want %s, got %s", c.Input, c.Want, got)
		}
	}
}
