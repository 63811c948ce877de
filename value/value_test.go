package value

import (
	"errors"
	"testing"
)

func TestCastToFloat(t *testing.T) {
	tests := []struct {
		Input Value
		Want  Float
		Fail  bool
	}{
		{Input: Float(2.5), Want: 2.5},
		{Input: Blank{}, Want: 0},
		{Input: Boolean(true), Want: 1},
		{Input: Boolean(false), Want: 0},
		{Input: Text("12"), Fail: true},
		{Input: ErrDiv0, Fail: true},
	}
	for _, c := range tests {
		got, err := CastToFloat(c.Input)
		if c.Fail {
			if !errors.Is(err, ErrCast) {
				t.Errorf("%s: cast should have failed", c.Input)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: cast failed! %s", c.Input, err)
			continue
		}
		if got != c.Want {
			t.Errorf("%s: cast mismatch! want %s, got %s", c.Input, c.Want, got)
		}
	}
}

func TestCastToText(t *testing.T) {
	tests := []struct {
		Input Value
		Want  Text
	}{
		{Input: Text("hello"), Want: "hello"},
		{Input: Float(2.5), Want: "2.5"},
		{Input: Boolean(true), Want: "true"},
		{Input: Blank{}, Want: ""},
	}
	for _, c := range tests {
		got, err := CastToText(c.Input)
		if err != nil {
			t.Errorf("%s: cast failed! %s", c.Input, err)
			continue
		}
		if got != c.Want {
			t.Errorf("%s: cast mismatch! want %s, got %s", c.Input, c.Want, got)
		}
	}
}

func TestErrorIs(t *testing.T) {
	if !errors.Is(Syntax("missing operand"), Syntax("trailing token")) {
		t.Errorf("syntax errors should match on code only")
	}
	if errors.Is(ErrDiv0, ErrValue) {
		t.Errorf("distinct error codes should not match")
	}
	if !IsError(ErrCircular) || IsError(Float(1)) {
		t.Errorf("IsError misreports")
	}
}

func TestArray(t *testing.T) {
	arr := NewArray([][]ScalarValue{
		{Float(1), Float(2)},
		{nil, Text("x")},
	})
	dim := arr.Dimension()
	if dim.Lines != 2 || dim.Columns != 2 {
		t.Fatalf("dimension mismatch! got %dx%d", dim.Lines, dim.Columns)
	}
	values := arr.Values()
	if len(values) != 4 {
		t.Fatalf("expected 4 values, got %d", len(values))
	}
	if !IsBlank(values[2]) {
		t.Errorf("nil entry should read as blank")
	}
	if arr.At(5, 0) != nil {
		t.Errorf("out of bounds access should give nil")
	}
}
