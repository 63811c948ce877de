package layout

import (
	"slices"
	"testing"
)

func TestPositionRoundTrip(t *testing.T) {
	tests := []struct {
		Addr string
		Pos  Position
	}{
		{
			Addr: "A1",
			Pos:  Position{Line: 1, Column: 1},
		},
		{
			Addr: "B7",
			Pos:  Position{Line: 7, Column: 2},
		},
		{
			Addr: "Z10",
			Pos:  Position{Line: 10, Column: 26},
		},
		{
			Addr: "AA1",
			Pos:  Position{Line: 1, Column: 27},
		},
		{
			Addr: "AB12",
			Pos:  Position{Line: 12, Column: 28},
		},
		{
			Addr: "ZZ999",
			Pos:  Position{Line: 999, Column: 702},
		},
	}
	for _, c := range tests {
		got := ParsePosition(c.Addr)
		if !got.Equal(c.Pos) {
			t.Errorf("%s: position mismatched! want %+v, got %+v", c.Addr, c.Pos, got)
		}
		if str := c.Pos.Addr(); str != c.Addr {
			t.Errorf("%+v: address mismatched! want %s, got %s", c.Pos, c.Addr, str)
		}
		if back := ParsePosition(c.Pos.Addr()); !back.Equal(c.Pos) {
			t.Errorf("%s: round trip broken! got %+v", c.Addr, back)
		}
	}
}

func TestIsAddress(t *testing.T) {
	valid := []string{"A1", "b2", "AB12", "zz100"}
	for _, a := range valid {
		if !IsAddress(a) {
			t.Errorf("%s: should be a valid address", a)
		}
	}
	invalid := []string{"", "A", "1A", "A0", "A1B", "12", "A-1"}
	for _, a := range invalid {
		if IsAddress(a) {
			t.Errorf("%s: should not be a valid address", a)
		}
	}
}

func TestPositionCompare(t *testing.T) {
	list := []Position{
		{Line: 2, Column: 1},
		{Line: 1, Column: 2},
		{Line: 1, Column: 1},
		{Line: 2, Column: 3},
	}
	slices.SortFunc(list, Position.Compare)
	want := []string{"A1", "B1", "A2", "C2"}
	for i := range want {
		if list[i].Addr() != want[i] {
			t.Errorf("position %d: want %s, got %s", i, want[i], list[i])
		}
	}
}

func TestRangeCells(t *testing.T) {
	rg := RangeFromString("B2:A1").Normalize()
	var got []string
	for pos := range rg.Cells() {
		got = append(got, pos.Addr())
	}
	want := []string{"A1", "B1", "A2", "B2"}
	if !slices.Equal(got, want) {
		t.Errorf("cells mismatched! want %v, got %v", want, got)
	}
	if rg.Width() != 2 || rg.Height() != 2 {
		t.Errorf("unexpected dimension: %dx%d", rg.Width(), rg.Height())
	}
}
