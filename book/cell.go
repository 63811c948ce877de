package book

import (
	"github.com/Lakret/cells/formula"
	"github.com/Lakret/cells/layout"
	"github.com/Lakret/cells/value"
)

type cellState int8

const (
	stateLiteral cellState = iota
	stateFresh
	stateStale
	stateCircular
	stateBroken
)

// Cell carries the raw text as typed, the parsed formula when there
// is one, and the cached value of the last recalculation.
type Cell struct {
	pos   layout.Position
	raw   string
	expr  formula.Expr
	val   value.Value
	state cellState
}

func newCell(pos layout.Position) *Cell {
	return &Cell{
		pos: pos,
		val: value.Empty(),
	}
}

func (c *Cell) Position() layout.Position {
	return c.pos
}

func (c *Cell) Raw() string {
	return c.raw
}

func (c *Cell) Value() value.Value {
	return c.val
}

func (c *Cell) IsFormula() bool {
	return c.state != stateLiteral
}

func (c *Cell) Display() string {
	return c.val.String()
}
