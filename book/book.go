package book

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Lakret/cells/formula"
	"github.com/Lakret/cells/formula/builtins"
	"github.com/Lakret/cells/formula/env"
	"github.com/Lakret/cells/internal/slx"
	"github.com/Lakret/cells/layout"
	"github.com/Lakret/cells/value"
)

// Change reports one cell whose value was recomputed, so a caller
// can redraw exactly what moved.
type Change struct {
	Position layout.Position
	Value    value.Value
}

// Book is the workbook: a sparse cell map, the dependency graph
// between formula cells, and the function environment. A Book is
// owned by one caller at a time; it does no locking of its own.
type Book struct {
	cells map[layout.Position]*Cell
	graph *Graph
	env   *env.Environment
}

func New() *Book {
	return &Book{
		cells: make(map[layout.Position]*Cell),
		graph: NewGraph(),
		env:   builtins.Environment(),
	}
}

// Define binds a name in the book environment, on top of the builtin
// functions.
func (b *Book) Define(name string, val value.Value) {
	b.env.Define(name, val)
}

// Set is the only mutation entry point. Empty text deletes the cell,
// a '=' prefix makes it a formula, anything else a literal number or
// text. Every cell downstream of the edit is recomputed in
// dependency order and reported in the returned changes.
func (b *Book) Set(pos layout.Position, text string) []Change {
	text = strings.TrimSpace(text)
	if text == "" {
		return b.clear(pos)
	}
	cell, ok := b.cells[pos]
	if !ok {
		cell = newCell(pos)
		b.cells[pos] = cell
	}
	cell.raw = text
	cell.expr = nil
	if strings.HasPrefix(text, "=") {
		expr, err := formula.ParseFormula(text)
		if err != nil {
			// a broken formula stays local: the cell holds the
			// syntax error value and has no edges
			cell.state = stateBroken
			cell.val = value.Syntax(err.Error())
			b.graph.Unlink(pos)
			return b.recompute(pos)
		}
		cell.state = stateStale
		cell.expr = expr
		b.graph.SetDependencies(pos, formula.References(expr))
		return b.recompute(pos)
	}
	cell.state = stateLiteral
	cell.val = parseLiteral(text)
	b.graph.Unlink(pos)
	return b.recompute(pos)
}

func (b *Book) clear(pos layout.Position) []Change {
	if _, ok := b.cells[pos]; !ok {
		return nil
	}
	delete(b.cells, pos)
	b.graph.Unlink(pos)
	return b.recompute(pos)
}

// Value gives the cached value of a cell, Blank when the cell does
// not exist. It never mutates the book.
func (b *Book) Value(pos layout.Position) value.Value {
	cell, ok := b.cells[pos]
	if !ok {
		return value.Empty()
	}
	return cell.val
}

// Raw gives the cell text as typed, formulas included.
func (b *Book) Raw(pos layout.Position) string {
	cell, ok := b.cells[pos]
	if !ok {
		return ""
	}
	return cell.raw
}

func (b *Book) Len() int {
	return len(b.cells)
}

// Positions lists every non empty cell in address order.
func (b *Book) Positions() []layout.Position {
	return slx.SortedKeys(b.cells, layout.Position.Compare)
}

// Dimension gives the smallest rectangle starting at A1 that holds
// every non empty cell.
func (b *Book) Dimension() layout.Dimension {
	var dim layout.Dimension
	for pos := range b.cells {
		other := layout.Dimension{
			Lines:   pos.Line,
			Columns: pos.Column,
		}
		dim = dim.Max(other)
	}
	return dim
}

// Eval computes a formula against the book without touching any
// cell, for one-shot queries.
func (b *Book) Eval(text string) (value.Value, error) {
	expr, err := formula.ParseFormula(text)
	if err != nil {
		return nil, err
	}
	return formula.Eval(expr, b.context())
}

// Affected gives the cells an edit at pos would recompute, in
// evaluation order.
func (b *Book) Affected(pos layout.Position) ([]layout.Position, error) {
	return b.graph.Schedule(pos)
}

func (b *Book) Dependencies(pos layout.Position) []layout.Position {
	return b.graph.DependenciesOf(pos)
}

func (b *Book) Dependents(pos layout.Position) []layout.Position {
	return b.graph.DependentsOf(pos)
}

// Recalc recomputes every formula cell of the book, typically after
// a bulk load. Cells caught in a cycle report the circular error,
// the rest evaluate in dependency order.
func (b *Book) Recalc() []Change {
	var nodes []layout.Position
	for pos, cell := range b.cells {
		if cell.IsFormula() {
			nodes = append(nodes, pos)
		}
	}
	order, err := b.graph.Order(nodes)
	var cycle CycleError
	if errors.As(err, &cycle) {
		changes := b.breakCycle(cycle)
		return append(changes, b.evaluate(order)...)
	}
	return b.evaluate(order)
}

func (b *Book) recompute(start layout.Position) []Change {
	order, err := b.graph.Schedule(start)
	var cycle CycleError
	if errors.As(err, &cycle) {
		// nothing downstream recomputes: cycle members report the
		// circular error, everything else keeps its cached value
		return b.breakCycle(cycle)
	}
	return b.evaluate(order)
}

func (b *Book) breakCycle(cycle CycleError) []Change {
	var changes []Change
	for _, pos := range cycle.Cycle {
		cell, ok := b.cells[pos]
		if !ok {
			continue
		}
		cell.state = stateCircular
		cell.val = value.ErrCircular
		changes = append(changes, Change{
			Position: pos,
			Value:    cell.val,
		})
	}
	return changes
}

// evaluate runs the cells in the given order, writing each value
// back before the next cell evaluates so that reads observe the
// fresh values.
func (b *Book) evaluate(order []layout.Position) []Change {
	var changes []Change
	for _, pos := range order {
		cell, ok := b.cells[pos]
		if !ok {
			continue
		}
		if cell.expr != nil {
			val, err := formula.Eval(cell.expr, b.context())
			if err != nil {
				val = value.Syntax(err.Error())
			}
			cell.val = val
			cell.state = stateFresh
		}
		changes = append(changes, Change{
			Position: pos,
			Value:    cell.val,
		})
	}
	return changes
}

func parseLiteral(text string) value.Value {
	if x, err := strconv.ParseFloat(text, 64); err == nil {
		return value.Float(x)
	}
	switch strings.ToLower(text) {
	case "true":
		return value.Boolean(true)
	case "false":
		return value.Boolean(false)
	default:
	}
	return value.Text(text)
}
