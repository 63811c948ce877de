package book

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Lakret/cells/internal/slx"
	"github.com/Lakret/cells/layout"
)

// CycleError lists the cells caught in a circular reference, in
// address order. A self-reference is a cycle of length one.
type CycleError struct {
	Cycle []layout.Position
}

func (e CycleError) Error() string {
	var parts []string
	for _, pos := range e.Cycle {
		parts = append(parts, pos.Addr())
	}
	return fmt.Sprintf("circular reference between %s", strings.Join(parts, ", "))
}

// Schedule gives the cells affected by an edit at start in an order
// where every cell comes after the cells it reads. Ready cells drain
// in address order so the result is deterministic.
func (g *Graph) Schedule(start layout.Position) ([]layout.Position, error) {
	return g.sort(g.affected(start))
}

// Order schedules an arbitrary set of cells, typically every formula
// cell for a full recalculation.
func (g *Graph) Order(nodes []layout.Position) ([]layout.Position, error) {
	set := make(posSet, len(nodes))
	for _, pos := range nodes {
		set[pos] = struct{}{}
	}
	return g.sort(set)
}

// affected is start plus the closure of its dependents: every cell
// whose value may change when start does.
func (g *Graph) affected(start layout.Position) posSet {
	seen := make(posSet)
	queue := slx.One(start)
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		if _, done := seen[pos]; done {
			continue
		}
		seen[pos] = struct{}{}
		for next := range g.dependents[pos] {
			queue = append(queue, next)
		}
	}
	return seen
}

// sort runs Kahn's algorithm restricted to the given set: only edges
// with both ends inside count. On a cycle the returned order holds
// the cells that could still be resolved, and the error names the
// cycle members.
func (g *Graph) sort(nodes posSet) ([]layout.Position, error) {
	degree := make(map[layout.Position]int, len(nodes))
	for pos := range nodes {
		var n int
		for dep := range g.depends[pos] {
			if _, ok := nodes[dep]; ok {
				n++
			}
		}
		degree[pos] = n
	}
	var ready []layout.Position
	for pos, n := range degree {
		if n == 0 {
			ready = append(ready, pos)
		}
	}
	slices.SortFunc(ready, layout.Position.Compare)
	var order []layout.Position
	for len(ready) > 0 {
		pos := ready[0]
		ready = ready[1:]
		order = append(order, pos)
		var found []layout.Position
		for next := range g.dependents[pos] {
			if _, ok := nodes[next]; !ok {
				continue
			}
			degree[next]--
			if degree[next] == 0 {
				found = append(found, next)
			}
		}
		if len(found) > 0 {
			ready = append(ready, found...)
			slices.SortFunc(ready, layout.Position.Compare)
		}
	}
	if len(order) == len(nodes) {
		return order, nil
	}
	return order, CycleError{
		Cycle: g.isolate(nodes, order),
	}
}

// isolate trims the unresolved remainder down to the actual cycle
// members. Kahn already peeled the cells with no unresolved reads;
// peeling the cells nobody unresolved reads, repeatedly, leaves the
// cycles themselves.
func (g *Graph) isolate(nodes posSet, resolved []layout.Position) []layout.Position {
	remain := make(posSet, len(nodes))
	for pos := range nodes {
		remain[pos] = struct{}{}
	}
	for _, pos := range resolved {
		delete(remain, pos)
	}
	for {
		var trimmed []layout.Position
		for pos := range remain {
			var out int
			for next := range g.dependents[pos] {
				if _, ok := remain[next]; ok {
					out++
				}
			}
			if out == 0 {
				trimmed = append(trimmed, pos)
			}
		}
		if len(trimmed) == 0 {
			break
		}
		for _, pos := range trimmed {
			delete(remain, pos)
		}
	}
	return slx.SortedKeys(remain, layout.Position.Compare)
}
