package book

import (
	"github.com/Lakret/cells/internal/slx"
	"github.com/Lakret/cells/layout"
)

type posSet = map[layout.Position]struct{}

// Graph tracks which cell reads which. The depends map holds the
// outgoing edges of each cell, the dependents map is its exact
// inverse at all times.
type Graph struct {
	depends    map[layout.Position]posSet
	dependents map[layout.Position]posSet
}

func NewGraph() *Graph {
	return &Graph{
		depends:    make(map[layout.Position]posSet),
		dependents: make(map[layout.Position]posSet),
	}
}

// SetDependencies replaces every outgoing edge of pos in one step:
// old edges removed first, then the new ones inserted. Entries with
// no edges left are pruned.
func (g *Graph) SetDependencies(pos layout.Position, deps []layout.Position) {
	for dep := range g.depends[pos] {
		delete(g.dependents[dep], pos)
		if len(g.dependents[dep]) == 0 {
			delete(g.dependents, dep)
		}
	}
	delete(g.depends, pos)
	if len(deps) == 0 {
		return
	}
	set := make(posSet, len(deps))
	for _, dep := range deps {
		set[dep] = struct{}{}
		if g.dependents[dep] == nil {
			g.dependents[dep] = make(posSet)
		}
		g.dependents[dep][pos] = struct{}{}
	}
	g.depends[pos] = set
}

func (g *Graph) Unlink(pos layout.Position) {
	g.SetDependencies(pos, nil)
}

func (g *Graph) DependenciesOf(pos layout.Position) []layout.Position {
	return slx.SortedKeys(g.depends[pos], layout.Position.Compare)
}

func (g *Graph) DependentsOf(pos layout.Position) []layout.Position {
	return slx.SortedKeys(g.dependents[pos], layout.Position.Compare)
}
