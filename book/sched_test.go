package book

import (
	"errors"
	"testing"

	"github.com/Lakret/cells/layout"
)

func at(addr string) layout.Position {
	return layout.ParsePosition(addr)
}

func addrs(list []layout.Position) []string {
	var res []string
	for _, pos := range list {
		res = append(res, pos.Addr())
	}
	return res
}

func TestGraphInverse(t *testing.T) {
	g := NewGraph()
	g.SetDependencies(at("C1"), []layout.Position{at("A1"), at("B1")})
	g.SetDependencies(at("D1"), []layout.Position{at("A1")})

	got := addrs(g.DependentsOf(at("A1")))
	want := []string{"C1", "D1"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("dependents mismatch! want %v, got %v", want, got)
	}

	g.SetDependencies(at("C1"), []layout.Position{at("B1")})
	if deps := g.DependentsOf(at("A1")); len(deps) != 1 || !deps[0].Equal(at("D1")) {
		t.Errorf("stale edge left after relink! got %v", addrs(deps))
	}
	g.Unlink(at("D1"))
	if deps := g.DependentsOf(at("A1")); len(deps) != 0 {
		t.Errorf("edges left after unlink! got %v", addrs(deps))
	}
}

func TestSchedule(t *testing.T) {
	g := NewGraph()
	g.SetDependencies(at("B1"), []layout.Position{at("A1")})
	g.SetDependencies(at("C1"), []layout.Position{at("B1")})
	g.SetDependencies(at("B2"), []layout.Position{at("A1")})

	order, err := g.Schedule(at("A1"))
	if err != nil {
		t.Fatalf("schedule failed! %s", err)
	}
	want := []string{"A1", "B1", "C1", "B2"}
	got := addrs(order)
	if len(got) != len(want) {
		t.Fatalf("order mismatch! want %v, got %v", want, got)
	}
	rank := make(map[string]int)
	for i, a := range got {
		rank[a] = i
	}
	if rank["A1"] > rank["B1"] || rank["B1"] > rank["C1"] || rank["A1"] > rank["B2"] {
		t.Errorf("order violates dependencies! got %v", got)
	}
	// drained in address order: B1 before B2, both before C1
	if rank["B1"] > rank["B2"] {
		t.Errorf("ready cells not drained in address order! got %v", got)
	}
}

func TestScheduleUnrelated(t *testing.T) {
	g := NewGraph()
	g.SetDependencies(at("B1"), []layout.Position{at("A1")})
	g.SetDependencies(at("D1"), []layout.Position{at("C1")})

	order, err := g.Schedule(at("A1"))
	if err != nil {
		t.Fatalf("schedule failed! %s", err)
	}
	for _, pos := range order {
		if pos.Equal(at("C1")) || pos.Equal(at("D1")) {
			t.Errorf("unrelated cell scheduled! got %v", addrs(order))
		}
	}
}

func TestScheduleCycle(t *testing.T) {
	g := NewGraph()
	g.SetDependencies(at("A1"), []layout.Position{at("B1")})
	g.SetDependencies(at("B1"), []layout.Position{at("A1")})
	g.SetDependencies(at("C1"), []layout.Position{at("B1")})

	_, err := g.Schedule(at("A1"))
	var cycle CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("cycle not detected! err: %v", err)
	}
	got := addrs(cycle.Cycle)
	if len(got) != 2 || got[0] != "A1" || got[1] != "B1" {
		t.Errorf("cycle members mismatch! want [A1 B1], got %v", got)
	}
}

func TestScheduleSelfReference(t *testing.T) {
	g := NewGraph()
	g.SetDependencies(at("A1"), []layout.Position{at("A1")})

	_, err := g.Schedule(at("A1"))
	var cycle CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("self reference not detected! err: %v", err)
	}
	if len(cycle.Cycle) != 1 || !cycle.Cycle[0].Equal(at("A1")) {
		t.Errorf("cycle members mismatch! got %v", addrs(cycle.Cycle))
	}
}
