package formula

import (
	"slices"

	"github.com/Lakret/cells/layout"
)

// References lists every cell the expression reads. Ranges are
// expanded to their member cells, duplicates removed, and the result
// ordered row-major.
func References(expr Expr) []layout.Position {
	seen := make(map[layout.Position]struct{})
	collectRefs(expr, seen)
	list := make([]layout.Position, 0, len(seen))
	for pos := range seen {
		list = append(list, pos)
	}
	slices.SortFunc(list, layout.Position.Compare)
	return list
}

func collectRefs(expr Expr, seen map[layout.Position]struct{}) {
	switch e := expr.(type) {
	case cellAddr:
		seen[e.Position] = struct{}{}
	case rangeAddr:
		for pos := range e.bounds().Cells() {
			seen[pos] = struct{}{}
		}
	case unary:
		collectRefs(e.right, seen)
	case binary:
		collectRefs(e.left, seen)
		collectRefs(e.right, seen)
	case call:
		for i := range e.args {
			collectRefs(e.args[i], seen)
		}
	default:
	}
}
