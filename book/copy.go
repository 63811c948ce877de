package book

import (
	"github.com/Lakret/cells/layout"
)

// Copy re-targets the source cell onto dst, like a spreadsheet
// paste. Formulas shift their relative references by the distance
// between the two cells; references pinned with '$' keep pointing
// where they were. Literals copy as is, an empty source clears dst.
func (b *Book) Copy(src, dst layout.Position) []Change {
	cell, ok := b.cells[src]
	if !ok {
		return b.Set(dst, "")
	}
	if cell.expr == nil {
		return b.Set(dst, cell.raw)
	}
	offset := layout.Position{
		Line:   dst.Line - src.Line,
		Column: dst.Column - src.Column,
	}
	expr := cell.expr.CloneWithOffset(offset)
	return b.Set(dst, "="+expr.String())
}
