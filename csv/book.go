package csv

import (
	"errors"
	"io"
	"strings"

	"github.com/Lakret/cells/book"
	"github.com/Lakret/cells/layout"
)

// Load reads a comma separated sheet into a fresh book. Each field
// is applied as a cell edit, then the whole book recalculates once
// so forward references resolve.
func Load(r io.Reader) (*book.Book, error) {
	var (
		rs = NewReader(r)
		bk = book.New()
	)
	for line := int64(1); ; line++ {
		fields, err := rs.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		for i, field := range fields {
			if strings.TrimSpace(field) == "" {
				continue
			}
			pos := layout.Position{
				Line:   line,
				Column: int64(i) + 1,
			}
			bk.Set(pos, field)
		}
	}
	bk.Recalc()
	return bk, nil
}

// Save writes the raw cell text, formulas as typed, never cached
// values. The sheet is written as the rectangle from A1 to the last
// non empty cell.
func Save(w io.Writer, bk *book.Book) error {
	var (
		ws  = NewWriter(w)
		dim = bk.Dimension()
	)
	for line := int64(1); line <= dim.Lines; line++ {
		record := make([]string, dim.Columns)
		for col := int64(1); col <= dim.Columns; col++ {
			pos := layout.Position{
				Line:   line,
				Column: col,
			}
			record[col-1] = bk.Raw(pos)
		}
		if err := ws.Write(record); err != nil {
			return err
		}
	}
	return ws.Flush()
}
