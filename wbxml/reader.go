package wbxml

import (
	"fmt"
	"io"

	sax "github.com/midbel/codecs/xml"

	"github.com/Lakret/cells/book"
	"github.com/Lakret/cells/layout"
)

// Read parses a workbook document into a fresh book. The document is
// a flat list of cells carrying raw text; one recalculation at the
// end computes every formula.
//
//	<book>
//	  <c r="A1">1</c>
//	  <c r="B1">=A1+1</c>
//	</book>
func Read(r io.Reader) (*book.Book, error) {
	var (
		rs = sax.NewReader(r)
		bk = book.New()
	)
	rs.Element(sax.LocalName("c"), func(rs *sax.Reader, el sax.E) error {
		addr := el.GetAttributeValue("r")
		if !layout.IsAddress(addr) {
			return fmt.Errorf("%s: invalid cell address", addr)
		}
		pos := layout.ParsePosition(addr)
		if el.SelfClosed {
			return nil
		}
		rs.OnText(func(_ *sax.Reader, str string) error {
			bk.Set(pos, str)
			return nil
		})
		return nil
	})
	if err := rs.Start(); err != nil {
		return nil, err
	}
	bk.Recalc()
	return bk, nil
}
