package wbxml

import (
	"encoding/xml"
	"io"

	"github.com/Lakret/cells/book"
)

type xmlCell struct {
	XMLName xml.Name `xml:"c"`
	Ref     string   `xml:"r,attr"`
	Raw     string   `xml:",chardata"`
}

type xmlBook struct {
	XMLName xml.Name  `xml:"book"`
	Cells   []xmlCell `xml:"c"`
}

// Write renders the book as a flat workbook document, cells in
// address order, raw text as typed.
func Write(w io.Writer, bk *book.Book) error {
	var doc xmlBook
	for _, pos := range bk.Positions() {
		cell := xmlCell{
			Ref: pos.Addr(),
			Raw: bk.Raw(pos),
		}
		doc.Cells = append(doc.Cells, cell)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
