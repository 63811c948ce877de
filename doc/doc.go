package doc

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/Lakret/cells/book"
	"github.com/Lakret/cells/csv"
	"github.com/Lakret/cells/wbxml"
)

// Open loads a workbook file, sniffing the format from its content:
// a document starting with '<' is the XML workbook format, anything
// else reads as comma separated values.
func Open(file string) (*book.Book, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	br := bufio.NewReader(r)
	if sniffXML(br) {
		return wbxml.Read(br)
	}
	return csv.Load(br)
}

// Save writes the book back, picking the format from the file
// extension: .xml gets the XML workbook format, everything else CSV.
func Save(file string, bk *book.Book) error {
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(file), ".xml") {
		err = wbxml.Write(w, bk)
	} else {
		err = csv.Save(w, bk)
	}
	// the buffered writers flush on close: a close failure is a
	// write failure
	if e := w.Close(); err == nil {
		err = e
	}
	return err
}

func sniffXML(br *bufio.Reader) bool {
	for i := 1; ; i++ {
		buf, err := br.Peek(i)
		if err != nil || len(buf) < i {
			return false
		}
		c := buf[i-1]
		if unicode.IsSpace(rune(c)) {
			continue
		}
		return c == '<'
	}
}
