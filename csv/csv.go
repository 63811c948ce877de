package csv

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const (
	quote = '"'
	nl    = '\n'
	cr    = '\r'
)

var errUnterminated = errors.New("unterminated quoted field")

// Reader reads comma separated records. Quoted fields may contain
// the separator, doubled quotes and line breaks.
type Reader struct {
	inner *bufio.Reader
	Comma byte

	atEOF bool
}

func NewReader(r io.Reader) *Reader {
	rs := Reader{
		inner: bufio.NewReader(r),
		Comma: ',',
	}
	return &rs
}

func (r *Reader) Read() ([]string, error) {
	if r.atEOF {
		return nil, io.EOF
	}
	line, err := r.inner.ReadBytes(nl)
	if len(line) == 0 {
		r.atEOF = true
		if err == nil || errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	for {
		fields, err := r.split(line)
		if err == nil {
			return fields, nil
		}
		if !errors.Is(err, errUnterminated) {
			return nil, err
		}
		// quoted field spans the line break: pull the next line in
		// and try again
		next, err1 := r.inner.ReadBytes(nl)
		if len(next) == 0 {
			return nil, err
		}
		if err1 != nil && !errors.Is(err1, io.EOF) {
			return nil, err1
		}
		line = append(line, next...)
	}
}

func (r *Reader) ReadAll() ([][]string, error) {
	var all [][]string
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		all = append(all, fields)
	}
	return all, nil
}

func (r *Reader) split(line []byte) ([]string, error) {
	var (
		fields []string
		offset int
	)
	for {
		field, next, err := r.field(line, offset)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
		if next >= len(line) || line[next] == cr || line[next] == nl {
			break
		}
		offset = next + 1
	}
	return fields, nil
}

// field reads one field starting at offset and gives back its text
// with the index of the byte that ended it.
func (r *Reader) field(line []byte, offset int) (string, int, error) {
	if offset < len(line) && line[offset] == quote {
		return r.quoted(line, offset+1)
	}
	pos := offset
	for pos < len(line) {
		c := line[pos]
		if c == r.Comma || c == cr || c == nl {
			break
		}
		pos++
	}
	return string(line[offset:pos]), pos, nil
}

func (r *Reader) quoted(line []byte, offset int) (string, int, error) {
	var field []byte
	for offset < len(line) {
		if line[offset] != quote {
			field = append(field, line[offset])
			offset++
			continue
		}
		if offset+1 < len(line) && line[offset+1] == quote {
			field = append(field, quote)
			offset += 2
			continue
		}
		return string(field), offset + 1, nil
	}
	return "", 0, errUnterminated
}

// Writer writes comma separated records, quoting a field only when
// it needs it.
type Writer struct {
	inner *bufio.Writer
	Comma byte

	ForceQuote bool
}

func NewWriter(w io.Writer) *Writer {
	ws := Writer{
		inner: bufio.NewWriter(w),
		Comma: ',',
	}
	return &ws
}

func (w *Writer) Write(record []string) error {
	for i, field := range record {
		if i > 0 {
			if err := w.inner.WriteByte(w.Comma); err != nil {
				return err
			}
		}
		if err := w.writeField(field); err != nil {
			return err
		}
	}
	return w.inner.WriteByte(nl)
}

func (w *Writer) WriteAll(records [][]string) error {
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (w *Writer) Flush() error {
	return w.inner.Flush()
}

func (w *Writer) writeField(field string) error {
	if !w.needQuotes(field) {
		_, err := w.inner.WriteString(field)
		return err
	}
	if err := w.inner.WriteByte(quote); err != nil {
		return err
	}
	for i := 0; i < len(field); i++ {
		if field[i] == quote {
			if err := w.inner.WriteByte(quote); err != nil {
				return err
			}
		}
		if err := w.inner.WriteByte(field[i]); err != nil {
			return err
		}
	}
	return w.inner.WriteByte(quote)
}

func (w *Writer) needQuotes(field string) bool {
	if w.ForceQuote {
		return true
	}
	if field == "" {
		return false
	}
	if field[0] == ' ' {
		return true
	}
	return strings.ContainsAny(field, string([]byte{w.Comma, quote, cr, nl}))
}
