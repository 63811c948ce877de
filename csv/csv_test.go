package csv

import (
	"strings"
	"testing"

	"github.com/Lakret/cells/layout"
)

func at(addr string) layout.Position {
	return layout.ParsePosition(addr)
}

func TestReader(t *testing.T) {
	input := "a,b,c\n\"x,y\",\"he said \"\"hi\"\"\",2\nlast\n"
	rs := NewReader(strings.NewReader(input))
	all, err := rs.ReadAll()
	if err != nil {
		t.Fatalf("read failed! %s", err)
	}
	want := [][]string{
		{"a", "b", "c"},
		{"x,y", "he said \"hi\"", "2"},
		{"last"},
	}
	if len(all) != len(want) {
		t.Fatalf("row count mismatch! want %d, got %d", len(want), len(all))
	}
	for i := range want {
		if len(all[i]) != len(want[i]) {
			t.Errorf("row %d: field count mismatch! want %v, got %v", i, want[i], all[i])
			continue
		}
		for j := range want[i] {
			if all[i][j] != want[i][j] {
				t.Errorf("row %d field %d: want %q, got %q", i, j, want[i][j], all[i][j])
			}
		}
	}
}

func TestReaderMultiline(t *testing.T) {
	input := "\"two\nlines\",x\n"
	rs := NewReader(strings.NewReader(input))
	fields, err := rs.Read()
	if err != nil {
		t.Fatalf("read failed! %s", err)
	}
	if len(fields) != 2 || fields[0] != "two\nlines" || fields[1] != "x" {
		t.Errorf("fields mismatch! got %q", fields)
	}
}

func TestWriter(t *testing.T) {
	var buf strings.Builder
	ws := NewWriter(&buf)
	err := ws.WriteAll([][]string{
		{"plain", "with,comma", "with \"quote\""},
		{"", "2"},
	})
	if err != nil {
		t.Fatalf("write failed! %s", err)
	}
	want := "plain,\"with,comma\",\"with \"\"quote\"\"\"\n,2\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch! want %q, got %q", want, got)
	}
}

func TestLoadSave(t *testing.T) {
	input := "1,=A1+1\nhello,=sum(A1:B1)\n"
	bk, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("load failed! %s", err)
	}
	cases := map[string]string{
		"A1": "1",
		"B1": "2",
		"A2": "hello",
		"B2": "3",
	}
	for addr, want := range cases {
		if got := bk.Value(at(addr)).String(); got != want {
			t.Errorf("%s: value mismatch! want %s, got %s", addr, want, got)
		}
	}

	var buf strings.Builder
	if err := Save(&buf, bk); err != nil {
		t.Fatalf("save failed! %s", err)
	}
	// formulas persist as typed, never as cached values
	want := "1,=A1+1\nhello,=sum(A1:B1)\n"
	if got := buf.String(); got != want {
		t.Errorf("round trip mismatch! want %q, got %q", want, got)
	}
}
