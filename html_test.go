package tablesheet

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestGetEncoding(t *testing.T) {
	for _, nm := range []string{"", "utf-8", "UTF8"} {
		if enc, err := GetEncoding(nm); err != nil || enc != nil {
			t.Errorf("%q: got (%v, %v), wanted no encoding", nm, enc, err)
		}
	}
	if enc, err := GetEncoding("ISO-8859-2"); err != nil || enc == nil {
		t.Errorf("iso-8859-2: got (%v, %v)", enc, err)
	}
	if _, err := GetEncoding("no-such-charset"); err == nil {
		t.Error("no-such-charset: wanted error")
	}
}

func TestDecodeHTML(t *testing.T) {
	latin2, err := charmap.ISO8859_2.NewEncoder().String("<td>árvíztűrő</td>")
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		name, enc, in string
	}{
		{name: "explicit", enc: "iso-8859-2", in: latin2},
		{name: "meta", in: `<meta charset="iso-8859-2">` + latin2},
		{name: "utf8", in: "\ufeff<td>árvíztűrő</td>"},
	} {
		r, err := DecodeHTML(bytes.NewReader([]byte(tc.in)), tc.enc)
		if err != nil {
			t.Fatalf("%s: %+v", tc.name, err)
		}
		b, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("%s: %+v", tc.name, err)
		}
		if !bytes.Contains(b, []byte("<td>árvíztűrő</td>")) {
			t.Errorf("%s: got %q", tc.name, b)
		}
	}
}

func TestReadHTML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "a.html")
	if err := os.WriteFile(fn, []byte("<table><tr><td>x</td></tr></table>"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := ReadHTML(fn, "")
	if err != nil {
		t.Fatal(err)
	}
	if s != "<table><tr><td>x</td></tr></table>" {
		t.Errorf("got %q", s)
	}
	if _, err := ReadHTML(filepath.Join(t.TempDir(), "missing.html"), ""); err == nil {
		t.Error("wanted error for a missing file")
	}
}
