package tablesheet

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// EncName is the default charset of the HTML inputs, taken from LANG.
// Empty means the charset is sniffed from the document.
var EncName = ""

func init() {
	EncName = os.Getenv("LANG")
	if i := strings.IndexByte(EncName, '.'); i >= 0 {
		EncName = strings.ToLower(EncName[i+1:])
	} else {
		EncName = ""
	}
}

func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

type htmlReadCloser struct {
	io.Reader
	io.Closer
}

// OpenHTML opens fn ("" or "-" means stdin) for reading as UTF-8.
//
// With an empty encName the charset is determined from the BOM,
// the <meta> tags or the content itself.
func OpenHTML(fn, encName string) (io.ReadCloser, error) {
	fh := os.Stdin
	if !(fn == "" || fn == "-") {
		var err error
		if fh, err = os.Open(fn); err != nil {
			return nil, err
		}
	}
	r, err := DecodeHTML(fh, encName)
	if err != nil {
		fh.Close()
		return nil, err
	}
	return htmlReadCloser{Reader: r, Closer: fh}, nil
}

// DecodeHTML returns a reader converting r from encName (sniffed if empty) to UTF-8.
func DecodeHTML(r io.Reader, encName string) (io.Reader, error) {
	if encName == "" {
		return charset.NewReader(r, "")
	}
	enc, err := GetEncoding(encName)
	if err != nil || enc == nil {
		return r, err
	}
	return enc.NewDecoder().Reader(r), nil
}

// ReadHTML reads the whole of fn, see OpenHTML.
func ReadHTML(fn, encName string) (string, error) {
	rc, err := OpenHTML(fn, encName)
	if err != nil {
		return "", err
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", fn, err)
	}
	return string(b), nil
}
