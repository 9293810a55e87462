package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadCSV reads every record of a CSV export.
// Records may have differing lengths; a UTF-8 byte order mark is dropped.
func ReadCSV(path string, opts Options) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapRead("csv", path, err)
	}
	defer f.Close()

	rows, err := DecodeCSV(f, opts)
	if err != nil {
		return nil, wrapRead("csv", path, err)
	}
	return rows, nil
}

// DecodeCSV reads every record from r.
func DecodeCSV(r io.Reader, opts Options) ([][]string, error) {
	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(transform.NewReader(r, enc.NewDecoder()))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	return reader.ReadAll()
}

// lookupEncoding resolves a character set name.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "windows-1251", "cp1251":
		return charmap.Windows1251, nil
	case "koi8-r", "koi8r":
		return charmap.KOI8R, nil
	case "cp866", "ibm866":
		return charmap.CodePage866, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, name)
	}
	return enc, nil
}
