// Package parser provides survey export reading utilities.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/formfill-go/pkg/formfill/models"
)

// ErrUnsupportedEncoding indicates the requested CSV encoding is unknown.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Options configures how a survey export is read.
type Options struct {
	// Comma is the CSV field delimiter. Zero means ','.
	Comma rune
	// Encoding names the CSV character set (e.g. "utf-8", "windows-1251").
	// Empty means UTF-8.
	Encoding string
	// Sheet selects the worksheet of an xlsx export. Empty means the first sheet.
	Sheet string
}

// DefaultOptions returns the options used for Yandex Forms exports.
func DefaultOptions() Options {
	return Options{
		Comma:    ',',
		Encoding: "utf-8",
	}
}

// ReadTable reads a survey export, choosing the reader by file extension.
// Files that are not xlsx workbooks are read as CSV.
func ReadTable(path string, opts Options) (*models.Table, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = ReadXLSX(path, opts.Sheet)
	default:
		rows, err = ReadCSV(path, opts)
	}
	if err != nil {
		return nil, err
	}
	return newTable(filepath.Base(path), rows), nil
}

// newTable splits raw rows into header and data rows.
func newTable(source string, rows [][]string) *models.Table {
	t := &models.Table{Source: source}
	if len(rows) == 0 {
		return t
	}
	t.Header = rows[0]
	if len(rows) > 1 {
		t.Rows = rows[1:]
	}
	return t
}

func wrapRead(kind, path string, err error) error {
	return fmt.Errorf("read %s %s: %w", kind, filepath.Base(path), err)
}
