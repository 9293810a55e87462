// Package docx reads, mutates and writes WordprocessingML (.docx) packages.
//
// Only the parts the template filler touches are parsed: the main document
// and the headers and footers it references. Every other part is carried as
// raw bytes and written back unchanged.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"time"
)

// ErrInvalidFormat indicates the input is not a usable docx package.
var ErrInvalidFormat = errors.New("invalid docx format")

// entry is one file of the zip package.
type entry struct {
	name     string
	method   uint16
	modified time.Time
	data     []byte
}

// part is a parsed XML part.
type part struct {
	name string
	doc  *Node
	w    wml
}

// Document is an in-memory docx package.
type Document struct {
	entries  []*entry
	parts    map[string]*part
	mainPart *part
	body     *Node
	headers  []*part
	footers  []*part
}

// Open reads the docx package at path.
func Open(path string) (*Document, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
		}
		return nil, err
	}
	defer r.Close()

	return Read(&r.Reader)
}

// OpenBytes reads a docx package held in memory.
func OpenBytes(data []byte) (*Document, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return Read(r)
}

// Read loads every entry of r and parses the main document, headers and footers.
func Read(r *zip.Reader) (*Document, error) {
	d := &Document{parts: make(map[string]*part)}
	for _, f := range r.File {
		data, err := readEntry(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		d.entries = append(d.entries, &entry{
			name:     f.Name,
			method:   f.Method,
			modified: f.Modified,
			data:     data,
		})
	}

	mainName, err := findMainPart(r)
	if err != nil {
		return nil, fmt.Errorf("%w: package relationships: %v", ErrInvalidFormat, err)
	}
	main, err := d.parsePart(mainName)
	if err != nil {
		return nil, err
	}
	root := main.doc.Root()
	if !main.w.is(root, "document") {
		return nil, fmt.Errorf("%w: %s is not a document part", ErrInvalidFormat, mainName)
	}
	body := main.w.children(root, "body")
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: %s has no body", ErrInvalidFormat, mainName)
	}
	d.mainPart = main
	d.body = body[0]

	if err := d.loadHeadersFooters(mainName); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) entry(name string) *entry {
	for _, e := range d.entries {
		if e.name == name {
			return e
		}
	}
	return nil
}

func (d *Document) parsePart(name string) (*part, error) {
	if p, ok := d.parts[name]; ok {
		return p, nil
	}
	e := d.entry(name)
	if e == nil {
		return nil, fmt.Errorf("%w: missing part %s", ErrInvalidFormat, name)
	}
	doc, err := ParseXML(e.data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidFormat, name, err)
	}
	p := &part{name: name, doc: doc, w: wml{prefix: prefixFor(doc.Root(), nsW, "w")}}
	d.parts[name] = p
	return p, nil
}

// loadHeadersFooters parses header and footer parts in relationship order.
func (d *Document) loadHeadersFooters(mainName string) error {
	relsEntry := d.entry(relsPathFor(mainName))
	if relsEntry == nil {
		return nil
	}
	rels, err := parseRelationships(relsEntry.data)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidFormat, relsEntry.name, err)
	}

	baseDir := path.Dir(mainName)
	for _, rel := range rels {
		if rel.TargetMode == "External" || (rel.Type != relHeader && rel.Type != relFooter) {
			continue
		}
		name := resolveRelativePath(rel.Target, baseDir)
		if d.entry(name) == nil {
			continue
		}
		p, err := d.parsePart(name)
		if err != nil {
			return err
		}
		if rel.Type == relHeader {
			d.headers = append(d.headers, p)
		} else {
			d.footers = append(d.footers, p)
		}
	}
	return nil
}

// Body returns the main body region.
func (d *Document) Body() Region {
	return &container{kind: RegionBody, node: d.body, w: d.mainPart.w}
}

// Tables returns the top-level tables of the body.
func (d *Document) Tables() []*Table {
	var out []*Table
	for _, n := range d.mainPart.w.children(d.body, "tbl") {
		out = append(out, &Table{node: n, w: d.mainPart.w})
	}
	return out
}

// Headers returns the header regions.
func (d *Document) Headers() []Region {
	return partRegions(d.headers, RegionHeader)
}

// Footers returns the footer regions.
func (d *Document) Footers() []Region {
	return partRegions(d.footers, RegionFooter)
}

func partRegions(parts []*part, kind RegionKind) []Region {
	var out []Region
	for _, p := range parts {
		if root := p.doc.Root(); root != nil {
			out = append(out, &container{kind: kind, node: root, w: p.w})
		}
	}
	return out
}

// Regions returns every region in search priority order: body, each table
// cell (row-major), each header, each footer.
func (d *Document) Regions() []Region {
	regions := []Region{d.Body()}
	for _, t := range d.Tables() {
		regions = append(regions, t.Cells()...)
	}
	regions = append(regions, d.Headers()...)
	regions = append(regions, d.Footers()...)
	return regions
}

// Save writes the package to path.
func (d *Document) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return d.Write(f)
}

// Write serializes the package. Entries keep their order, compression method
// and timestamps, so identical documents produce identical bytes.
func (d *Document) Write(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, e := range d.entries {
		data := e.data
		if p, ok := d.parts[e.name]; ok {
			data = p.doc.Marshal()
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     e.name,
			Method:   e.method,
			Modified: e.modified,
		})
		if err != nil {
			return fmt.Errorf("write %s: %w", e.name, err)
		}
		if _, err := fw.Write(data); err != nil {
			return fmt.Errorf("write %s: %w", e.name, err)
		}
	}
	return zw.Close()
}

// Bytes serializes the package into memory.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
