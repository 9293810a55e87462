package docx

import (
	"archive/zip"
	"encoding/xml"
	"strconv"
	"time"
)

// Alignment is a paragraph justification value (w:jc).
type Alignment string

const (
	AlignDefault Alignment = ""
	AlignCenter  Alignment = "center"
)

// BuildTime is the timestamp stamped on entries of built packages.
var BuildTime = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// A4 portrait geometry in millimeters.
const (
	a4WidthMM  = 210
	a4HeightMM = 297
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="` + nsTypes + `"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="` + nsPkgRels + `"><Relationship Id="rId1" Type="` + relOfficeDocument + `" Target="word/document.xml"/></Relationships>`

// Builder assembles a new single-section document.
type Builder struct {
	w    wml
	root *Node
	body *Node
}

// NewBuilder starts an empty A4 document.
func NewBuilder() *Builder {
	w := wml{prefix: "w"}
	root := NewElement(w.name("document"),
		xml.Attr{Name: xml.Name{Space: "xmlns", Local: "w"}, Value: nsW},
		xml.Attr{Name: xml.Name{Space: "xmlns", Local: "r"}, Value: nsR},
	)
	body := NewElement(w.name("body"))
	root.Append(body)
	return &Builder{w: w, root: root, body: body}
}

// AddParagraph appends a paragraph with a single run and returns it.
func (b *Builder) AddParagraph(text string, style RunStyle, align Alignment) *Paragraph {
	p := NewElement(b.w.name("p"))
	if align != AlignDefault {
		p.Append(NewElement(b.w.name("pPr")).Append(
			NewElement(b.w.name("jc"), b.w.attr("val", string(align))),
		))
	}
	if text != "" {
		p.Append(b.w.newRun(text, style))
	}
	b.body.Append(p)
	return &Paragraph{node: p, w: b.w}
}

// AddEmptyParagraph appends a paragraph without runs.
func (b *Builder) AddEmptyParagraph() {
	b.body.Append(NewElement(b.w.name("p")))
}

// Document finalizes the package. The builder must not be used afterwards.
func (b *Builder) Document() *Document {
	b.body.Append(b.sectionProperties())

	doc := &Node{Type: DocumentNode}
	doc.Append(
		&Node{Type: ProcInstNode, Name: xml.Name{Local: "xml"}, Data: `version="1.0" encoding="UTF-8" standalone="yes"`},
		NewText("\n"),
		b.root,
	)
	main := &part{name: defaultMainPart, doc: doc, w: b.w}

	return &Document{
		entries: []*entry{
			{name: contentTypes, method: zip.Deflate, modified: BuildTime, data: []byte(contentTypesXML)},
			{name: packageRels, method: zip.Deflate, modified: BuildTime, data: []byte(packageRelsXML)},
			{name: defaultMainPart, method: zip.Deflate, modified: BuildTime},
		},
		parts:    map[string]*part{defaultMainPart: main},
		mainPart: main,
		body:     b.body,
	}
}

func (b *Builder) sectionProperties() *Node {
	w := b.w
	twips := func(mm float64) string { return strconv.Itoa(MillimetersToTwips(mm)) }
	return NewElement(w.name("sectPr")).Append(
		NewElement(w.name("pgSz"),
			w.attr("w", twips(a4WidthMM)),
			w.attr("h", twips(a4HeightMM)),
		),
		NewElement(w.name("pgMar"),
			w.attr("top", twips(20)),
			w.attr("right", twips(15)),
			w.attr("bottom", twips(20)),
			w.attr("left", twips(30)),
			w.attr("header", twips(12.5)),
			w.attr("footer", twips(12.5)),
			w.attr("gutter", "0"),
		),
	)
}
