package docx

// RegionKind identifies a document zone.
type RegionKind int

const (
	RegionBody RegionKind = iota
	RegionTableCell
	RegionHeader
	RegionFooter
)

func (k RegionKind) String() string {
	switch k {
	case RegionBody:
		return "body"
	case RegionTableCell:
		return "table cell"
	case RegionHeader:
		return "header"
	case RegionFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// Region is a document zone holding an ordered sequence of paragraphs.
type Region interface {
	Kind() RegionKind
	Paragraphs() []*Paragraph
}

// container is a Region backed by an element whose direct w:p children are
// its paragraphs: w:body, w:tc, w:hdr or w:ftr.
type container struct {
	kind RegionKind
	node *Node
	w    wml
}

func (c *container) Kind() RegionKind { return c.kind }

func (c *container) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, n := range c.w.children(c.node, "p") {
		out = append(out, &Paragraph{node: n, w: c.w})
	}
	return out
}

// Table is a top-level w:tbl of the document body.
type Table struct {
	node *Node
	w    wml
}

// Cells returns the table cells in row-major order.
func (t *Table) Cells() []Region {
	var cells []Region
	for _, row := range t.w.children(t.node, "tr") {
		for _, cell := range t.w.children(row, "tc") {
			cells = append(cells, &container{kind: RegionTableCell, node: cell, w: t.w})
		}
	}
	return cells
}

