package docx

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// wml resolves WordprocessingML element names under the prefix a part binds
// to the main namespace (almost always "w").
type wml struct {
	prefix string
}

func (w wml) name(local string) xml.Name {
	return xml.Name{Space: w.prefix, Local: local}
}

func (w wml) is(n *Node, local string) bool {
	return n != nil && n.Type == ElementNode && n.Name.Space == w.prefix && n.Name.Local == local
}

func (w wml) children(n *Node, local string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if w.is(c, local) {
			out = append(out, c)
		}
	}
	return out
}

// prefixFor returns the prefix root declares for namespace, or fallback.
func prefixFor(root *Node, namespace, fallback string) string {
	if root == nil {
		return fallback
	}
	for _, a := range root.Attr {
		if a.Value != namespace {
			continue
		}
		if a.Name.Space == "xmlns" {
			return a.Name.Local
		}
		if a.Name.Space == "" && a.Name.Local == "xmlns" {
			return ""
		}
	}
	return fallback
}

// inlineContainers hold runs inside a paragraph.
var inlineContainers = map[string]bool{
	"hyperlink":  true,
	"smartTag":   true,
	"fldSimple":  true,
	"ins":        true,
	"customXml":  true,
	"sdt":        true,
	"sdtContent": true,
	"dir":        true,
	"bdo":        true,
}

// Paragraph is a w:p element.
type Paragraph struct {
	node *Node
	w    wml
}

// Run is a w:r element.
type Run struct {
	node *Node
	w    wml
}

// Text returns the text carried by the run. Tabs and breaks read as "\t" and "\n".
func (r *Run) Text() string {
	var b strings.Builder
	for _, c := range r.node.Children {
		switch {
		case r.w.is(c, "t"):
			for _, t := range c.Children {
				if t.Type == TextNode {
					b.WriteString(t.Data)
				}
			}
		case r.w.is(c, "tab"):
			b.WriteByte('\t')
		case r.w.is(c, "br"), r.w.is(c, "cr"):
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Runs returns the runs of the paragraph in document order, including runs
// nested in hyperlinks, fields and other inline containers.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.Children {
			if c.Type != ElementNode || c.Name.Space != p.w.prefix {
				continue
			}
			if c.Name.Local == "r" {
				runs = append(runs, &Run{node: c, w: p.w})
				continue
			}
			if inlineContainers[c.Name.Local] {
				walk(c)
			}
		}
	}
	walk(p.node)
	return runs
}

// Text returns the concatenated text of every run.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs() {
		b.WriteString(r.Text())
	}
	return b.String()
}

// ReplaceText replaces every occurrence of old in the paragraph text with repl.
// The existing runs are discarded and a single unformatted run carrying the
// result is appended, so run-level formatting inside the paragraph is lost.
// It reports whether old was found.
func (p *Paragraph) ReplaceText(old, repl string) bool {
	text := p.Text()
	if old == "" || !strings.Contains(text, old) {
		return false
	}
	p.SetText(strings.ReplaceAll(text, old, repl))
	return true
}

// SetText removes every run and appends one run carrying text.
func (p *Paragraph) SetText(text string) {
	kept := p.node.Children[:0]
	for _, c := range p.node.Children {
		if c.Type == ElementNode && c.Name.Space == p.w.prefix &&
			(c.Name.Local == "r" || inlineContainers[c.Name.Local]) {
			continue
		}
		kept = append(kept, c)
	}
	p.node.Children = kept
	p.node.Append(p.w.newRun(text, RunStyle{}))
}

// RunStyle describes run formatting used when building documents.
type RunStyle struct {
	Bold bool
	// SizePt is the font size in points. Zero keeps the document default.
	SizePt float64
}

// newRun builds a w:r carrying text, mapping "\t" and "\n" to w:tab and w:br.
func (w wml) newRun(text string, style RunStyle) *Node {
	run := NewElement(w.name("r"))
	if props := w.runProperties(style); props != nil {
		run.Append(props)
	}

	var segment strings.Builder
	flush := func() {
		if segment.Len() == 0 {
			return
		}
		t := NewElement(w.name("t"), xml.Attr{Name: xml.Name{Space: "xml", Local: "space"}, Value: "preserve"})
		run.Append(t.Append(NewText(segment.String())))
		segment.Reset()
	}
	for _, r := range text {
		switch r {
		case '\t':
			flush()
			run.Append(NewElement(w.name("tab")))
		case '\n':
			flush()
			run.Append(NewElement(w.name("br")))
		case '\r':
		default:
			segment.WriteRune(r)
		}
	}
	flush()
	return run
}

func (w wml) runProperties(style RunStyle) *Node {
	if !style.Bold && style.SizePt == 0 {
		return nil
	}
	props := NewElement(w.name("rPr"))
	if style.Bold {
		props.Append(NewElement(w.name("b")))
	}
	if style.SizePt > 0 {
		size := strconv.Itoa(PointsToHalfPoints(style.SizePt))
		props.Append(
			NewElement(w.name("sz"), w.attr("val", size)),
			NewElement(w.name("szCs"), w.attr("val", size)),
		)
	}
	return props
}

func (w wml) attr(local, value string) xml.Attr {
	return xml.Attr{Name: w.name(local), Value: value}
}
