package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// NodeType identifies the kind of a Node.
type NodeType int

const (
	// DocumentNode is the root of a parsed part; its children are the top-level tokens.
	DocumentNode NodeType = iota
	ElementNode
	TextNode
	CommentNode
	ProcInstNode
	DirectiveNode
)

// Node is a mutable XML tree node.
//
// Names keep the prefix exactly as written in the source (Name.Space holds the
// prefix, not the namespace URI), so a parsed part serializes back with the
// same prefixes and namespace declarations that Word expects.
type Node struct {
	Type     NodeType
	Name     xml.Name
	Attr     []xml.Attr
	Data     string
	Children []*Node
}

// ParseXML parses data into a node tree without translating namespace prefixes.
func ParseXML(data []byte) (*Node, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	root := &Node{Type: DocumentNode}
	stack := []*Node{root}

	for {
		token, err := decoder.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		parent := stack[len(stack)-1]
		switch t := token.(type) {
		case xml.StartElement:
			n := &Node{Type: ElementNode, Name: t.Name}
			if len(t.Attr) > 0 {
				n.Attr = append([]xml.Attr(nil), t.Attr...)
			}
			parent.Children = append(parent.Children, n)
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 1 {
				return nil, fmt.Errorf("unexpected end element </%s>", qualified(t.Name))
			}
			if parent.Name != t.Name {
				return nil, fmt.Errorf("element <%s> closed by </%s>", qualified(parent.Name), qualified(t.Name))
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			parent.Children = append(parent.Children, &Node{Type: TextNode, Data: string(t)})
		case xml.Comment:
			parent.Children = append(parent.Children, &Node{Type: CommentNode, Data: string(t)})
		case xml.ProcInst:
			parent.Children = append(parent.Children, &Node{
				Type: ProcInstNode,
				Name: xml.Name{Local: t.Target},
				Data: string(t.Inst),
			})
		case xml.Directive:
			parent.Children = append(parent.Children, &Node{Type: DirectiveNode, Data: string(t)})
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("unclosed element <%s>", qualified(stack[len(stack)-1].Name))
	}
	return root, nil
}

// NewElement creates an element node.
func NewElement(name xml.Name, attrs ...xml.Attr) *Node {
	return &Node{Type: ElementNode, Name: name, Attr: attrs}
}

// NewText creates a character data node.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Data: text}
}

// Append adds children and returns n.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Root returns the first element child of a document node.
func (n *Node) Root() *Node {
	for _, c := range n.Children {
		if c.Type == ElementNode {
			return c
		}
	}
	return nil
}

// Marshal serializes the tree.
func (n *Node) Marshal() []byte {
	var buf bytes.Buffer
	n.write(&buf)
	return buf.Bytes()
}

func (n *Node) write(buf *bytes.Buffer) {
	switch n.Type {
	case DocumentNode:
		for _, c := range n.Children {
			c.write(buf)
		}
	case ElementNode:
		buf.WriteByte('<')
		buf.WriteString(qualified(n.Name))
		for _, a := range n.Attr {
			buf.WriteByte(' ')
			buf.WriteString(qualified(a.Name))
			buf.WriteString(`="`)
			buf.WriteString(attrEscaper.Replace(a.Value))
			buf.WriteByte('"')
		}
		if len(n.Children) == 0 {
			buf.WriteString("/>")
			return
		}
		buf.WriteByte('>')
		for _, c := range n.Children {
			c.write(buf)
		}
		buf.WriteString("</")
		buf.WriteString(qualified(n.Name))
		buf.WriteByte('>')
	case TextNode:
		buf.WriteString(textEscaper.Replace(n.Data))
	case CommentNode:
		buf.WriteString("<!--")
		buf.WriteString(n.Data)
		buf.WriteString("-->")
	case ProcInstNode:
		buf.WriteString("<?")
		buf.WriteString(n.Name.Local)
		// The decoder drops the whitespace between target and instruction.
		if n.Data != "" && !isXMLSpace(n.Data[0]) {
			buf.WriteByte(' ')
		}
		buf.WriteString(n.Data)
		buf.WriteString("?>")
	case DirectiveNode:
		buf.WriteString("<!")
		buf.WriteString(n.Data)
		buf.WriteByte('>')
	}
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\r", "&#xD;")
	attrEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\t", "&#x9;", "\n", "&#xA;", "\r", "&#xD;",
	)
)

func isXMLSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func qualified(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
