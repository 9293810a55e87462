package docx

import (
	"strings"
	"testing"
)

func TestParseXMLRoundTripKeepsPrefixes(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<w:document xmlns:w="urn:w" xmlns:mc="urn:mc" mc:Ignorable="w14"><!-- note --><w:body><w:p><w:r><w:t xml:space="preserve"> a &amp; b &lt;c&gt; </w:t></w:r></w:p><w:p/></w:body></w:document>`

	doc, err := ParseXML([]byte(src))
	if err != nil {
		t.Fatalf("ParseXML failed: %v", err)
	}
	if got := string(doc.Marshal()); got != src {
		t.Errorf("round trip mismatch:\n got %s\nwant %s", got, src)
	}

	root := doc.Root()
	if root == nil {
		t.Fatal("expected a root element")
	}
	if root.Name.Space != "w" || root.Name.Local != "document" {
		t.Errorf("root name = %s:%s, expected w:document", root.Name.Space, root.Name.Local)
	}
}

func TestMarshalProcInst(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"declaration", `<?xml version="1.0" encoding="UTF-8"?><a/>`, `<?xml version="1.0" encoding="UTF-8"?><a/>`},
		{"extra whitespace collapses", `<?xml   version="1.0"?><a/>`, `<?xml version="1.0"?><a/>`},
		{"instruction without data", `<?mso-application?><a/>`, `<?mso-application?><a/>`},
	}

	for _, tt := range tests {
		doc, err := ParseXML([]byte(tt.input))
		if err != nil {
			t.Fatalf("%s: ParseXML failed: %v", tt.name, err)
		}
		if got := string(doc.Marshal()); got != tt.expected {
			t.Errorf("%s: Marshal = %q, expected %q", tt.name, got, tt.expected)
		}
	}
}

func TestParseXMLEscapesAttributes(t *testing.T) {
	const src = `<a v="x &quot;y&quot; &amp; z"/>`
	doc, err := ParseXML([]byte(src))
	if err != nil {
		t.Fatalf("ParseXML failed: %v", err)
	}
	if got := string(doc.Marshal()); got != src {
		t.Errorf("Marshal = %s, expected %s", got, src)
	}
}

func TestParseXMLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unclosed", `<a><b></b>`, "unclosed element <a>"},
		{"mismatched", `<a><b></a>`, ""},
		{"stray end", `<a/></b>`, ""},
	}
	for _, tt := range tests {
		_, err := ParseXML([]byte(tt.src))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if tt.want != "" && !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q does not contain %q", tt.name, err, tt.want)
		}
	}
}
