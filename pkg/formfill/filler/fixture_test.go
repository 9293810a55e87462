package filler

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ukaji3/formfill-go/pkg/formfill/docx"
)

const xmlDecl = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const wordNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`

// para renders a paragraph whose text is split over one run per argument.
func para(runs ...string) string {
	s := "<w:p>"
	for _, r := range runs {
		s += `<w:r><w:t xml:space="preserve">` + r + `</w:t></w:r>`
	}
	return s + "</w:p>"
}

func cell(paragraphs ...string) string {
	s := "<w:tc>"
	for _, p := range paragraphs {
		s += p
	}
	return s + "</w:tc>"
}

// writeTemplate writes a docx package with the given body XML and optional
// header XML and returns its path.
func writeTemplate(t *testing.T, dir, body, header string) string {
	t.Helper()
	files := [][2]string{
		{"_rels/.rels", `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`},
		{"word/document.xml", xmlDecl + `<w:document ` + wordNS + `><w:body>` + body + `</w:body></w:document>`},
	}
	if header != "" {
		files = append(files,
			[2]string{"word/_rels/document.xml.rels", `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/header" Target="header1.xml"/></Relationships>`},
			[2]string{"word/header1.xml", xmlDecl + `<w:hdr ` + wordNS + `>` + header + `</w:hdr>`},
		)
	}

	path := filepath.Join(dir, "template.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	zw := zip.NewWriter(f)
	for _, file := range files {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: file[0], Method: zip.Deflate, Modified: docx.BuildTime})
		require.NoError(t, err)
		_, err = w.Write([]byte(file[1]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

// regionTexts returns the paragraph texts of every region in priority order.
func regionTexts(t *testing.T, path string) [][]string {
	t.Helper()
	doc, err := docx.Open(path)
	require.NoError(t, err)
	var out [][]string
	for _, r := range doc.Regions() {
		var texts []string
		for _, p := range r.Paragraphs() {
			texts = append(texts, p.Text())
		}
		out = append(out, texts)
	}
	return out
}

// rawPart returns the bytes of one entry of the package at path.
func rawPart(t *testing.T, path, name string) string {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("%s has no entry %s", path, name)
	return ""
}
