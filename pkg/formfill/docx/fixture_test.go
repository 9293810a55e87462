package docx

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

type zipFile struct {
	name string
	body string
}

const testContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/></Types>`

const testPackageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

const testDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId7" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer" Target="footer1.xml"/><Relationship Id="rId6" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/header" Target="header1.xml"/><Relationship Id="rId9" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://example.com" TargetMode="External"/></Relationships>`

const testDocument = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body>
<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:rPr><w:b/></w:rPr><w:t>Справка</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">ФИО </w:t></w:r><w:hyperlink r:id="rId9"><w:r><w:t>студента</w:t></w:r></w:hyperlink></w:p>
<w:p><w:r><w:t>[ОТ</w:t></w:r><w:r><w:rPr><w:i/></w:rPr><w:t>ВЕТ]</w:t></w:r><w:bookmarkStart w:id="0" w:name="a"/><w:bookmarkEnd w:id="0"/></w:p>
<w:tbl><w:tblPr/><w:tr><w:tc><w:p><w:r><w:t>Группа</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>[ОТВЕТ]</w:t></w:r></w:p></w:tc></w:tr><w:tr><w:tc><w:p><w:r><w:t>Курс</w:t></w:r><w:r><w:tab/><w:t>[ОТВЕТ]</w:t></w:r></w:p></w:tc><w:tc><w:p/></w:tc></w:tr></w:tbl>
<w:sectPr><w:headerReference w:type="default" r:id="rId6"/><w:footerReference w:type="default" r:id="rId7"/></w:sectPr>
</w:body></w:document>`

const testHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:hdr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:p><w:r><w:t>Кафедра</w:t></w:r></w:p><w:p><w:r><w:t>[ОТВЕТ]</w:t></w:r></w:p></w:hdr>`

const testFooter = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:ftr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:p><w:r><w:t>Подпись [ОТВЕТ]</w:t></w:r></w:p></w:ftr>`

func testPackage() []zipFile {
	return []zipFile{
		{"[Content_Types].xml", testContentTypes},
		{"_rels/.rels", testPackageRels},
		{"word/document.xml", testDocument},
		{"word/_rels/document.xml.rels", testDocumentRels},
		{"word/header1.xml", testHeader},
		{"word/footer1.xml", testFooter},
		{"word/media/", ""},
	}
}

// writePackage writes files as a zip archive and returns its path.
func writePackage(t *testing.T, files []zipFile) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, file := range files {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: file.name, Method: zip.Deflate, Modified: BuildTime})
		if err != nil {
			t.Fatalf("create entry %s: %v", file.name, err)
		}
		if _, err := w.Write([]byte(file.body)); err != nil {
			t.Fatalf("write entry %s: %v", file.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return path
}
