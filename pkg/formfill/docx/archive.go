package docx

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"path"
	"strings"
)

// OOXML namespaces and relationship types used by WordprocessingML packages.
const (
	nsW       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPkgRels = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"

	relOfficeDocument = nsR + "/officeDocument"
	relHeader         = nsR + "/header"
	relFooter         = nsR + "/footer"

	defaultMainPart = "word/document.xml"
	packageRels     = "_rels/.rels"
	contentTypes    = "[Content_Types].xml"
)

// relationship is one entry of a .rels part.
type relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

type relationships struct {
	Items []relationship `xml:"Relationship"`
}

// readZipFile returns the content of the named entry, or nil if it is absent.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			return readEntry(f)
		}
	}
	return nil, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parseRelationships decodes a .rels part, keeping entry order.
func parseRelationships(data []byte) ([]relationship, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var rels relationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, err
	}
	return rels.Items, nil
}

// relsPathFor returns the .rels part describing relationships of partName.
// For example word/document.xml -> word/_rels/document.xml.rels.
func relsPathFor(partName string) string {
	dir, file := path.Split(partName)
	return dir + "_rels/" + file + ".rels"
}

// resolveRelativePath resolves a relationship target against the directory of
// the source part. Absolute targets are package-root relative.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return strings.TrimPrefix(path.Clean(path.Join(baseDir, target)), "/")
}

// findMainPart locates the main document part through the package relationships.
func findMainPart(r *zip.Reader) (string, error) {
	data, err := readZipFile(r, packageRels)
	if err != nil {
		return "", err
	}
	rels, err := parseRelationships(data)
	if err != nil {
		return "", err
	}
	for _, rel := range rels {
		if rel.Type == relOfficeDocument {
			return resolveRelativePath(rel.Target, ""), nil
		}
	}
	return defaultMainPart, nil
}
