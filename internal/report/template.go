package report

import (
	"archive/zip"
	"bytes"
)

// placeholder markers substituted by Write via docx.Replace.
const (
	placeholderDate      = "{{Date}}"
	placeholderChecklist = "{{ChecklistName}}"
	placeholderContent   = "{{Content}}"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>` + placeholderChecklist + `</w:t></w:r></w:p>
<w:p><w:r><w:t>` + placeholderDate + `</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">` + placeholderContent + `</w:t></w:r></w:p>
<w:sectPr/>
</w:body>
</w:document>`

// buildTemplate assembles a minimal OOXML word-processing document in
// memory: no compilation summary is hand-authored ahead of time, so
// there is no binary .docx fixture to embed. The four parts below are
// the package's declared content types, the root relationship pointing
// at the document part, the document part itself, and the document
// part's (empty) relationships.
func buildTemplate() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := map[string]string{
		"[Content_Types].xml":          contentTypesXML,
		"_rels/.rels":                  rootRelsXML,
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": documentRelsXML,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(content)); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
