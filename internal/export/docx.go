package export

import (
	"fmt"
	"strings"
)

// RenderDocx renders a document project: a centered title followed by one
// heading plus body paragraphs per section.
func RenderDocx(title string, sections []SectionContent) ([]byte, error) {
	styles, err := LoadStyles()
	if err != nil {
		return nil, err
	}

	entries := []zipEntry{
		{"[Content_Types].xml", []byte(docxContentTypes)},
		{"_rels/.rels", []byte(docxRootRels)},
		{"word/_rels/document.xml.rels", []byte(docxDocumentRels)},
		{"word/styles.xml", []byte(buildDocxStyles(&styles.Document))},
		{"word/document.xml", []byte(buildDocxDocument(title, sections))},
	}
	return writeArchive(entries)
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const docxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

func buildDocxStyles(ds *DocumentStyles) string {
	// OOXML font sizes are half-points
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s"/><w:sz w:val="%[2]d"/></w:rPr></w:rPrDefault></w:docDefaults>
<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:rPr><w:b/><w:sz w:val="%[3]d"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:rPr><w:b/><w:sz w:val="%[4]d"/></w:rPr></w:style>
</w:styles>`, xmlEscape(ds.Font), ds.BodySize*2, ds.TitleSize*2, ds.HeadingSize*2)
}

func buildDocxDocument(title string, sections []SectionContent) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	fmt.Fprintf(&sb,
		`<w:p><w:pPr><w:pStyle w:val="Title"/><w:jc w:val="center"/></w:pPr><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		xmlEscape(title))

	for _, section := range sections {
		fmt.Fprintf(&sb,
			`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
			xmlEscape(section.Title))
		for _, line := range strings.Split(section.Content, "\n") {
			fmt.Fprintf(&sb,
				`<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
				xmlEscape(strings.TrimRight(line, " \t")))
		}
	}

	sb.WriteString(`</w:body></w:document>`)
	return sb.String()
}
