package export

import (
	"fmt"
	"strings"
)

// RenderPptx renders a slideshow project: a title slide carrying the project
// name and topic, then one bullet slide per section.
func RenderPptx(title, topic string, sections []SectionContent) ([]byte, error) {
	styles, err := LoadStyles()
	if err != nil {
		return nil, err
	}
	ss := &styles.Slide

	slideCount := len(sections) + 1

	entries := []zipEntry{
		{"[Content_Types].xml", []byte(buildPptxContentTypes(slideCount))},
		{"_rels/.rels", []byte(pptxRootRels)},
		{"ppt/presentation.xml", []byte(buildPptxPresentation(slideCount, ss))},
		{"ppt/_rels/presentation.xml.rels", []byte(buildPptxPresentationRels(slideCount))},
		{"ppt/theme/theme1.xml", []byte(buildPptxTheme(ss))},
		{"ppt/slideMasters/slideMaster1.xml", []byte(pptxSlideMaster)},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", []byte(pptxSlideMasterRels)},
		{"ppt/slideLayouts/slideLayout1.xml", []byte(pptxSlideLayout)},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", []byte(pptxSlideLayoutRels)},
	}

	entries = append(entries,
		zipEntry{"ppt/slides/slide1.xml", []byte(buildTitleSlide(title, topic, ss))})
	entries = append(entries,
		zipEntry{"ppt/slides/_rels/slide1.xml.rels", []byte(pptxSlideRels)})

	for i, section := range sections {
		n := i + 2
		entries = append(entries,
			zipEntry{fmt.Sprintf("ppt/slides/slide%d.xml", n), []byte(buildBulletSlide(section, ss))})
		entries = append(entries,
			zipEntry{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), []byte(pptxSlideRels)})
	}

	return writeArchive(entries)
}

func buildPptxContentTypes(slideCount int) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>
<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>
<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>
<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&sb, "\n"+`<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i)
	}
	sb.WriteString("\n</Types>")
	return sb.String()
}

const pptxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>
</Relationships>`

func buildPptxPresentation(slideCount int, ss *SlideStyles) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>
<p:sldIdLst>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&sb, `<p:sldId id="%d" r:id="rId%d"/>`, 255+i, i+1)
	}
	fmt.Fprintf(&sb, `</p:sldIdLst>
<p:sldSz cx="%d" cy="%d"/>
<p:notesSz cx="%d" cy="%d"/>
</p:presentation>`, ss.WidthEMU, ss.HeightEMU, ss.HeightEMU, ss.WidthEMU)
	return sb.String()
}

func buildPptxPresentationRels(slideCount int) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&sb, "\n"+`<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, i+1, i)
	}
	fmt.Fprintf(&sb, "\n"+`<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="theme/theme1.xml"/>`, slideCount+2)
	sb.WriteString("\n</Relationships>")
	return sb.String()
}

func buildPptxTheme(ss *SlideStyles) string {
	font := xmlEscape(ss.Font)
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Default">
<a:themeElements>
<a:clrScheme name="Default"><a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1><a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1><a:dk2><a:srgbClr val="44546A"/></a:dk2><a:lt2><a:srgbClr val="E7E6E6"/></a:lt2><a:accent1><a:srgbClr val="4472C4"/></a:accent1><a:accent2><a:srgbClr val="ED7D31"/></a:accent2><a:accent3><a:srgbClr val="A5A5A5"/></a:accent3><a:accent4><a:srgbClr val="FFC000"/></a:accent4><a:accent5><a:srgbClr val="5B9BD5"/></a:accent5><a:accent6><a:srgbClr val="70AD47"/></a:accent6><a:hlink><a:srgbClr val="0563C1"/></a:hlink><a:folHlink><a:srgbClr val="954F72"/></a:folHlink></a:clrScheme>
<a:fontScheme name="Default"><a:majorFont><a:latin typeface="%[1]s"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont><a:minorFont><a:latin typeface="%[1]s"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont></a:fontScheme>
<a:fmtScheme name="Default"><a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:fillStyleLst><a:lnStyleLst><a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln></a:lnStyleLst><a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst><a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:bgFillStyleLst></a:fmtScheme>
</a:themeElements>
</a:theme>`, font)
}

const pptxSlideMaster = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldMaster xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
<p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/></p:spTree></p:cSld>
<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>
<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>
</p:sldMaster>`

const pptxSlideMasterRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>
</Relationships>`

const pptxSlideLayout = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
<p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/></p:spTree></p:cSld>
</p:sldLayout>`

const pptxSlideLayoutRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/>
</Relationships>`

const pptxSlideRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>
</Relationships>`

// buildTitleSlide renders the leading slide: project name large and
// centered, topic beneath it
func buildTitleSlide(title, topic string, ss *SlideStyles) string {
	// Font sizes in DrawingML are hundredths of a point
	titleBox := textBox(2, "Title", ss.WidthEMU/10, ss.HeightEMU/3,
		ss.WidthEMU*8/10, ss.HeightEMU/6,
		[]string{title}, ss.TitleSize*100, true)
	subtitleBox := textBox(3, "Subtitle", ss.WidthEMU/10, ss.HeightEMU/2,
		ss.WidthEMU*8/10, ss.HeightEMU/8,
		[]string{topic}, ss.SubtitleSize*100, false)
	return slideXML(titleBox + subtitleBox)
}

// buildBulletSlide renders one content slide: section title on top, content
// lines as bullets
func buildBulletSlide(section SectionContent, ss *SlideStyles) string {
	titleBox := textBox(2, "Title", ss.WidthEMU/20, ss.HeightEMU/20,
		ss.WidthEMU*9/10, ss.HeightEMU/8,
		[]string{section.Title}, ss.TitleSize*75, true)
	bodyBox := bulletBox(3, ss.WidthEMU/20, ss.HeightEMU/5,
		ss.WidthEMU*9/10, ss.HeightEMU*7/10,
		contentLines(section.Content), ss.BodySize*100)
	return slideXML(titleBox + bodyBox)
}

func slideXML(shapes string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
<p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>` +
		shapes + `</p:spTree></p:cSld></p:sld>`
}

func textBox(id int, name string, x, y, w, h int64, lines []string, size int, bold bool) string {
	boldAttr := "0"
	if bold {
		boldAttr = "1"
	}
	var paras strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&paras,
			`<a:p><a:r><a:rPr lang="en-US" sz="%d" b="%s"/><a:t>%s</a:t></a:r></a:p>`,
			size, boldAttr, xmlEscape(line))
	}
	return shapeXML(id, name, x, y, w, h, paras.String())
}

func bulletBox(id int, x, y, w, h int64, lines []string, size int) string {
	var paras strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&paras,
			`<a:p><a:pPr><a:buChar char="•"/></a:pPr><a:r><a:rPr lang="en-US" sz="%d"/><a:t>%s</a:t></a:r></a:p>`,
			size, xmlEscape(line))
	}
	if paras.Len() == 0 {
		paras.WriteString(`<a:p><a:endParaRPr lang="en-US"/></a:p>`)
	}
	return shapeXML(id, "Content", x, y, w, h, paras.String())
}

func shapeXML(id int, name string, x, y, w, h int64, paragraphs string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`+
		`<p:txBody><a:bodyPr wrap="square"/><a:lstStyle/>%s</p:txBody></p:sp>`,
		id, xmlEscape(name), x, y, w, h, paragraphs)
}
