// Package export renders fully generated projects to Office Open XML
// downloads. Rendering is deterministic: the same project snapshot always
// produces byte-identical output, so archive entries are written in a fixed
// order with zeroed timestamps.
package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

// MIME types for the two download formats
const (
	MIMETypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMETypePptx = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// SectionContent is one rendered unit: a document section or a slide
type SectionContent struct {
	Title   string
	Content string
}

type zipEntry struct {
	name string
	data []byte
}

// writeArchive writes the entries to an OOXML zip container in the given
// order with no timestamps, so output bytes depend only on content.
func writeArchive(entries []zipEntry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range entries {
		header := &zip.FileHeader{Name: entry.name, Method: zip.Deflate}
		w, err := zw.CreateHeader(header)
		if err != nil {
			return nil, fmt.Errorf("creating archive entry %s: %w", entry.name, err)
		}
		if _, err := w.Write(entry.data); err != nil {
			return nil, fmt.Errorf("writing archive entry %s: %w", entry.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}
	return buf.Bytes(), nil
}

// xmlEscape escapes text for embedding in XML character data or attributes
func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// contentLines splits generated content into non-blank lines with any
// leading bullet decoration stripped
func contentLines(content string) []string {
	lines := []string{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimLeft(line, "•-* \t"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Filename builds the download filename for a project, spaces replaced so
// the name survives Content-Disposition handling everywhere
func Filename(projectName, extension string) string {
	return strings.ReplaceAll(projectName, " ", "_") + "." + extension
}
