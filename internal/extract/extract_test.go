package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Ada Lovelace</w:t></w:r></w:p>
    <w:p><w:r><w:t>Engineer at Acme</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestFromBytesDocx(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)

	text, err := FromBytes(data, mimeDOCX, "cv.docx")
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if !strings.Contains(text, "Ada Lovelace") || !strings.Contains(text, "Engineer at Acme") {
		t.Fatalf("extracted text = %q", text)
	}
}

func TestFromBytesDocxReportedAsZip(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)

	text, err := FromBytes(data, "application/zip", "cv.docx")
	if err != nil {
		t.Fatalf("FromBytes with zip mime: %v", err)
	}
	if !strings.Contains(text, "Ada Lovelace") {
		t.Fatalf("extracted text = %q", text)
	}
}

func TestFromBytesUnsupported(t *testing.T) {
	_, err := FromBytes([]byte("plain text"), "text/plain", "cv.txt")
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
}

func TestNormalizeMimeTypeSniffsPDF(t *testing.T) {
	got := normalizeMimeType("application/octet-stream", "resume.bin", []byte("%PDF-1.7 ..."))
	if got != mimePDF {
		t.Fatalf("normalizeMimeType = %q, want %q", got, mimePDF)
	}
}

func TestNormalizeMimeTypeUsesExtension(t *testing.T) {
	got := normalizeMimeType("", "resume.docx", nil)
	if got != mimeDOCX {
		t.Fatalf("normalizeMimeType = %q, want %q", got, mimeDOCX)
	}
}

func TestStripDocxXMLParagraphBreaks(t *testing.T) {
	text := stripDocxXML(sampleDocumentXML)
	lines := strings.Split(text, "\n")
	var nonEmpty []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			nonEmpty = append(nonEmpty, strings.TrimSpace(l))
		}
	}
	if len(nonEmpty) != 2 {
		t.Fatalf("expected two paragraphs, got %q", text)
	}
}
