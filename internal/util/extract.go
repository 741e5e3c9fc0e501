package util

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MinResumeChars is the minimum number of non-whitespace characters an
// extracted resume must contain before it is worth a paid model call.
const MinResumeChars = 50

const mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// ExtractText converts raw document bytes into a single text blob based on
// the declared media type. Extraction is purely local.
func ExtractText(data []byte, mime string) (string, error) {
	switch mime {
	case "application/pdf":
		return extractPDFText(data)
	case mimeDocx, "application/msword":
		return extractDocxText(data)
	case "text/plain", "text/markdown", "text/rtf":
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", mime)
	}
}

// extractPDFText walks the pages in order and joins each page's recovered
// text with a single newline.
func extractPDFText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var pages []string
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}

	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

func extractDocxText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

// CountNonWhitespace reports how many characters of s are not whitespace.
func CountNonWhitespace(s string) int {
	count := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}
