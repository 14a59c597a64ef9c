// Package extractor produces best-effort candidate profiles from resume PDFs.
// Field recognition is a pipeline of independent matchers; a matcher that
// finds nothing leaves its field empty instead of failing the document.
package extractor

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"job-finder-backend/internal/domain"
)

// %PDF magic bytes; anything else is rejected before the parser runs.
var pdfMagic = []byte{0x25, 0x50, 0x44, 0x46}

type PDFExtractor struct{}

func New() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract parses the PDF and runs the field matchers over its plain text.
// It fails only when the bytes are not a readable PDF; missing fields are
// returned empty. Extraction is deterministic, so re-extracting the same
// bytes yields the same profile.
func (e *PDFExtractor) Extract(data []byte) (*domain.CandidateProfile, error) {
	if len(data) == 0 || !bytes.HasPrefix(data, pdfMagic) {
		return nil, domain.ErrUnparseableDocument
	}

	text, err := extractText(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnparseableDocument, err)
	}

	return &domain.CandidateProfile{
		Name:   extractName(text),
		Email:  extractEmail(text),
		Phone:  extractPhone(text),
		Skills: extractSkills(text),
	}, nil
}

// extractText pulls the plain text of every page. The pdf library panics on
// some malformed cross-reference tables, so the recover converts that into a
// regular parse error.
func extractText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
