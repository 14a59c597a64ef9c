package security

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

// MaxResumeSize caps resume uploads at 10 MiB. Real resumes are far smaller;
// anything bigger is either not a resume or an attempt to exhaust the parser.
const MaxResumeSize = 10 << 20

// %PDF — the only document type the extractor accepts.
var pdfMagic = []byte{0x25, 0x50, 0x44, 0x46}

var (
	ErrEmptyFile        = errors.New("uploaded file is empty")
	ErrFileTooLarge     = errors.New("uploaded file exceeds the size limit")
	ErrNotPDF           = errors.New("only PDF resumes are accepted")
	ErrContentMismatch  = errors.New("file content does not match the .pdf extension")
	ErrMissingExtension = errors.New("file has no extension")
)

// ValidateResumeUpload performs layered checks on a resume upload:
// extension whitelist, size bounds, then magic-byte verification so a renamed
// executable can't reach the PDF parser.
func ValidateResumeUpload(filename string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return ErrMissingExtension
	}
	if ext != ".pdf" {
		return ErrNotPDF
	}

	if len(data) == 0 {
		return ErrEmptyFile
	}
	if len(data) > MaxResumeSize {
		return ErrFileTooLarge
	}

	if !bytes.HasPrefix(data, pdfMagic) {
		return ErrContentMismatch
	}
	return nil
}
