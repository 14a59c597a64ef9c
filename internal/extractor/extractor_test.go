package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"job-finder-backend/internal/domain"
)

func TestExtractRejectsNonPDF(t *testing.T) {
	e := New()

	t.Run("Should fail on empty input", func(t *testing.T) {
		_, err := e.Extract(nil)
		assert.ErrorIs(t, err, domain.ErrUnparseableDocument)
	})

	t.Run("Should fail on non-PDF bytes", func(t *testing.T) {
		_, err := e.Extract([]byte("plain text resume, honest"))
		assert.ErrorIs(t, err, domain.ErrUnparseableDocument)
	})

	t.Run("Should fail gracefully on truncated PDF", func(t *testing.T) {
		// Magic bytes present but the document body is garbage. The parser
		// must surface a parse error, not panic.
		_, err := e.Extract([]byte("%PDF-1.7 not actually a document"))
		assert.ErrorIs(t, err, domain.ErrUnparseableDocument)
	})
}
