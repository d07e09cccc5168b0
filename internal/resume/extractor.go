// Package resume provides the document skill extractor.
//
// A résumé arrives as an opaque PDF blob; it is converted to plain text and
// scanned against the catalog's keyword tables. Any extraction failure is
// recovered locally with a deterministic fallback summary, so no error ever
// reaches the caller.
package resume

import (
	"log"

	"github.com/jonathan/career-navigator/internal/catalog"
	"github.com/jonathan/career-navigator/internal/types"
)

// Extractor scans documents for skills using the catalog keyword tables.
type Extractor struct {
	catalog *catalog.Catalog
}

// NewExtractor creates an extractor bound to the given catalog.
func NewExtractor(c *catalog.Catalog) *Extractor {
	return &Extractor{catalog: c}
}

// Extract builds a DocumentSummary from a PDF blob.
//
// A nil or empty document returns nil: no document supplied is a normal
// state. Corrupt or unreadable input yields the deterministic fallback
// summary; the failure is logged but never propagated.
func (e *Extractor) Extract(document []byte) *types.DocumentSummary {
	if len(document) == 0 {
		return nil
	}

	text, err := extractText(document)
	if err != nil {
		log.Printf("resume: text extraction failed, using fallback summary: %v", err)
		return FallbackSummary()
	}

	return e.scan(text)
}
