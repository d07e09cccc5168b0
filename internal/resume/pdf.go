package resume

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractText converts a PDF blob into concatenated plain text. Pages that
// fail to decode are skipped; the document only fails as a whole when no
// page yields text.
func extractText(document []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs; treat that the same
	// as a parse error so the fallback policy applies.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(document), int64(len(document)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var sb strings.Builder
	var lastErr error
	for n := 1; n <= reader.NumPage(); n++ {
		page := reader.Page(n)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			lastErr = fmt.Errorf("page %d: %w", n, err)
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		if lastErr != nil {
			return "", fmt.Errorf("no text extracted: %w", lastErr)
		}
		return "", fmt.Errorf("no text extracted from pdf")
	}

	return result, nil
}
