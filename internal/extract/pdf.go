package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"talentsift/internal/domain"
)

// extractPDFText concatenates the text of every page in page order. Pages
// without a text layer contribute nothing; a fully image-based PDF therefore
// yields an empty string, which the caller treats as an empty extraction.
func extractPDFText(data []byte) (text string, err error) {
	// The pdf reader panics on some malformed files; surface those as a
	// parse error instead of taking down the request goroutine.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", domain.ErrMalformedDocument, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// A damaged page is skipped; the remaining pages still contribute.
			continue
		}
		b.WriteString(pageText)
	}
	return b.String(), nil
}
