// Package extract turns uploaded resume documents into plain text.
//
// Two formats are supported: PDF (page-based, pages concatenated in order)
// and DOCX (paragraph-based, paragraphs joined with newlines). Reading order
// is preserved; layout, columns, tables, and styling are not.
package extract

import (
	"fmt"

	"talentsift/internal/domain"
)

// Extractor dispatches text extraction by declared media type.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the plain text of the document. The declared content type
// alone decides the loader; unrecognized types are rejected before any byte
// of the body is parsed.
func (e *Extractor) Extract(data []byte, contentType string) (string, error) {
	switch domain.AllowedContentTypes[contentType] {
	case domain.FileTypePDF:
		return extractPDFText(data)
	case domain.FileTypeDOCX:
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, contentType)
	}
}
