package domain

// FileType represents the document formats accepted for analysis.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
)

// MIME types for the two supported upload formats.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// AllowedContentTypes maps declared MIME content types to FileType.
// Dispatch happens on the declared type only; anything absent from this map
// is rejected before the body is parsed.
var AllowedContentTypes = map[string]FileType{
	ContentTypePDF:  FileTypePDF,
	ContentTypeDOCX: FileTypeDOCX,
}
