package domain

import "errors"

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrEmptyExtraction     = errors.New("could not extract text from document")
	ErrMalformedDocument   = errors.New("document could not be parsed")
)
