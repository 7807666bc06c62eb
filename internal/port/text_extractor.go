package port

// TextExtractor turns an uploaded document into plain text, dispatching on
// the declared media type.
type TextExtractor interface {
	Extract(data []byte, contentType string) (string, error)
}
