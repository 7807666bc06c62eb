package port

import (
	"context"

	"talentsift/internal/nlp"
)

// Annotator produces the linguistic annotation of extracted resume text.
type Annotator interface {
	Annotate(ctx context.Context, text string) (*nlp.Document, error)
}
