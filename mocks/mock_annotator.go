package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"talentsift/internal/nlp"
)

// MockAnnotator is a mock implementation of port.Annotator.
type MockAnnotator struct {
	mock.Mock
}

func (m *MockAnnotator) Annotate(ctx context.Context, text string) (*nlp.Document, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nlp.Document), args.Error(1)
}
