package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"talentsift/internal/domain"
	"talentsift/internal/service"
)

// MockAnalysisService is a mock implementation of service.AnalysisService.
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) Analyze(ctx context.Context, input service.AnalyzeInput) (*domain.ResumeAnalysis, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumeAnalysis), args.Error(1)
}
