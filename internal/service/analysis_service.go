package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"talentsift/internal/analyzer"
	"talentsift/internal/config"
	"talentsift/internal/domain"
	"talentsift/internal/port"
)

// AnalyzeInput is the DTO for resume analysis requests.
type AnalyzeInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// AnalysisService defines the resume analysis contract.
type AnalysisService interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*domain.ResumeAnalysis, error)
}

type analysisService struct {
	extractor port.TextExtractor
	annotator port.Annotator
	cfg       *config.UploadConfig
}

// NewAnalysisService creates a new AnalysisService implementation.
func NewAnalysisService(
	extractor port.TextExtractor,
	annotator port.Annotator,
	cfg *config.UploadConfig,
) AnalysisService {
	return &analysisService{
		extractor: extractor,
		annotator: annotator,
		cfg:       cfg,
	}
}

// Analyze runs the full pipeline: load text, annotate once, extract, merge.
// Processing is single-pass and request-scoped; nothing is retained after
// the response. There are no per-extractor error boundaries — a fault in any
// step aborts the whole request rather than returning a partial profile.
func (s *analysisService) Analyze(ctx context.Context, input AnalyzeInput) (*domain.ResumeAnalysis, error) {
	if int64(len(input.Data)) > s.cfg.MaxBytes() {
		return nil, domain.ErrFileTooLarge
	}

	text, err := s.extractor.Extract(input.Data, input.ContentType)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyExtraction
	}

	doc, err := s.annotator.Annotate(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("annotating resume text: %w", err)
	}

	log.Debug().
		Str("filename", input.Filename).
		Int("text_bytes", len(text)).
		Int("entities", len(doc.Entities)).
		Msg("resume annotated")

	return &domain.ResumeAnalysis{
		Filename: input.Filename,
		Analysis: analyzer.Profile(text, doc),
	}, nil
}
