package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"talentsift/internal/config"
	"talentsift/internal/domain"
	"talentsift/internal/nlp"
	"talentsift/internal/service"
	"talentsift/mocks"
)

func newTestService(extractor *mocks.MockTextExtractor, annotator *mocks.MockAnnotator) service.AnalysisService {
	return service.NewAnalysisService(extractor, annotator, &config.UploadConfig{MaxFileSizeMB: 1})
}

func TestAnalyze_RejectsOversizedUpload(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	annotator := new(mocks.MockAnnotator)
	svc := newTestService(extractor, annotator)

	data := make([]byte, 1024*1024+1)
	_, err := svc.Analyze(context.Background(), service.AnalyzeInput{
		Filename:    "big.pdf",
		ContentType: domain.ContentTypePDF,
		Data:        data,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	extractor.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestAnalyze_PropagatesExtractorError(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	annotator := new(mocks.MockAnnotator)
	svc := newTestService(extractor, annotator)

	data := []byte("body")
	extractor.On("Extract", data, "text/plain").
		Return("", domain.ErrUnsupportedFileType)

	_, err := svc.Analyze(context.Background(), service.AnalyzeInput{
		Filename:    "resume.txt",
		ContentType: "text/plain",
		Data:        data,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	annotator.AssertNotCalled(t, "Annotate", mock.Anything, mock.Anything)
	extractor.AssertExpectations(t)
}

func TestAnalyze_WhitespaceOnlyTextIsEmptyExtraction(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	annotator := new(mocks.MockAnnotator)
	svc := newTestService(extractor, annotator)

	data := []byte("scanned")
	extractor.On("Extract", data, domain.ContentTypePDF).Return("  \n\t ", nil)

	_, err := svc.Analyze(context.Background(), service.AnalyzeInput{
		Filename:    "scan.pdf",
		ContentType: domain.ContentTypePDF,
		Data:        data,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyExtraction)
	annotator.AssertNotCalled(t, "Annotate", mock.Anything, mock.Anything)
}

func TestAnalyze_WrapsAnnotatorError(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	annotator := new(mocks.MockAnnotator)
	svc := newTestService(extractor, annotator)

	data := []byte("body")
	modelErr := errors.New("model exploded")
	extractor.On("Extract", data, domain.ContentTypePDF).Return("some resume text", nil)
	annotator.On("Annotate", mock.Anything, "some resume text").Return(nil, modelErr)

	_, err := svc.Analyze(context.Background(), service.AnalyzeInput{
		Filename:    "resume.pdf",
		ContentType: domain.ContentTypePDF,
		Data:        data,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, modelErr)
	assert.Contains(t, err.Error(), "annotating resume text")
}

func TestAnalyze_ReturnsMergedProfile(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	annotator := new(mocks.MockAnnotator)
	svc := newTestService(extractor, annotator)

	text := "Jane Doe\njane@example.com\nPython and Docker\n"
	doc := &nlp.Document{
		Text: text,
		Entities: []nlp.Entity{
			{Text: "Jane Doe", Category: nlp.CategoryPerson, Start: 0, End: 8},
		},
	}
	data := []byte("pdf bytes")
	extractor.On("Extract", data, domain.ContentTypePDF).Return(text, nil)
	annotator.On("Annotate", mock.Anything, text).Return(doc, nil)

	result, err := svc.Analyze(context.Background(), service.AnalyzeInput{
		Filename:    "jane.pdf",
		ContentType: domain.ContentTypePDF,
		Data:        data,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "jane.pdf", result.Filename)
	require.NotNil(t, result.Analysis.PersonalInfo.FullName)
	assert.Equal(t, "Jane Doe", *result.Analysis.PersonalInfo.FullName)
	require.NotNil(t, result.Analysis.PersonalInfo.Email)
	assert.Equal(t, "jane@example.com", *result.Analysis.PersonalInfo.Email)
	assert.Equal(t, []string{"Docker", "Python"}, result.Analysis.Skills)
	assert.Empty(t, result.Analysis.Education)
	assert.Empty(t, result.Analysis.WorkExperience.JobRolesAndCompanies)

	extractor.AssertExpectations(t)
	annotator.AssertExpectations(t)
}

func TestAnalyze_UploadAtLimitIsAccepted(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	annotator := new(mocks.MockAnnotator)
	svc := newTestService(extractor, annotator)

	data := make([]byte, 1024*1024)
	text := "exactly at the limit"
	extractor.On("Extract", data, domain.ContentTypePDF).Return(text, nil)
	annotator.On("Annotate", mock.Anything, text).Return(&nlp.Document{Text: text}, nil)

	result, err := svc.Analyze(context.Background(), service.AnalyzeInput{
		Filename:    "limit.pdf",
		ContentType: domain.ContentTypePDF,
		Data:        data,
	})

	require.NoError(t, err)
	assert.Equal(t, "limit.pdf", result.Filename)
}
