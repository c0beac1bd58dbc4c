package resume

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/artem13815/interview/pkg/logger"
)

// Extraction is the outcome of reading one resume.
type Extraction struct {
	Info CandidateInfo
	Text string
	// TextFailed is set when the file could not be read; Info is then empty
	// and the candidate fills the form by hand.
	TextFailed bool
}

// ExtractionUseCase turns uploaded resumes into candidate info.
type ExtractionUseCase interface {
	FromFile(ctx context.Context, filename string, data []byte) (Extraction, error)
	FromText(text string) Extraction
}

type extractionService struct {
	log *zap.Logger
}

// NewExtractionService creates the default implementation.
func NewExtractionService(log *zap.Logger) ExtractionUseCase {
	return &extractionService{log: logger.OrNop(log)}
}

// FromFile rejects unsupported formats. Any other failure degrades to an
// empty Extraction.
func (s *extractionService) FromFile(_ context.Context, filename string, data []byte) (Extraction, error) {
	if !SupportedExt(filename) {
		return Extraction{}, ErrUnsupportedFormat
	}
	text, err := ParseResumeText(filename, data)
	if err != nil {
		s.log.Warn("resume text extraction failed",
			zap.String("filename", filename),
			zap.Int("sizeB", len(data)),
			zap.Error(err),
		)
		return Extraction{TextFailed: true}, nil
	}
	return s.FromText(text), nil
}

func (s *extractionService) FromText(text string) Extraction {
	text = strings.TrimSpace(text)
	info := ExtractCandidateInfo(text)
	s.log.Debug("resume info extracted",
		zap.Int("chars", len(text)),
		zap.Bool("name", info.Name != ""),
		zap.Bool("email", info.Email != ""),
		zap.Bool("phone", info.Phone != ""),
		zap.String("head", logger.TruncateForLog(text, 80)),
	)
	return Extraction{Info: info, Text: text}
}
