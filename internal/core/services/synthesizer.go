package services

import (
	"context"
	"fmt"
	"time"

	"github.com/persona-labs/personagen-cli/internal/core/domain"
	"github.com/persona-labs/personagen-cli/internal/core/ports/driven"
	"github.com/persona-labs/personagen-cli/internal/logger"
)

// Generation parameters submitted to the engine.
const (
	// GenerationMaxTokens is the maximum output length.
	GenerationMaxTokens = 1500

	// GenerationTemperature is the sampling temperature.
	GenerationTemperature = 0.7

	// GenerationCandidates is the number of output sequences requested.
	GenerationCandidates = 1
)

// SynthesizerService selects an evidence subset from collected items,
// renders the persona prompt and submits it to the generation engine.
// It is stateless across calls; the engine handle is injected once at
// construction and reused read-only.
type SynthesizerService struct {
	llm        driven.LLMService
	sampleSize int
	now        func() time.Time
}

// NewSynthesizerService creates a new synthesizer using the given engine.
// sampleSize bounds the evidence sample; zero means the default of 5.
func NewSynthesizerService(llm driven.LLMService, sampleSize int) *SynthesizerService {
	if sampleSize <= 0 {
		sampleSize = domain.DefaultSampleSize
	}
	return &SynthesizerService{
		llm:        llm,
		sampleSize: sampleSize,
		now:        time.Now,
	}
}

// WithSampleSize returns a synthesizer with the given evidence bound.
// Values of zero or less return the receiver unchanged.
func (s *SynthesizerService) WithSampleSize(sampleSize int) *SynthesizerService {
	if sampleSize <= 0 {
		return s
	}
	clone := *s
	clone.sampleSize = sampleSize
	return &clone
}

// Synthesize produces a persona document from collected items.
//
// Outcomes:
//   - no items: (nil, domain.ErrNoContent), the engine is never called
//   - no item with usable text: StatusNoEvidence document carrying a
//     warning string, the engine is never called
//   - engine success: StatusGenerated document with the engine text
//     verbatim (including any echo of the prompt)
//   - engine failure: StatusFailed document carrying the error description
//     together with the evidence dump, so evidence is never lost
func (s *SynthesizerService) Synthesize(ctx context.Context, accountID string, items []domain.ContentItem) (*domain.PersonaDocument, error) {
	if len(items) == 0 {
		return nil, domain.ErrNoContent
	}
	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}

	logger.Section("Persona Synthesis")

	sample := domain.BuildEvidenceSample(items, s.sampleSize)
	if sample.IsEmpty() {
		logger.Warn("All sampled items had empty text for %s", accountID)
		return &domain.PersonaDocument{
			AccountID:   accountID,
			Text:        domain.NoEvidenceWarning,
			Status:      domain.StatusNoEvidence,
			GeneratedAt: s.now(),
		}, nil
	}
	logger.Debug("Evidence sample: %d of %d items", len(sample.Items), len(items))

	prompt := RenderPersonaPrompt(sample)
	logger.Debug("Prompt length: %d chars, model: %s", len(prompt), s.llm.ModelName())

	generated, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   GenerationMaxTokens,
		Temperature: GenerationTemperature,
		Candidates:  GenerationCandidates,
	})
	if err != nil {
		genErr := fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
		logger.Warn("%v for %s", genErr, accountID)
		return &domain.PersonaDocument{
			AccountID:   accountID,
			Text:        fmt.Sprintf("Error: %v\n\nData that was analyzed:\n%s", genErr, sample.Render()),
			Status:      domain.StatusFailed,
			ModelName:   s.llm.ModelName(),
			GeneratedAt: s.now(),
		}, nil
	}

	logger.Info("Generated %d chars for %s", len(generated), accountID)
	return &domain.PersonaDocument{
		AccountID:   accountID,
		Text:        generated,
		Status:      domain.StatusGenerated,
		ModelName:   s.llm.ModelName(),
		GeneratedAt: s.now(),
	}, nil
}
