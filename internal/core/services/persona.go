package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/persona-labs/personagen-cli/internal/core/domain"
	"github.com/persona-labs/personagen-cli/internal/core/ports/driven"
	"github.com/persona-labs/personagen-cli/internal/core/ports/driving"
	"github.com/persona-labs/personagen-cli/internal/logger"
)

// Ensure PersonaService implements the interface.
var _ driving.PersonaService = (*PersonaService)(nil)

// PersonaService orchestrates the full pipeline: resolve the account
// reference, collect content, synthesize the persona, save the document.
// Execution is fully sequential; collection completes before synthesis
// begins and synthesis completes before the document is written.
type PersonaService struct {
	collector   *CollectorService
	synthesizer *SynthesizerService
	store       driven.PersonaStore
}

// NewPersonaService creates a new persona orchestration service.
func NewPersonaService(collector *CollectorService, synthesizer *SynthesizerService, store driven.PersonaStore) *PersonaService {
	return &PersonaService{
		collector:   collector,
		synthesizer: synthesizer,
		store:       store,
	}
}

// GeneratePersona profiles the account referenced by accountRef.
//
// Collector failures degrade to an ErrNoContent outcome carrying the typed
// provider error, so the caller sees a diagnostic instead of a crash and no
// partial file is ever written. Every non-nil document, including
// no-evidence warnings and failure-annotated ones, is saved.
func (s *PersonaService) GeneratePersona(ctx context.Context, accountRef string, opts driving.GenerateOptions) (domain.PersonaResult, error) {
	accountID, err := domain.AccountFromProfileURL(accountRef)
	if err != nil {
		return domain.PersonaResult{}, err
	}

	result := domain.PersonaResult{AccountID: accountID}

	items, err := s.collector.Collect(ctx, accountID, opts.Limit)
	if err != nil {
		logger.Warn("Collection failed for %s: %v", accountID, err)
		return result, fmt.Errorf("%w: %w", domain.ErrNoContent, err)
	}
	result.ItemCount = len(items)

	synthesizer := s.synthesizer.WithSampleSize(opts.SampleSize)
	doc, err := synthesizer.Synthesize(ctx, accountID, items)
	if err != nil {
		if errors.Is(err, domain.ErrNoContent) {
			// Nothing to synthesize; no file is written.
			return result, err
		}
		return result, err
	}
	result.Document = doc

	store := s.store
	if opts.OutputDir != "" {
		if redirectable, ok := store.(driven.RedirectablePersonaStore); ok {
			store = redirectable.WithDir(opts.OutputDir)
		}
	}
	path, err := store.Save(accountID, *doc)
	if err != nil {
		return result, fmt.Errorf("save persona: %w", err)
	}
	result.OutputPath = path

	logger.Info("Persona saved to %s", path)
	return result, nil
}
