// Package driving defines the interfaces through which the outside world
// drives the core (primary ports in hexagonal architecture). The CLI
// adapter calls these; core services implement them.
package driving

import (
	"context"

	"github.com/persona-labs/personagen-cli/internal/core/domain"
)

// GenerateOptions configures a persona generation run.
type GenerateOptions struct {
	// Limit bounds items fetched per content type (default 25).
	Limit int

	// SampleSize bounds the evidence sample (default 5).
	SampleSize int

	// OutputDir overrides the configured output directory when non-empty.
	OutputDir string
}

// PersonaService runs the full pipeline: resolve account, collect content,
// synthesize the persona, save the document.
type PersonaService interface {
	// GeneratePersona profiles the account referenced by accountRef,
	// which may be a profile URL or a bare account name.
	//
	// Domain outcomes are returned as values, not failures: a run with no
	// collectable content yields (result, domain.ErrNoContent) with a nil
	// Document and no file written; empty-evidence and engine-failure
	// outcomes yield a saved document with the matching status.
	GeneratePersona(ctx context.Context, accountRef string, opts GenerateOptions) (domain.PersonaResult, error)
}
