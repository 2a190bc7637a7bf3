package driven

import "github.com/persona-labs/personagen-cli/internal/core/domain"

// PersonaStore persists the final persona document.
type PersonaStore interface {
	// Save writes the document for the given account and returns the path
	// of the written artifact. The store creates its target directory when
	// absent.
	Save(accountID string, doc domain.PersonaDocument) (string, error)
}

// RedirectablePersonaStore is an optional extension for stores whose target
// directory can be redirected per run. Stores that do not implement it keep
// their configured destination.
type RedirectablePersonaStore interface {
	PersonaStore

	// WithDir returns a store writing to dir. An empty dir returns the
	// receiver unchanged.
	WithDir(dir string) PersonaStore
}
