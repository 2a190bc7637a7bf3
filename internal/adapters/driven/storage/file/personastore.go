// Package file provides the filesystem persona store.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/persona-labs/personagen-cli/internal/core/domain"
	"github.com/persona-labs/personagen-cli/internal/core/ports/driven"
)

// Ensure PersonaStore implements the interfaces.
var (
	_ driven.PersonaStore             = (*PersonaStore)(nil)
	_ driven.RedirectablePersonaStore = (*PersonaStore)(nil)
)

// DefaultOutputDir is used when no directory is configured.
const DefaultOutputDir = "output"

// PersonaStore writes persona documents as UTF-8 text files named
// <account>_persona.txt in the output directory.
type PersonaStore struct {
	dir string
}

// NewPersonaStore creates a persona store rooted at dir.
func NewPersonaStore(dir string) *PersonaStore {
	if dir == "" {
		dir = DefaultOutputDir
	}
	return &PersonaStore{dir: dir}
}

// Save writes the document and returns the path of the written file.
// The output directory is created when absent. The write goes through a
// uniquely named temp file and a rename, so a crash mid-write never leaves
// a truncated persona file behind.
func (s *PersonaStore) Save(accountID string, doc domain.PersonaDocument) (string, error) {
	if accountID == "" {
		return "", fmt.Errorf("%w: empty account id", domain.ErrInvalidInput)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(s.dir, accountID+"_persona.txt")
	tmp := path + "." + uuid.NewString() + ".tmp"

	if err := os.WriteFile(tmp, []byte(doc.Text), 0o644); err != nil {
		return "", fmt.Errorf("write persona: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("finalise persona: %w", err)
	}

	return path, nil
}

// WithDir returns a store writing to dir. An empty dir returns the receiver.
func (s *PersonaStore) WithDir(dir string) driven.PersonaStore {
	if dir == "" {
		return s
	}
	return NewPersonaStore(dir)
}

// Dir returns the output directory.
func (s *PersonaStore) Dir() string {
	return s.dir
}
