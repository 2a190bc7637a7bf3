package domain

import "time"

// PersonaStatus identifies the outcome a persona document represents.
type PersonaStatus string

// Available persona statuses.
const (
	// StatusGenerated means the engine produced text successfully.
	StatusGenerated PersonaStatus = "generated"

	// StatusNoEvidence means every sampled item had an empty body, so
	// generation was never attempted. The document carries a warning string.
	StatusNoEvidence PersonaStatus = "no_evidence"

	// StatusFailed means the engine failed; the document carries the error
	// description together with the evidence text that was submitted.
	StatusFailed PersonaStatus = "failed"
)

// IsValid returns true if the status is recognised.
func (s PersonaStatus) IsValid() bool {
	switch s {
	case StatusGenerated, StatusNoEvidence, StatusFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s PersonaStatus) String() string {
	return string(s)
}

// NoEvidenceWarning is the document text used when no sampled item had
// usable body text.
const NoEvidenceWarning = "No valid content found to analyze"

// PersonaDocument is the final free-text output of a synthesis run.
// The text is intentionally unstructured; no schema is imposed on it.
type PersonaDocument struct {
	// AccountID is the account the persona describes.
	AccountID string

	// Text is the document body: generated text, the no-evidence warning,
	// or an error-annotated evidence dump.
	Text string

	// Status records which of those outcomes this document represents.
	Status PersonaStatus

	// ModelName is the generation model used, empty when no engine ran.
	ModelName string

	// GeneratedAt is when synthesis completed.
	GeneratedAt time.Time
}

// PersonaResult is the outcome of a full generate run.
type PersonaResult struct {
	// AccountID is the resolved account identifier.
	AccountID string

	// Document is the synthesized persona, nil when there was no content.
	Document *PersonaDocument

	// OutputPath is where the document was written, empty when nothing
	// was saved.
	OutputPath string

	// ItemCount is the number of items the collector returned.
	ItemCount int
}
