package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Callers branch on them
// with errors.Is instead of inspecting message strings.
var (
	// ErrInvalidInput indicates malformed or invalid input,
	// such as a profile URL without a user segment.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoContent indicates the account had no collectable posts or comments.
	// This is a defined terminal state, not an infrastructure failure.
	ErrNoContent = errors.New("no content to synthesize")

	// ErrAccountNotFound indicates the account does not exist or is suspended.
	ErrAccountNotFound = errors.New("account not found")

	// ErrProviderUnavailable indicates the content provider could not be
	// reached or returned an unexpected failure.
	ErrProviderUnavailable = errors.New("content provider unavailable")

	// ErrRateLimited indicates the provider rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrAuthInvalid indicates the provider credentials are invalid.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrLLMUnavailable indicates no generation engine is configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrGenerationFailed indicates the generation engine returned a failure.
	// The synthesizer downgrades this to an error-annotated document that
	// still carries the evidence text.
	ErrGenerationFailed = errors.New("generation failed")
)
