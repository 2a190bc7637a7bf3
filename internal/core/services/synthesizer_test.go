package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/persona-labs/personagen-cli/internal/core/domain"
	"github.com/persona-labs/personagen-cli/internal/core/ports/driven"
)

// mockLLM implements driven.LLMService for testing.
type mockLLM struct {
	response string
	err      error

	calls      int
	lastPrompt string
	lastOpts   driven.GenerateOptions
}

func (m *mockLLM) Generate(_ context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	m.lastOpts = opts
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockLLM) ModelName() string            { return "mock-model" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

func TestSynthesize_NoItems(t *testing.T) {
	llm := &mockLLM{response: "unused"}
	svc := NewSynthesizerService(llm, 0)

	doc, err := svc.Synthesize(context.Background(), "kojied", nil)

	assert.ErrorIs(t, err, domain.ErrNoContent)
	assert.Nil(t, doc)
	// No generation call for an empty sequence.
	assert.Zero(t, llm.calls)
}

func TestSynthesize_AllItemsEmptyText(t *testing.T) {
	llm := &mockLLM{response: "unused"}
	svc := NewSynthesizerService(llm, 0)

	items := []domain.ContentItem{
		makePost(""),
		makePost("   "),
		makeComment("\n\t"),
	}

	doc, err := svc.Synthesize(context.Background(), "kojied", items)

	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, domain.StatusNoEvidence, doc.Status)
	assert.Equal(t, domain.NoEvidenceWarning, doc.Text)
	assert.Zero(t, llm.calls)
}

func TestSynthesize_InvokesEngineOnce(t *testing.T) {
	llm := &mockLLM{response: "PERSONA_OK"}
	svc := NewSynthesizerService(llm, 0)

	items := []domain.ContentItem{
		makeComment("comment one"),
		makeComment("comment two"),
		makeComment("comment three"),
	}

	doc, err := svc.Synthesize(context.Background(), "kojied", items)

	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, 1, llm.calls)
	assert.Equal(t, domain.StatusGenerated, doc.Status)
	assert.Equal(t, "PERSONA_OK", doc.Text)
	assert.Equal(t, "mock-model", doc.ModelName)

	// Fixed generation parameters.
	assert.Equal(t, GenerationMaxTokens, llm.lastOpts.MaxTokens)
	assert.InDelta(t, GenerationTemperature, llm.lastOpts.Temperature, 1e-9)
	assert.Equal(t, GenerationCandidates, llm.lastOpts.Candidates)

	// The prompt carries each sampled excerpt and URL verbatim.
	for _, text := range []string{"comment one", "comment two", "comment three"} {
		assert.Contains(t, llm.lastPrompt, text)
	}
	assert.Contains(t, llm.lastPrompt, "https://reddit.com/r/golang/c")
}

func TestSynthesize_TruncatesLongEvidence(t *testing.T) {
	llm := &mockLLM{response: "ok"}
	svc := NewSynthesizerService(llm, 0)

	long := strings.Repeat("y", 450)
	items := []domain.ContentItem{makeComment(long)}

	_, err := svc.Synthesize(context.Background(), "kojied", items)

	require.NoError(t, err)
	assert.Contains(t, llm.lastPrompt, strings.Repeat("y", 200)+"...")
	assert.NotContains(t, llm.lastPrompt, strings.Repeat("y", 250))
}

func TestSynthesize_EngineFailureKeepsEvidence(t *testing.T) {
	llm := &mockLLM{err: errors.New("out of memory")}
	svc := NewSynthesizerService(llm, 0)

	items := []domain.ContentItem{
		makeComment("evidence that must survive"),
	}

	doc, err := svc.Synthesize(context.Background(), "kojied", items)

	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, domain.StatusFailed, doc.Status)
	assert.Contains(t, doc.Text, "Error: generation failed: out of memory")
	assert.Contains(t, doc.Text, "Data that was analyzed:")
	// Round-trip: the submitted evidence is preserved in the document.
	assert.Contains(t, doc.Text, "evidence that must survive")
	assert.Contains(t, doc.Text, "https://reddit.com/r/golang/c")
}

func TestSynthesize_NilEngine(t *testing.T) {
	svc := NewSynthesizerService(nil, 0)

	doc, err := svc.Synthesize(context.Background(), "kojied", []domain.ContentItem{makeComment("a")})

	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
	assert.Nil(t, doc)
}

func TestSynthesize_DeterministicPrompt(t *testing.T) {
	items := []domain.ContentItem{
		makePost("post body"),
		makeComment("comment body"),
	}

	llm1 := &mockLLM{response: "ok"}
	llm2 := &mockLLM{response: "ok"}

	_, err := NewSynthesizerService(llm1, 0).Synthesize(context.Background(), "kojied", items)
	require.NoError(t, err)
	_, err = NewSynthesizerService(llm2, 0).Synthesize(context.Background(), "kojied", items)
	require.NoError(t, err)

	assert.Equal(t, llm1.lastPrompt, llm2.lastPrompt)
}
