package domain

import (
	"fmt"
	"strings"
)

// Evidence sampling limits.
const (
	// DefaultSampleSize is the number of items sampled into the evidence set.
	DefaultSampleSize = 5

	// ExcerptLimit is the maximum excerpt length in characters.
	// Longer texts are truncated with an ellipsis marker.
	ExcerptLimit = 200
)

// EvidenceItem is one sampled item together with its rendered excerpt.
type EvidenceItem struct {
	// Item is the sampled content item.
	Item ContentItem

	// Excerpt is the item text truncated to ExcerptLimit characters.
	Excerpt string
}

// EvidenceSample is the bounded, order-preserving subset of collected
// items used to seed the persona prompt.
type EvidenceSample struct {
	// Items are the qualifying items in original collection order.
	Items []EvidenceItem
}

// BuildEvidenceSample selects up to sampleSize items whose trimmed text is
// non-empty, preserving the collector's order. Items with empty bodies are
// skipped rather than counted against the sample size, so a qualifying item
// anywhere in the sequence can still be sampled.
func BuildEvidenceSample(items []ContentItem, sampleSize int) EvidenceSample {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}

	sample := EvidenceSample{}
	for _, item := range items {
		if strings.TrimSpace(item.Text) == "" {
			continue
		}
		sample.Items = append(sample.Items, EvidenceItem{
			Item:    item,
			Excerpt: Excerpt(item.Text, ExcerptLimit),
		})
		if len(sample.Items) == sampleSize {
			break
		}
	}
	return sample
}

// IsEmpty returns true if no item qualified for the sample.
func (s EvidenceSample) IsEmpty() bool {
	return len(s.Items) == 0
}

// Render formats the full sample as the verbatim evidence dump embedded in
// the prompt and in failure-annotated documents. The rendering is a pure
// function of the sample.
func (s EvidenceSample) Render() string {
	blocks := make([]string, 0, len(s.Items))
	for _, e := range s.Items {
		blocks = append(blocks, fmt.Sprintf("%s in r/%s (%s):\n%s\nURL: %s\n",
			strings.ToUpper(e.Item.Kind.String()),
			e.Item.Community,
			e.Item.Timestamp,
			e.Excerpt,
			e.Item.SourceURL,
		))
	}
	return strings.Join(blocks, "\n")
}

// Quote returns the evidence item at position idx, clamped to the last
// available item. The prompt template quotes fixed positions (0 and 2);
// clamping keeps short samples safe.
func (s EvidenceSample) Quote(idx int) EvidenceItem {
	if idx >= len(s.Items) {
		idx = len(s.Items) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return s.Items[idx]
}

// Excerpt truncates text to at most limit characters, appending an
// ellipsis marker when the original is longer.
func Excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
