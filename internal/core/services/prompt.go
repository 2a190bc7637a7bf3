package services

import (
	"fmt"
	"strings"

	"github.com/persona-labs/personagen-cli/internal/core/domain"
)

// Prompt scaffolding limits. The section seeds quote short prefixes of the
// evidence so the model sees the data it is asked to reason about.
const (
	ageSeedLimit        = 100
	occupationSeedLimit = 200
	quoteLimit          = 100
)

// personaPromptTemplate is the fixed persona prompt structure. The bracketed
// placeholder lines are prompting scaffolding for the model to fill in, not
// values the pipeline computes.
const personaPromptTemplate = `Analyze these Reddit activities and create a detailed persona:

# Reddit User Persona

**AGE**
[Estimate based on: %s...]

**OCCUPATION**
[From keywords: %s...]

**INTERESTS**
- %s
- [Add more interests]

---

**PERSONALITY**

| Analytical | Passionate |
|---|---|
| Patient | Detail-oriented |

---

**BEHAVIOUR & HABITS**

- Observed habit: "%s..." (Source: %s)
- [Add more habits]

---

**GOALS & NEEDS**

- [Infer goals from the activity]
- [Add more goals]

---

**FRUSTRATIONS**

- Reported frustration: "%s..." (Source: %s)
- [Add more frustrations]

Raw Data Analyzed:
%s
`

// RenderPersonaPrompt builds the generation prompt from an evidence sample.
// It is a pure function of the sample: the same sample always renders a
// byte-identical prompt. The sample must be non-empty.
//
// The template seeds the behaviour and frustration sections with the item at
// position 2; for shorter samples the position clamps to the last item
// instead of faulting.
func RenderPersonaPrompt(sample domain.EvidenceSample) string {
	samplesText := sample.Render()

	topCommunity := sample.Quote(0).Item.Community
	quote := sample.Quote(2)

	return fmt.Sprintf(personaPromptTemplate,
		prefix(samplesText, ageSeedLimit),
		prefix(samplesText, occupationSeedLimit),
		topCommunity,
		prefix(quote.Item.Text, quoteLimit),
		quote.Item.SourceURL,
		prefix(quote.Item.Text, quoteLimit),
		quote.Item.SourceURL,
		samplesText,
	)
}

// prefix returns the first limit runes of s without an ellipsis marker;
// the template supplies its own trailing "...".
func prefix(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return strings.TrimRight(s, "\n")
	}
	return string(runes[:limit])
}
