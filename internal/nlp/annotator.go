package nlp

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Annotator wraps the pretrained prose pipeline (tokenization, POS tagging,
// entity chunking) behind a single call. Prose's bundled model recognizes
// PERSON and GPE spans; organization spans come from the closed-vocabulary
// recognizer in orgs.go so callers see one uniform entity set.
//
// The annotator is built once at startup and is safe for concurrent use; it
// holds no mutable state.
type Annotator struct {
	model *prose.Model
}

// NewAnnotator loads the statistical model by running one warm-up document
// through prose and keeping the model it loaded; every later request reuses
// it via UsingModel. A load failure here is fatal to the process: the service
// cannot produce meaningful analyses without the model.
func NewAnnotator() (*Annotator, error) {
	warmup, err := prose.NewDocument("TalentSift warm-up.")
	if err != nil {
		return nil, fmt.Errorf("loading language model: %w", err)
	}
	return &Annotator{model: warmup.Model}, nil
}

// Annotate runs the pipeline over text and returns an immutable annotation.
func (a *Annotator) Annotate(ctx context.Context, text string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdoc, err := prose.NewDocument(text, prose.UsingModel(a.model))
	if err != nil {
		return nil, fmt.Errorf("annotating text: %w", err)
	}

	ptoks := pdoc.Tokens()
	words := make([]string, len(ptoks))
	for i, pt := range ptoks {
		words[i] = pt.Text
	}
	spans := alignOffsets(text, words)

	tokens := make([]Token, len(ptoks))
	for i, pt := range ptoks {
		tokens[i] = Token{
			Text:   pt.Text,
			Tag:    pt.Tag,
			Start:  spans[i].start,
			End:    spans[i].end,
			Entity: categoryFromLabel(pt.Label),
		}
	}
	markOrganizations(tokens)

	return &Document{
		Text:     text,
		Tokens:   tokens,
		Entities: collectEntities(text, tokens),
	}, nil
}

// categoryFromLabel maps a prose token label (IOB form, e.g. "B-PERSON") to
// an entity category. Unrecognized labels yield no category.
func categoryFromLabel(label string) Category {
	label = strings.TrimPrefix(strings.TrimPrefix(label, "B-"), "I-")
	switch label {
	case "PERSON":
		return CategoryPerson
	case "GPE":
		return CategoryLocation
	case "ORG":
		return CategoryOrganization
	}
	return ""
}

type span struct {
	start int
	end   int
}

// alignOffsets locates each token's byte span in the source text by scanning
// forward with a cursor. Tokens the tokenizer rewrote (e.g. treebank-style
// quotes) that cannot be found keep a zero-width span at the cursor.
func alignOffsets(text string, words []string) []span {
	spans := make([]span, len(words))
	cursor := 0
	for i, w := range words {
		idx := strings.Index(text[cursor:], w)
		if idx < 0 {
			spans[i] = span{start: cursor, end: cursor}
			continue
		}
		start := cursor + idx
		spans[i] = span{start: start, end: start + len(w)}
		cursor = start + len(w)
	}
	return spans
}

// collectEntities merges runs of consecutive tokens sharing a category into
// entity spans whose text is taken verbatim from the source.
func collectEntities(text string, tokens []Token) []Entity {
	var entities []Entity
	for i := 0; i < len(tokens); {
		cat := tokens[i].Entity
		if cat == "" {
			i++
			continue
		}
		j := i
		for j+1 < len(tokens) && tokens[j+1].Entity == cat {
			j++
		}
		entities = append(entities, Entity{
			Text:     text[tokens[i].Start:tokens[j].End],
			Category: cat,
			Start:    tokens[i].Start,
			End:      tokens[j].End,
		})
		i = j + 1
	}
	return entities
}
