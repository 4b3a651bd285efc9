// Package extract runs the anchor mining pipeline end to end: tokenize,
// generate, validate, classify, count, dedupe, and resolve quotas over a
// fixed ladder of relaxation rounds. A run either yields exactly the preset
// total of anchors or a typed failure, never a short list
package extract

import (
	"strings"

	"anchors/internal/core/candidate"
	"anchors/internal/core/classify"
	"anchors/internal/core/ngram"
	"anchors/internal/core/normalize"
	"anchors/internal/core/quota"
	"anchors/internal/core/rules"
)

// round is one rung of the relaxation ladder. Later rounds widen the window,
// lower the frequency floor and finally stop enforcing the weak-verb rule
type round struct {
	windowMax    int
	minFrequency int
	enforceVerbs bool
}

var rounds = []round{
	{windowMax: 7, minFrequency: 2, enforceVerbs: true},
	{windowMax: 8, minFrequency: 2, enforceVerbs: true},
	{windowMax: 8, minFrequency: 1, enforceVerbs: true},
	{windowMax: 8, minFrequency: 1, enforceVerbs: false},
}

const harvestTop = 20

// Result is a successful extraction
type Result struct {
	Anchors   []Anchor     `json:"anchors"`
	Quotas    Quotas       `json:"quotas"`
	Preset    quota.Preset `json:"preset"`
	WordCount int          `json:"word_count"`
	Rounds    int          `json:"rounds"`
}

// Quotas reports the realized per-tier selection
type Quotas struct {
	Total    int `json:"total"`
	Exact    int `json:"exact"`
	Phrase   int `json:"phrase"`
	Semantic int `json:"semantic"`
}

// Extractor owns the normalizer, rule pack and validator for a process
// lifetime. Safe for concurrent use
type Extractor struct {
	norm      *normalize.Normalizer
	pack      *rules.Pack
	validator *candidate.Validator
}

// New builds an Extractor over the given rule pack
func New(n *normalize.Normalizer, p *rules.Pack) *Extractor {
	return &Extractor{norm: n, pack: p, validator: candidate.NewValidator(n, p)}
}

// Extract mines anchors for the canonical phrase from the cleaned body text.
// titleHint, when present, feeds the dynamic topic-term harvest alongside the
// body. On success the anchor count equals the word-count preset total
func (e *Extractor) Extract(canonical, body, titleHint string) (*Result, error) {
	canonical = strings.TrimSpace(canonical)
	if canonical == "" {
		return nil, &Failure{Kind: FailMissingCanonical}
	}
	body = normalize.Collapse(body)
	if body == "" {
		return nil, &Failure{Kind: FailEmptyBody}
	}

	wordCount := e.norm.WordCount(body)
	preset := quota.PresetFor(wordCount)

	tokens := e.norm.Tokenize(body)
	if len(tokens) == 0 {
		return nil, &Failure{Kind: FailNoTokens, WordCount: wordCount}
	}

	normBody := e.norm.Normalize(body)
	canonNorm := e.norm.Normalize(canonical)
	coreNorm := e.norm.CanonicalCore(canonical)
	coreTerms := e.harvestTopicTerms(canonNorm, coreNorm, titleHint, normBody)

	pool := make(map[string]Anchor)
	for i, r := range rounds {
		for _, c := range candidate.Generate(body, tokens, r.windowMax) {
			if !e.validator.Valid(c, coreTerms, r.enforceVerbs) {
				continue
			}
			nt := e.norm.Normalize(c.Text)
			freq := normalize.WholeWordCount(normBody, nt)
			if freq < r.minFrequency || freq < 1 {
				continue
			}
			a := Anchor{
				Text:      c.Text,
				Tier:      classify.Classify(nt, canonNorm, coreNorm),
				Frequency: freq,
				norm:      nt,
				start:     c.Start,
			}
			if prev, ok := pool[nt]; ok {
				a = stronger(prev, a)
			}
			pool[nt] = a
		}

		deduped := dedupe(e.norm, poolValues(pool))
		grouped := groupByTier(deduped)
		avail := quota.Counts{
			Exact:    len(grouped[classify.TierExact]),
			Phrase:   len(grouped[classify.TierPhrase]),
			Semantic: len(grouped[classify.TierSemantic]),
		}
		if avail.Sum() < preset.Total {
			continue
		}

		q, err := quota.Resolve(preset, avail)
		if err != nil {
			continue
		}

		selection := make([]Anchor, 0, preset.Total)
		selection = append(selection, grouped[classify.TierExact][:q.Exact]...)
		selection = append(selection, grouped[classify.TierPhrase][:q.Phrase]...)
		selection = append(selection, grouped[classify.TierSemantic][:q.Semantic]...)
		if len(selection) != preset.Total {
			continue
		}
		sortSelection(selection)

		return &Result{
			Anchors: selection,
			Quotas: Quotas{
				Total:    len(selection),
				Exact:    q.Exact,
				Phrase:   q.Phrase,
				Semantic: q.Semantic,
			},
			Preset:    preset,
			WordCount: wordCount,
			Rounds:    i + 1,
		}, nil
	}

	if len(pool) > 0 {
		return nil, &Failure{
			Kind:      FailQuotaDeficit,
			WordCount: wordCount,
			Needed:    preset.Total,
			Available: len(dedupe(e.norm, poolValues(pool))),
		}
	}
	return nil, &Failure{Kind: FailNoCandidates, WordCount: wordCount}
}

// Presets exposes the word-count bracket table
func (e *Extractor) Presets(wordCount int) quota.Preset { return quota.PresetFor(wordCount) }

// harvestTopicTerms assembles the topicality vocabulary: built-in seed terms,
// tokens of the canonical phrase and its core, and the most frequent n-grams
// of the title and body. Harvested grams that trip the CTA or boilerplate
// denylists are discarded so frequent promo copy cannot widen the gate
func (e *Extractor) harvestTopicTerms(canonNorm, coreNorm, titleHint, normBody string) []string {
	seen := make(map[string]struct{})
	var terms []string
	add := func(t string) {
		if t == "" {
			return
		}
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		terms = append(terms, t)
	}

	for t := range e.pack.SeedTerms() {
		add(t)
	}
	for _, t := range strings.Fields(coreNorm) {
		add(t)
	}
	for _, t := range strings.Fields(canonNorm) {
		if !e.norm.IsStopword(t) {
			add(t)
		}
	}

	harvestSrc := normBody
	if th := e.norm.Normalize(titleHint); th != "" {
		harvestSrc = th + " " + normBody
	}
	for _, p := range ngram.Top(e.norm, harvestSrc, 2, 3, harvestTop) {
		if e.pack.ContainsCTA(p.Key) || e.pack.IsBoilerplate(p.Key) {
			continue
		}
		add(p.Key)
	}
	return terms
}

func poolValues(pool map[string]Anchor) []Anchor {
	out := make([]Anchor, 0, len(pool))
	for _, a := range pool {
		out = append(out, a)
	}
	return out
}

func groupByTier(anchors []Anchor) map[classify.Tier][]Anchor {
	grouped := make(map[classify.Tier][]Anchor, len(classify.Tiers))
	for _, a := range anchors {
		grouped[a.Tier] = append(grouped[a.Tier], a)
	}
	for _, tier := range classify.Tiers {
		sortAnchors(grouped[tier])
	}
	return grouped
}
