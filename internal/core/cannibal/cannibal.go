// Package cannibal scores how strongly a candidate document competes with the
// mother document for the canonical phrase's search intent. The score is a
// bounded heuristic sum over title, slug, content similarity, keyword density
// and shared n-grams
package cannibal

import (
	"fmt"
	"math"
	"strings"

	"anchors/internal/core/ngram"
	"anchors/internal/core/normalize"
)

// Level buckets a score for display
type Level string

const (
	// LevelYellow is low or zero risk
	LevelYellow Level = "yellow"
	// LevelOrange is moderate risk
	LevelOrange Level = "orange"
	// LevelRed is high risk
	LevelRed Level = "red"
)

// Score is the outcome of one comparison
type Score struct {
	Score   int      `json:"score"`
	Level   Level    `json:"level"`
	Reasons []string `json:"reasons,omitempty"`
}

// DocProfile is the per-document material the scorer consumes. NormPlain,
// Vector and TopNgrams come from the analysis cache; TitleNorm and SlugNorm
// are normalized with hyphens already turned into spaces for the slug
type DocProfile struct {
	ID        int64
	TitleNorm string
	SlugNorm  string
	NormPlain string
	Vector    map[string]int
	TopNgrams []ngram.Phrase
}

// Scorer is stateless past its normalizer and safe for concurrent use
type Scorer struct {
	norm *normalize.Normalizer
}

// NewScorer builds a Scorer
func NewScorer(n *normalize.Normalizer) *Scorer {
	return &Scorer{norm: n}
}

// Compare scores candidate against mother for the canonical phrase.
// Self-comparison and missing ids short-circuit to zero
func (s *Scorer) Compare(candidate, mother DocProfile, canonical string) Score {
	if candidate.ID == 0 || mother.ID == 0 || candidate.ID == mother.ID {
		return Score{Score: 0, Level: LevelYellow}
	}

	variants := s.Variants(canonical)
	canonNorm := s.norm.Normalize(canonical)

	score := 0
	var reasons []string

	score += s.titleScore(candidate.TitleNorm, canonNorm, variants, &reasons)
	score += s.slugScore(candidate.SlugNorm, variants, &reasons)

	sim := Cosine(mother.Vector, candidate.Vector)
	switch {
	case sim >= 0.50:
		score += 40
		reasons = append(reasons, fmt.Sprintf("content similarity %.2f", sim))
	case sim >= 0.35:
		score += 25
		reasons = append(reasons, fmt.Sprintf("content similarity %.2f", sim))
	case sim >= 0.20:
		score += 10
		reasons = append(reasons, fmt.Sprintf("content similarity %.2f", sim))
	}

	density := s.Density(candidate.NormPlain, variants)
	switch {
	case density >= 3:
		score += 10
		reasons = append(reasons, "high canonical keyword density")
	case density >= 1:
		score += 5
		reasons = append(reasons, "medium canonical keyword density")
	}

	jac := ngram.Jaccard(mother.TopNgrams, candidate.TopNgrams)
	switch {
	case jac >= 0.15:
		score += 10
		reasons = append(reasons, "shares top n-grams with the mother document")
	case jac >= 0.08:
		score += 5
		reasons = append(reasons, "shares some n-grams with the mother document")
	}

	score = clamp(score, 0, 100)
	return Score{Score: score, Level: levelFor(score), Reasons: reasons}
}

// titleScore caps at 30: full canonical beats a variant beats a shared token
func (s *Scorer) titleScore(titleNorm, canonNorm string, variants []string, reasons *[]string) int {
	if titleNorm == "" {
		return 0
	}
	if canonNorm != "" && strings.Contains(titleNorm, canonNorm) {
		*reasons = append(*reasons, "title contains the full canonical phrase")
		return 30
	}
	for _, v := range variants {
		if strings.Contains(titleNorm, v) {
			*reasons = append(*reasons, "title contains a canonical variant")
			return 20
		}
	}
	for _, v := range variants {
		for _, tok := range strings.Fields(v) {
			if tok != "" && strings.Contains(titleNorm, tok) {
				*reasons = append(*reasons, "title shares a canonical token")
				return 10
			}
		}
	}
	return 0
}

func (s *Scorer) slugScore(slugNorm string, variants []string, reasons *[]string) int {
	if slugNorm == "" {
		return 0
	}
	for _, v := range variants {
		if strings.Contains(slugNorm, v) {
			*reasons = append(*reasons, "slug matches the canonical phrase")
			return 10
		}
	}
	for _, v := range variants {
		for _, tok := range strings.Fields(v) {
			if tok != "" && strings.Contains(slugNorm, tok) {
				*reasons = append(*reasons, "slug shares a canonical token")
				return 5
			}
		}
	}
	return 0
}

// Variants expands the canonical phrase into the comparison set: the full
// normalized form, the core form, each core token and a crude plural or
// singular twist per token. Not a stemmer, and not meant to be
func (s *Scorer) Variants(canonical string) []string {
	canonNorm := s.norm.Normalize(canonical)
	coreNorm := s.norm.CanonicalCore(canonical)

	seen := make(map[string]struct{})
	var out []string
	add := func(v string) {
		if v == "" {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	add(canonNorm)
	if coreNorm != canonNorm {
		add(coreNorm)
	}

	base := coreNorm
	if base == "" {
		base = canonNorm
	}
	for _, tok := range strings.Fields(base) {
		add(tok)
		if strings.HasSuffix(tok, "s") {
			add(strings.TrimSuffix(tok, "s"))
		} else {
			add(tok + "s")
			add(tok + "es")
		}
	}
	return out
}

// Density counts whole-word occurrences of any variant per 1000 words of the
// normalized plain text
func (s *Scorer) Density(normPlain string, variants []string) float64 {
	if normPlain == "" || len(variants) == 0 {
		return 0
	}
	words := len(strings.Fields(normPlain))
	if words < 1 {
		words = 1
	}
	count := 0
	for _, v := range variants {
		count += normalize.WholeWordCount(normPlain, v)
	}
	return float64(count) / float64(words) * 1000
}

// Vectorize builds a term-frequency vector from normalized plain text,
// skipping stopwords and tokens under 3 characters
func Vectorize(n *normalize.Normalizer, normPlain string) map[string]int {
	if normPlain == "" {
		return map[string]int{}
	}
	vec := make(map[string]int)
	for _, tok := range strings.Fields(normPlain) {
		if len([]rune(tok)) < 3 || n.IsStopword(tok) {
			continue
		}
		vec[tok]++
	}
	return vec
}

// Cosine computes cosine similarity between two term-frequency vectors
func Cosine(v1, v2 map[string]int) float64 {
	if len(v1) == 0 || len(v2) == 0 {
		return 0
	}
	dot := 0.0
	for tok, c := range v1 {
		if c2, ok := v2[tok]; ok {
			dot += float64(c) * float64(c2)
		}
	}
	if dot == 0 {
		return 0
	}
	var mag1, mag2 float64
	for _, c := range v1 {
		mag1 += float64(c) * float64(c)
	}
	for _, c := range v2 {
		mag2 += float64(c) * float64(c)
	}
	if mag1 == 0 || mag2 == 0 {
		return 0
	}
	return dot / (math.Sqrt(mag1) * math.Sqrt(mag2))
}

func levelFor(score int) Level {
	switch {
	case score >= 70:
		return LevelRed
	case score >= 40:
		return LevelOrange
	default:
		return LevelYellow
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
