package candidate

import (
	"strings"
	"unicode"

	"anchors/internal/core/normalize"
	"anchors/internal/core/rules"
)

// forbiddenPunct rejects candidates that straddle sentence or clause
// boundaries in the original text. Percent is included so discount copy
// never survives
const forbiddenPunct = ".,;:\"'()[]{}<>“”«»—–%"

// Validator applies the admission rules to raw candidates.
// It is stateless past construction and safe for concurrent use
type Validator struct {
	norm *normalize.Normalizer
	pack *rules.Pack
}

// NewValidator builds a Validator over the given rule pack
func NewValidator(n *normalize.Normalizer, p *rules.Pack) *Validator {
	return &Validator{norm: n, pack: p}
}

// Valid reports whether the candidate survives every admission rule.
// coreTerms is the topicality vocabulary for this extraction (seed terms,
// canonical tokens and any harvested n-grams, all normalized); enforceVerbs
// is relaxed in late rounds
func (v *Validator) Valid(c Candidate, coreTerms []string, enforceVerbs bool) bool {
	normText := v.norm.Normalize(c.Text)
	if normText == "" {
		return false
	}

	if strings.ContainsAny(c.Text, forbiddenPunct) {
		return false
	}

	if v.pack.LooksLikeURL(c.Text) || v.pack.LooksLikeEmail(c.Text) {
		return false
	}

	if v.pack.LooksLikePhone(c.Text) || v.pack.LooksLikePrice(c.Text) || v.pack.LooksLikeDomain(c.Text) {
		return false
	}

	toks := strings.Fields(normText)
	alpha, nonStop := 0, 0
	for _, tok := range toks {
		if strings.IndexFunc(tok, unicode.IsLetter) >= 0 {
			alpha++
		}
		if !v.norm.IsStopword(tok) {
			nonStop++
		}
	}
	if alpha < 2 || nonStop < 2 {
		return false
	}

	if v.pack.ContainsCTA(normText) || v.pack.IsBoilerplate(normText) {
		return false
	}

	if v.edgeTokenWeak(c.Tokens[0]) || v.edgeTokenWeak(c.Tokens[len(c.Tokens)-1]) {
		return false
	}

	if enforceVerbs {
		for _, tok := range toks {
			if v.pack.IsWeakVerb(tok) {
				return false
			}
		}
	}

	return v.onTopic(normText, coreTerms)
}

// edgeTokenWeak reports whether a boundary token normalizes to empty or to a
// stopword. Phrases must not start or end mid-function-word
func (v *Validator) edgeTokenWeak(t normalize.Token) bool {
	nt := v.norm.Normalize(t.Text)
	return nt == "" || v.norm.IsStopword(nt)
}

// onTopic is the topicality gate: at least one core term must occur as a
// substring of the normalized text
func (v *Validator) onTopic(normText string, coreTerms []string) bool {
	for _, term := range coreTerms {
		if term != "" && strings.Contains(normText, term) {
			return true
		}
	}
	return false
}
