// Package rules carries the embedded term tables and pattern detectors the
// candidate validator consults. The JSON pack is versioned so a future
// config-driven override can replace it wholesale
package rules

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"anchors/internal/core/normalize"
)

//go:embed rules.json
var rawPack []byte

// rawRules mirrors rules.json
type rawRules struct {
	Version            int      `json:"version"`
	CTATerms           []string `json:"cta_terms"`
	BoilerplatePhrases []string `json:"boilerplate_phrases"`
	WeakVerbs          []string `json:"weak_verbs"`
	SeedTerms          []string `json:"seed_terms"`
	DomainTLDs         []string `json:"domain_tlds"`
}

// Pack is the compiled rule set. All term sets hold normalized forms, so
// membership checks run against normalized tokens
type Pack struct {
	Version     int
	cta         map[string]struct{}
	boilerplate []string
	weakVerbs   map[string]struct{}
	seedTerms   map[string]struct{}

	urlRe    *regexp.Regexp
	emailRe  *regexp.Regexp
	digitsRe *regexp.Regexp
	longNumR *regexp.Regexp
	priceRe  *regexp.Regexp
	domainRe *regexp.Regexp
}

// Load parses and compiles the embedded pack
func Load() (*Pack, error) {
	var raw rawRules
	if err := json.Unmarshal(rawPack, &raw); err != nil {
		return nil, fmt.Errorf("rules: parse embedded pack: %w", err)
	}
	if raw.Version != 1 {
		return nil, fmt.Errorf("rules: unsupported pack version %d", raw.Version)
	}

	n := normalize.New()
	p := &Pack{
		Version:   raw.Version,
		cta:       normSet(n, raw.CTATerms),
		weakVerbs: normSet(n, raw.WeakVerbs),
		seedTerms: normSet(n, raw.SeedTerms),
	}
	for _, ph := range raw.BoilerplatePhrases {
		if np := n.Normalize(ph); np != "" {
			p.boilerplate = append(p.boilerplate, np)
		}
	}

	tlds := make([]string, 0, len(raw.DomainTLDs))
	for _, t := range raw.DomainTLDs {
		tlds = append(tlds, regexp.QuoteMeta(strings.ToLower(t)))
	}

	var err error
	compile := func(expr string) *regexp.Regexp {
		if err != nil {
			return nil
		}
		var re *regexp.Regexp
		re, err = regexp.Compile(expr)
		return re
	}
	p.urlRe = compile(`(?i)https?://`)
	p.emailRe = compile(`(?i)[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)
	p.digitsRe = compile(`\b\d{2,}\b`)
	p.longNumR = compile(`\b\d{7,}\b`)
	p.priceRe = compile(`(?i)\d[\d.,]*\s*(%|usd|mxn|eur|\$)|\$\s*\d`)
	p.domainRe = compile(`(?i)\b[a-z0-9\-]+\.(` + strings.Join(tlds, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("rules: compile detectors: %w", err)
	}
	return p, nil
}

// MustLoad panics on a bad embedded pack. Use from main wiring only
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

func normSet(n *normalize.Normalizer, terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		if nt := n.Normalize(t); nt != "" {
			set[nt] = struct{}{}
		}
	}
	return set
}

// ContainsCTA reports whether the normalized phrase contains any promotional
// term as a raw substring. Substring (not whole-word) on purpose, the denylist
// is meant to be aggressive
func (p *Pack) ContainsCTA(normPhrase string) bool {
	for term := range p.cta {
		if strings.Contains(normPhrase, term) {
			return true
		}
	}
	return false
}

// IsBoilerplate reports whether the normalized phrase contains a stock filler
// expression anywhere. Matching is on word boundaries so a filler inside a
// longer word ("venden definitivamente") does not hit
func (p *Pack) IsBoilerplate(normPhrase string) bool {
	padded := " " + normPhrase + " "
	for _, ph := range p.boilerplate {
		if strings.Contains(padded, " "+ph+" ") {
			return true
		}
	}
	return false
}

// IsWeakVerb reports whether the normalized token is a low-content verb form
func (p *Pack) IsWeakVerb(tok string) bool {
	_, ok := p.weakVerbs[tok]
	return ok
}

// SeedTerms returns the built-in topic vocabulary (shared, do not mutate)
func (p *Pack) SeedTerms() map[string]struct{} { return p.seedTerms }

// LooksLikeURL reports whether raw contains a scheme-prefixed URL
func (p *Pack) LooksLikeURL(raw string) bool { return p.urlRe.MatchString(raw) }

// LooksLikeEmail reports whether raw contains an email address
func (p *Pack) LooksLikeEmail(raw string) bool { return p.emailRe.MatchString(raw) }

// LooksLikePhone flags digit runs typical of phone numbers. Both a short run
// and a 7+ digit run must be present, so dimension codes like "40x40x20" pass
func (p *Pack) LooksLikePhone(raw string) bool {
	return p.digitsRe.MatchString(raw) && p.longNumR.MatchString(raw)
}

// LooksLikePrice reports whether raw contains an amount with a currency or
// percent marker
func (p *Pack) LooksLikePrice(raw string) bool { return p.priceRe.MatchString(raw) }

// LooksLikeDomain reports whether raw contains a bare domain name
func (p *Pack) LooksLikeDomain(raw string) bool { return p.domainRe.MatchString(raw) }
