// Package normalize provides the deterministic text normalizer the anchor
// miner matches against.
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFD decomposition
// 3 Case folding
// 4 Strip combining marks (de-accent)
// 5 Replace any rune that is not a letter, digit or whitespace with a space
// 6 Collapse whitespace to single spaces and trim
//
// Matching always happens on normalized forms; original casing is preserved
// separately for display
package normalize

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct{}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFD,                           // decompose so marks are separable
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the normalized form of s following the pipeline above
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2-4 transform via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	// 5 anything that is not a letter/digit/space becomes a space
	ns = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, ns)

	// 6 collapse whitespace and trim
	return Collapse(ns)
}

// Collapse converts whitespace runs to a single ASCII space and trims the edges
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// WordCount returns the number of whitespace-delimited non-empty tokens
func (n *Normalizer) WordCount(s string) int {
	return len(strings.Fields(s))
}

// CanonicalCore strips connector and brand tokens from the canonical phrase,
// leaving its meaningful part ("caseton de poliestireno mx" -> "caseton poliestireno")
func (n *Normalizer) CanonicalCore(canonical string) string {
	var kept []string
	for _, tok := range strings.Fields(n.Normalize(canonical)) {
		if _, ok := connectorWords[tok]; ok {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// IsStopword reports whether the normalized token is a function word
func (n *Normalizer) IsStopword(tok string) bool {
	_, ok := stopwords[tok]
	return ok
}

// StripStopwords removes stopword tokens from an already-normalized string
// and rejoins the rest with single spaces
func (n *Normalizer) StripStopwords(normText string) string {
	var kept []string
	for _, tok := range strings.Fields(normText) {
		if n.IsStopword(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// WholeWordCount counts boundary-respecting occurrences of phrase inside body.
// Both arguments must already be normalized
func WholeWordCount(body, phrase string) int {
	if body == "" || phrase == "" {
		return 0
	}
	count := 0
	off := 0
	for {
		i := strings.Index(body[off:], phrase)
		if i < 0 {
			return count
		}
		start := off + i
		end := start + len(phrase)
		if boundaryOK(body, start, end) {
			count++
		}
		off = start + 1
	}
}

// boundaryOK reports whether [start,end) is flanked by non-word runes
func boundaryOK(s string, start, end int) bool {
	var prev, next rune
	if start > 0 {
		prev, _ = utf8.DecodeLastRuneInString(s[:start])
	}
	if end < len(s) {
		next, _ = utf8.DecodeRuneInString(s[end:])
	}
	return !isWordRune(prev) && !isWordRune(next)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
