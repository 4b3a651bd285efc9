// Package ngram builds frequent short phrases from normalized text. Both the
// topicality harvest and the cannibalization overlap check key off the same
// phrase sets
package ngram

import (
	"sort"
	"strings"
	"unicode/utf8"

	"anchors/internal/core/normalize"
)

// Phrase pairs an n-gram key with its occurrence count
type Phrase struct {
	Key   string
	Count int
}

// Top extracts the k most frequent n-grams of normText for n in [minN, maxN].
// Grams whose first or last token is a stopword, or whose joined length is
// under 6 characters, are skipped. Ties order lexically so output is stable
func Top(n *normalize.Normalizer, normText string, minN, maxN, k int) []Phrase {
	if normText == "" || k <= 0 {
		return nil
	}
	tokens := strings.Fields(normText)
	counts := make(map[string]int)
	for i := range tokens {
		for size := minN; size <= maxN; size++ {
			end := i + size
			if end > len(tokens) {
				break
			}
			if n.IsStopword(tokens[i]) || n.IsStopword(tokens[end-1]) {
				continue
			}
			phrase := strings.Join(tokens[i:end], " ")
			if utf8.RuneCountInString(phrase) < 6 {
				continue
			}
			counts[phrase]++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	out := make([]Phrase, 0, len(counts))
	for key, c := range counts {
		out = append(out, Phrase{Key: key, Count: c})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Key < out[b].Key
	})
	if len(out) > k {
		out = out[:k]
	}
	return out
}

// Keys projects phrases to their key strings, preserving order
func Keys(phrases []Phrase) []string {
	keys := make([]string, len(phrases))
	for i, p := range phrases {
		keys[i] = p.Key
	}
	return keys
}

// Jaccard computes key-set overlap between two phrase lists
func Jaccard(a, b []Phrase) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := make(map[string]struct{}, len(a))
	for _, p := range a {
		setA[p.Key] = struct{}{}
	}
	union := make(map[string]struct{}, len(a)+len(b))
	for k := range setA {
		union[k] = struct{}{}
	}
	inter := 0
	for _, p := range b {
		if _, ok := setA[p.Key]; ok {
			inter++
		}
		union[p.Key] = struct{}{}
	}
	if len(union) == 0 {
		return 0
	}
	return float64(inter) / float64(len(union))
}
