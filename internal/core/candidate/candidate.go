// Package candidate produces and filters raw anchor phrase candidates.
// Generation is an exhaustive sliding window over the token stream; the
// validator then prunes aggressively, so the quadratic-ish blow-up stays cheap
// for page-sized text
package candidate

import (
	"unicode/utf8"

	"anchors/internal/core/normalize"
)

// Candidate is a phrase slice of the original (cleaned, original-cased) text
type Candidate struct {
	Text   string
	Tokens []normalize.Token
	Start  int // rune offset of the first token
}

const (
	// MinWindow is the smallest token window considered
	MinWindow = 2
	// MaxWindow is the hard cap on token window size across all rounds
	MaxWindow = 8

	minChars = 6
	maxChars = 80
)

// Generate slides windows of [MinWindow, maxWindow] tokens over the stream
// and keeps slices whose collapsed character length lands in [6, 80].
// Slicing uses byte offsets into the given text, which must be the same text
// the tokens were produced from
func Generate(text string, tokens []normalize.Token, maxWindow int) []Candidate {
	if maxWindow < MinWindow {
		return nil
	}
	if maxWindow > MaxWindow {
		maxWindow = MaxWindow
	}
	var out []Candidate
	for i := range tokens {
		for w := MinWindow; w <= maxWindow; w++ {
			end := i + w - 1
			if end >= len(tokens) {
				break
			}
			slice := normalize.Collapse(text[tokens[i].ByteOffset:tokens[end].ByteEnd()])
			if n := utf8.RuneCountInString(slice); n < minChars || n > maxChars {
				continue
			}
			out = append(out, Candidate{
				Text:   slice,
				Tokens: tokens[i : end+1],
				Start:  tokens[i].RuneOffset,
			})
		}
	}
	return out
}
