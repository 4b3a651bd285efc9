package normalize

import (
	"regexp"
	"unicode/utf8"
)

// Token is a maximal letter/digit run in the source text. Byte offsets slice
// the original string; rune offsets exist for display-layer math that counts
// characters
type Token struct {
	Text       string
	ByteOffset int
	RuneOffset int
	RuneLen    int
}

// ByteEnd returns the byte offset just past the token
func (t Token) ByteEnd() int { return t.ByteOffset + len(t.Text) }

// wordRe matches a letter/digit run allowing internal combining marks and
// hyphens ("40x40x20", "poliestireno", "losa-reticular")
var wordRe = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}\p{Mn}\p{Pd}]*`)

// Tokenize scans text for word tokens, recording byte and rune offsets.
// Positions refer to the text as given (cleaned, original-cased)
func (n *Normalizer) Tokenize(text string) []Token {
	if text == "" {
		return nil
	}
	idx := wordRe.FindAllStringIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}
	toks := make([]Token, 0, len(idx))
	runeOff := 0
	prevByte := 0
	for _, pr := range idx {
		start, end := pr[0], pr[1]
		runeOff += utf8.RuneCountInString(text[prevByte:start])
		word := text[start:end]
		toks = append(toks, Token{
			Text:       word,
			ByteOffset: start,
			RuneOffset: runeOff,
			RuneLen:    utf8.RuneCountInString(word),
		})
		runeOff += utf8.RuneCountInString(word)
		prevByte = end
	}
	return toks
}
