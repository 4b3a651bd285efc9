package extract

import (
	"sort"
	"unicode/utf8"

	"anchors/internal/core/classify"
	"anchors/internal/core/normalize"
)

// Anchor is a selected anchor phrase. Text keeps the original casing from the
// source document; matching happened on the normalized form
type Anchor struct {
	Text      string        `json:"text"`
	Tier      classify.Tier `json:"tier"`
	Frequency int           `json:"frequency"`

	norm  string
	start int
}

// NormText exposes the normalized form for downstream signature checks
func (a Anchor) NormText() string { return a.norm }

func (a Anchor) runeLen() int { return utf8.RuneCountInString(a.Text) }

// stronger decides which of two anchors sharing a key survives: higher
// frequency, then shorter text, then earlier start
func stronger(a, b Anchor) Anchor {
	if a.Frequency != b.Frequency {
		if a.Frequency > b.Frequency {
			return a
		}
		return b
	}
	if la, lb := a.runeLen(), b.runeLen(); la != lb {
		if la < lb {
			return a
		}
		return b
	}
	if a.start <= b.start {
		return a
	}
	return b
}

// Signature returns the dedupe key: normalized text with stopwords removed,
// falling back to the full normalized text when stripping leaves nothing
func Signature(n *normalize.Normalizer, normText string) string {
	if sig := n.StripStopwords(normText); sig != "" {
		return sig
	}
	return normText
}

// dedupe collapses anchors sharing a stopword-stripped signature
func dedupe(n *normalize.Normalizer, anchors []Anchor) []Anchor {
	bySig := make(map[string]Anchor, len(anchors))
	order := make([]string, 0, len(anchors))
	for _, a := range anchors {
		sig := Signature(n, a.norm)
		if prev, ok := bySig[sig]; ok {
			bySig[sig] = stronger(prev, a)
			continue
		}
		bySig[sig] = a
		order = append(order, sig)
	}
	out := make([]Anchor, 0, len(bySig))
	for _, sig := range order {
		out = append(out, bySig[sig])
	}
	return out
}

// sortAnchors orders by frequency desc, text length asc, start asc
func sortAnchors(anchors []Anchor) {
	sort.SliceStable(anchors, func(i, j int) bool {
		a, b := anchors[i], anchors[j]
		if a.Frequency != b.Frequency {
			return a.Frequency > b.Frequency
		}
		if la, lb := a.runeLen(), b.runeLen(); la != lb {
			return la < lb
		}
		return a.start < b.start
	})
}

// sortSelection orders the final list by tier rank then the usual tie-breaks
func sortSelection(anchors []Anchor) {
	sort.SliceStable(anchors, func(i, j int) bool {
		a, b := anchors[i], anchors[j]
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}
		if a.Frequency != b.Frequency {
			return a.Frequency > b.Frequency
		}
		if la, lb := a.runeLen(), b.runeLen(); la != lb {
			return la < lb
		}
		return a.start < b.start
	})
}
