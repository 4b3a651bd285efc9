// Package quota computes per-tier anchor targets and resolves them against
// what extraction actually found. Resolution is elastic: an under-supplied
// tier borrows capacity from tiers with surplus, but the grand total is never
// quietly undershot
package quota

import "fmt"

// Preset holds the target anchor distribution for a word-count bracket
type Preset struct {
	Total    int `json:"total"`
	Exact    int `json:"exact"`
	Phrase   int `json:"phrase"`
	Semantic int `json:"semantic"`
}

// PresetFor maps a body word count to its bracket preset
func PresetFor(wordCount int) Preset {
	switch {
	case wordCount <= 700:
		return Preset{Total: 4, Exact: 1, Phrase: 1, Semantic: 2}
	case wordCount <= 1500:
		return Preset{Total: 6, Exact: 1, Phrase: 3, Semantic: 2}
	default:
		return Preset{Total: 8, Exact: 1, Phrase: 4, Semantic: 3}
	}
}

// Counts carries a per-tier integer triple, used both for availability in and
// the resolved selection out
type Counts struct {
	Exact    int `json:"exact"`
	Phrase   int `json:"phrase"`
	Semantic int `json:"semantic"`
}

// Sum returns the tier total
func (c Counts) Sum() int { return c.Exact + c.Phrase + c.Semantic }

// DeficitError reports that even elastic reallocation could not reach the
// preset total
type DeficitError struct {
	Needed    int
	Available int
}

func (e *DeficitError) Error() string {
	return fmt.Sprintf("quota deficit: need %d anchors, only %d available", e.Needed, e.Available)
}

// Resolve computes how many anchors to take from each tier.
//
// Pass 1 caps each tier at its own preset. If the total falls short, tiers
// borrow in priority order phrase, semantic, exact, first to reach their own
// preset and then as a best-effort top-up from any remaining surplus. Returns
// DeficitError when the overall supply cannot cover preset.Total
func Resolve(preset Preset, available Counts) (Counts, error) {
	q := Counts{
		Exact:    min(preset.Exact, available.Exact),
		Phrase:   min(preset.Phrase, available.Phrase),
		Semantic: min(preset.Semantic, available.Semantic),
	}
	if q.Sum() >= preset.Total {
		return q, nil
	}
	if available.Sum() < preset.Total {
		return Counts{}, &DeficitError{Needed: preset.Total, Available: available.Sum()}
	}

	take := func(tier *int, avail int, want int) {
		if want <= 0 {
			return
		}
		if room := avail - *tier; room > 0 {
			*tier += min(room, want)
		}
	}

	// borrow toward each tier's own preset first, then top up freely
	for q.Sum() < preset.Total {
		before := q.Sum()
		take(&q.Phrase, available.Phrase, preset.Total-q.Sum())
		take(&q.Semantic, available.Semantic, preset.Total-q.Sum())
		take(&q.Exact, available.Exact, preset.Total-q.Sum())
		if q.Sum() == before {
			return Counts{}, &DeficitError{Needed: preset.Total, Available: available.Sum()}
		}
	}
	return q, nil
}
