// Package classify assigns match tiers relative to the canonical phrase
package classify

import "strings"

// Tier orders match strictness: exact < phrase < semantic
type Tier int

const (
	// TierExact is textual identity with the canonical or its core
	TierExact Tier = iota
	// TierPhrase contains the canonical (or core) as a substring
	TierPhrase
	// TierSemantic is topically admitted but does not contain the canonical
	TierSemantic
)

// Tiers lists all tiers in rank order
var Tiers = []Tier{TierExact, TierPhrase, TierSemantic}

// String returns the wire name of the tier
func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierPhrase:
		return "phrase"
	case TierSemantic:
		return "semantic"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so tiers render as their
// wire names in JSON
func (t Tier) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Classify resolves the tier of an already-normalized candidate text.
// Checks run in fixed order so identity always wins over containment
func Classify(anchorNorm, canonicalNorm, coreNorm string) Tier {
	if canonicalNorm != "" && anchorNorm == canonicalNorm {
		return TierExact
	}
	if coreNorm != "" && anchorNorm == coreNorm {
		return TierExact
	}
	if canonicalNorm != "" && strings.Contains(anchorNorm, canonicalNorm) {
		return TierPhrase
	}
	if coreNorm != "" && strings.Contains(anchorNorm, coreNorm) {
		return TierPhrase
	}
	return TierSemantic
}
