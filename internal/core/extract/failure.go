package extract

import (
	"errors"
	"fmt"
)

// FailKind discriminates the terminal extraction failures
type FailKind string

const (
	// FailMissingCanonical means the canonical phrase was empty after trimming
	FailMissingCanonical FailKind = "missing_canonical"
	// FailEmptyBody means the cleaned body text was empty
	FailEmptyBody FailKind = "empty_body"
	// FailNoTokens means tokenization produced nothing from a non-empty body
	FailNoTokens FailKind = "no_tokens"
	// FailNoCandidates means every relaxation round ran out without reaching
	// the preset total
	FailNoCandidates FailKind = "no_candidates"
	// FailQuotaDeficit means elastic reallocation could not cover the total
	FailQuotaDeficit FailKind = "quota_deficit"
)

// Failure is the typed terminal error of an extraction run. WordCount is
// attached where it was computed; Needed/Available only accompany quota
// deficits
type Failure struct {
	Kind      FailKind `json:"kind"`
	WordCount int      `json:"word_count,omitempty"`
	Needed    int      `json:"needed,omitempty"`
	Available int      `json:"available,omitempty"`
}

func (f *Failure) Error() string {
	switch f.Kind {
	case FailMissingCanonical:
		return "canonical phrase is empty"
	case FailEmptyBody:
		return "body text is empty after cleaning"
	case FailNoTokens:
		return fmt.Sprintf("no tokens found in body (%d words)", f.WordCount)
	case FailNoCandidates:
		return fmt.Sprintf("not enough valid anchor candidates after all relaxation rounds (%d words)", f.WordCount)
	case FailQuotaDeficit:
		return fmt.Sprintf("quota deficit: need %d anchors, only %d available", f.Needed, f.Available)
	}
	return string(f.Kind)
}

// AsFailure unwraps err into a *Failure when it is one
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
