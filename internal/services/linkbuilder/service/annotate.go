package service

import (
	"context"

	"anchors/internal/core/cannibal"
)

// Annotate scores how strongly candidateID competes with referenceID for the
// canonical phrase. Satisfies the content annotator port so document search
// can decorate results when this module is mounted
func (s *Svc) Annotate(ctx context.Context, candidateID, referenceID int64, canonical string) (cannibal.Score, error) {
	if candidateID == referenceID {
		return cannibal.Score{Level: cannibal.LevelYellow}, nil
	}
	candidate, err := s.profiles.Profile(ctx, candidateID)
	if err != nil {
		return cannibal.Score{}, err
	}
	reference, err := s.profiles.Profile(ctx, referenceID)
	if err != nil {
		return cannibal.Score{}, err
	}
	return s.scorer.Compare(candidate, reference, canonical), nil
}
