// Package service drives the mother, daughters, granddaughters link workflow
package service

import (
	"context"
	"fmt"
	"time"

	"anchors/internal/core/assign"
	"anchors/internal/core/cannibal"
	"anchors/internal/core/extract"
	"anchors/internal/core/normalize"
	"anchors/internal/platform/cache"
	perr "anchors/internal/platform/errors"
	"anchors/internal/platform/logger"
	pnet "anchors/internal/platform/net"
	analysisdomain "anchors/internal/services/analysis/domain"
	anchorsdomain "anchors/internal/services/anchors/domain"
	anchorssvc "anchors/internal/services/anchors/service"
	contentdomain "anchors/internal/services/content/domain"
	"anchors/internal/services/linkbuilder/domain"
)

const (
	stateTTL  = 24 * time.Hour
	stateSize = 4096
)

// Service defines the link building workflow contract
type Service interface {
	State(ctx context.Context) (domain.State, error)
	Reset(ctx context.Context) (domain.State, error)
	SetMother(ctx context.Context, in domain.SetMotherInput) (domain.State, error)
	SetDaughters(ctx context.Context, in domain.SetDaughtersInput) (domain.State, error)
	SetGranddaughters(ctx context.Context, in domain.SetGranddaughtersInput) (domain.State, error)
	Export(ctx context.Context) (domain.Export, error)

	contentdomain.AnnotatorPort
}

// Svc implements the workflow over a per-user TTL state cache
type Svc struct {
	reader    contentdomain.ReaderPort
	profiles  analysisdomain.ProfilesPort
	extractor anchorssvc.Service
	scorer    *cannibal.Scorer
	states    *cache.Cache[domain.State]
}

// New constructs the linkbuilder service
func New(reader contentdomain.ReaderPort, profiles analysisdomain.ProfilesPort, extractor anchorssvc.Service) *Svc {
	switch {
	case reader == nil:
		panic("linkbuilder.Service requires a content reader")
	case profiles == nil:
		panic("linkbuilder.Service requires an analysis profiles port")
	case extractor == nil:
		panic("linkbuilder.Service requires an anchors extractor")
	}
	return &Svc{
		reader:    reader,
		profiles:  profiles,
		extractor: extractor,
		scorer:    cannibal.NewScorer(normalize.New()),
		states:    cache.New[domain.State](stateSize, stateTTL),
	}
}

// State returns the caller's workflow, empty when none is in progress
func (s *Svc) State(ctx context.Context) (domain.State, error) {
	key, err := s.stateKey(ctx)
	if err != nil {
		return domain.State{}, err
	}
	if st, ok := s.states.Get(key); ok {
		return st, nil
	}
	return domain.NewState(), nil
}

// Reset discards the caller's workflow and returns a fresh one
func (s *Svc) Reset(ctx context.Context) (domain.State, error) {
	key, err := s.stateKey(ctx)
	if err != nil {
		return domain.State{}, err
	}
	s.states.Delete(key)
	return domain.NewState(), nil
}

// SetMother selects the mother document, mines its anchors and resets every
// downstream selection. The daughter limit follows the mined anchor count
func (s *Svc) SetMother(ctx context.Context, in domain.SetMotherInput) (domain.State, error) {
	key, err := s.stateKey(ctx)
	if err != nil {
		return domain.State{}, err
	}

	out, err := s.extractor.Extract(ctx, anchorsdomain.ExtractInput{
		ID:        in.ID,
		Canonical: in.Canonical,
		BodyText:  in.BodyText,
	})
	if err != nil {
		return domain.State{}, err
	}

	st := domain.NewState()
	st.Canonical = in.Canonical
	st.MotherQuery = in.Query
	st.MotherInBody = in.InBody
	st.MotherID = in.ID
	st.MotherAnchors = out.Result.Anchors
	st.DaughterLimit = maxInt(1, len(st.MotherAnchors))

	s.states.Set(key, st)
	return st, nil
}

// SetDaughters selects the documents the mother links to and mines each one's
// anchors for the workflow canonical. The granddaughter limit follows the
// total number of daughter anchors
func (s *Svc) SetDaughters(ctx context.Context, in domain.SetDaughtersInput) (domain.State, error) {
	key, err := s.stateKey(ctx)
	if err != nil {
		return domain.State{}, err
	}
	st, ok := s.states.Get(key)
	if !ok || st.MotherID == 0 {
		return domain.State{}, perr.InvalidArgf("select a mother document first")
	}

	ids := filterIDs(in.IDs, map[int64]bool{st.MotherID: true})
	if len(ids) == 0 {
		return domain.State{}, perr.InvalidArgf("no usable daughter ids")
	}
	if len(ids) > st.DaughterLimit {
		return domain.State{}, perr.InvalidArgf(
			"too many daughters: %d selected, limit %d", len(ids), st.DaughterLimit)
	}

	st.DaughterQuery = in.Query
	st.DaughterInBody = in.InBody
	st.DaughterIDs = ids
	st.DaughterAnchors = s.mineAnchors(ctx, ids, st.Canonical)

	total := 0
	for _, anchors := range st.DaughterAnchors {
		total += len(anchors)
	}
	st.GranddaughterLimit = maxInt(1, total)
	st.GranddaughterIDs = []int64{}

	s.states.Set(key, st)
	return st, nil
}

// SetGranddaughters selects the documents the daughters link to
func (s *Svc) SetGranddaughters(ctx context.Context, in domain.SetGranddaughtersInput) (domain.State, error) {
	key, err := s.stateKey(ctx)
	if err != nil {
		return domain.State{}, err
	}
	st, ok := s.states.Get(key)
	if !ok || st.MotherID == 0 {
		return domain.State{}, perr.InvalidArgf("select a mother document first")
	}
	if len(st.DaughterIDs) == 0 {
		return domain.State{}, perr.InvalidArgf("select daughter documents first")
	}

	taken := map[int64]bool{st.MotherID: true}
	for _, id := range st.DaughterIDs {
		taken[id] = true
	}
	ids := filterIDs(in.IDs, taken)
	if len(ids) == 0 {
		return domain.State{}, perr.InvalidArgf("no usable granddaughter ids")
	}
	if len(ids) > st.GranddaughterLimit {
		return domain.State{}, perr.InvalidArgf(
			"too many granddaughters: %d selected, limit %d", len(ids), st.GranddaughterLimit)
	}

	st.GranddaughterQuery = in.Query
	st.GranddaughterInBody = in.InBody
	st.GranddaughterIDs = ids

	s.states.Set(key, st)
	return st, nil
}

// Export renders the full link plan as CSV rows: mother to daughters with the
// mother's anchors, then each daughter to the granddaughters with its own
func (s *Svc) Export(ctx context.Context) (domain.Export, error) {
	key, err := s.stateKey(ctx)
	if err != nil {
		return domain.Export{}, err
	}
	st, ok := s.states.Get(key)
	if !ok || st.MotherID == 0 {
		return domain.Export{}, perr.Wrap(
			assign.ErrExportUnavailable, perr.ErrorCodeInvalidArgument, assign.ErrExportUnavailable.Error())
	}

	resolve := func(id int64) (string, bool) { return s.reader.ResolveURL(ctx, id) }

	var rows []assign.Row
	if motherURL, ok := resolve(st.MotherID); ok {
		rows = append(rows, assign.RoundRobin(
			domain.AnchorTexts(st.MotherAnchors), st.DaughterIDs, motherURL, st.Canonical, resolve)...)
	}
	for _, id := range st.DaughterIDs {
		fromURL, ok := resolve(id)
		if !ok {
			continue
		}
		rows = append(rows, assign.RoundRobin(
			domain.AnchorTexts(st.DaughterAnchors[id]), st.GranddaughterIDs, fromURL, st.Canonical, resolve)...)
	}

	csv, err := assign.CSV(rows)
	if err != nil {
		return domain.Export{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, err.Error())
	}

	var summary domain.ExportSummary
	summary.Mother.ID = st.MotherID
	summary.Mother.Anchors = len(st.MotherAnchors)
	summary.Daughters.Count = len(st.DaughterIDs)
	for _, anchors := range st.DaughterAnchors {
		summary.Daughters.Anchors += len(anchors)
	}
	summary.Granddaughters.Count = len(st.GranddaughterIDs)

	return domain.Export{
		Filename: fmt.Sprintf("linkbuilder-%d.csv", st.MotherID),
		CSV:      csv,
		Rows:     rows,
		Summary:  summary,
	}, nil
}

// mineAnchors extracts anchors per document, tolerating per-document failures
// so one thin daughter does not block the whole selection
func (s *Svc) mineAnchors(ctx context.Context, ids []int64, canonical string) map[int64][]extract.Anchor {
	out := make(map[int64][]extract.Anchor, len(ids))
	for _, id := range ids {
		res, err := s.extractor.Extract(ctx, anchorsdomain.ExtractInput{ID: id, Canonical: canonical})
		if err != nil {
			logger.C(ctx).Debug().Err(err).Int64("document_id", id).Msg("daughter anchor mining failed")
			out[id] = []extract.Anchor{}
			continue
		}
		out[id] = res.Result.Anchors
	}
	return out
}

func (s *Svc) stateKey(ctx context.Context) (string, error) {
	user := pnet.UserID(ctx)
	if user == "" {
		return "", perr.Unauthorizedf("missing user identity")
	}
	return "linkbuilder:state:" + user, nil
}

// filterIDs dedupes ids, dropping non-positive values and anything in taken
func filterIDs(ids []int64, taken map[int64]bool) []int64 {
	seen := map[int64]bool{}
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 || taken[id] || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
