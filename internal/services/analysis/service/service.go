// Package service builds document comparison profiles
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"anchors/internal/core/cannibal"
	"anchors/internal/core/ngram"
	"anchors/internal/core/normalize"
	"anchors/internal/platform/cache"
	contentdomain "anchors/internal/services/content/domain"
)

const (
	profileTTL  = 24 * time.Hour
	profileSize = 2048

	// matches the harvest shape used during anchor extraction
	ngramMin = 2
	ngramMax = 3
	ngramTop = 20
)

// Service builds DocProfiles from stored documents
type Service interface {
	Profile(ctx context.Context, id int64) (cannibal.DocProfile, error)
}

// Svc implements Service with a TTL cache in front of the content reader
type Svc struct {
	reader contentdomain.ReaderPort
	norm   *normalize.Normalizer
	cache  *cache.Cache[cannibal.DocProfile]
}

// New constructs the analysis service
func New(reader contentdomain.ReaderPort) *Svc {
	if reader == nil {
		panic("analysis.Service requires a content reader")
	}
	return &Svc{
		reader: reader,
		norm:   normalize.New(),
		cache:  cache.New[cannibal.DocProfile](profileSize, profileTTL),
	}
}

// Profile returns the comparison profile for id, computing it on cache miss
func (s *Svc) Profile(ctx context.Context, id int64) (cannibal.DocProfile, error) {
	return s.cache.GetOrCompute(profileKey(id), func() (cannibal.DocProfile, error) {
		return s.build(ctx, id)
	})
}

func (s *Svc) build(ctx context.Context, id int64) (cannibal.DocProfile, error) {
	doc, err := s.reader.Get(ctx, id)
	if err != nil {
		return cannibal.DocProfile{}, err
	}
	plain, err := s.reader.PlainText(ctx, id)
	if err != nil {
		return cannibal.DocProfile{}, err
	}

	normPlain := s.norm.Normalize(plain)
	return cannibal.DocProfile{
		ID:        doc.ID,
		TitleNorm: s.norm.Normalize(doc.Title),
		SlugNorm:  s.norm.Normalize(strings.ReplaceAll(doc.Slug, "-", " ")),
		NormPlain: normPlain,
		Vector:    cannibal.Vectorize(s.norm, normPlain),
		TopNgrams: ngram.Top(s.norm, normPlain, ngramMin, ngramMax, ngramTop),
	}, nil
}

func profileKey(id int64) string {
	return fmt.Sprintf("analysis:profile:%d", id)
}
