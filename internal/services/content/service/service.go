// Package service contains document workflows
package service

import (
	"context"

	"anchors/internal/core/normalize"
	"anchors/internal/platform/logger"
	"anchors/internal/services/content/domain"
	"anchors/internal/services/content/repo"
)

// Service defines the content service contract
type Service interface {
	domain.ReaderPort
	domain.SearcherPort
}

// Svc implements the content service
type Svc struct {
	repo repo.Repo
	norm *normalize.Normalizer
}

// New constructs a content service
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("content.Service requires a non nil Repo")
	}
	return &Svc{repo: r, norm: normalize.New()}
}

// Get returns a published document by id
func (s *Svc) Get(ctx context.Context, id int64) (domain.Document, error) {
	return s.repo.Get(ctx, id)
}

// Detail returns the document with its cleaned body and word count
func (s *Svc) Detail(ctx context.Context, id int64) (domain.DocumentDetail, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.DocumentDetail{}, err
	}
	clean := CleanContent(doc.RawContent)
	return domain.DocumentDetail{
		ID:        doc.ID,
		Title:     doc.Title,
		BodyText:  clean,
		WordCount: s.norm.WordCount(clean),
	}, nil
}

// PlainText returns just the cleaned body text
func (s *Svc) PlainText(ctx context.Context, id int64) (string, error) {
	detail, err := s.Detail(ctx, id)
	if err != nil {
		return "", err
	}
	return detail.BodyText, nil
}

// ResolveURL maps an id to its canonical URL
func (s *Svc) ResolveURL(ctx context.Context, id int64) (string, bool) {
	url, err := s.repo.URL(ctx, id)
	if err != nil {
		logger.C(ctx).Debug().Err(err).Int64("document_id", id).Msg("url resolution failed")
		return "", false
	}
	return url, true
}

// Search returns a page of matching documents
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.SearchPage, error) {
	return s.repo.Search(ctx, in)
}
