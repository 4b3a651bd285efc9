// Package service runs anchor extraction over stored documents
package service

import (
	"context"
	"strings"

	"anchors/internal/core/extract"
	"anchors/internal/core/normalize"
	"anchors/internal/core/quota"
	"anchors/internal/core/rules"
	perr "anchors/internal/platform/errors"
	"anchors/internal/services/anchors/domain"
	contentdomain "anchors/internal/services/content/domain"
	contentsvc "anchors/internal/services/content/service"
)

// Service defines the anchors service contract
type Service interface {
	Extract(ctx context.Context, in domain.ExtractInput) (domain.ExtractOutput, error)
	Presets(wordCount int) quota.Preset
}

// Svc implements the anchors service
type Svc struct {
	reader    contentdomain.ReaderPort
	extractor *extract.Extractor
}

// New constructs the anchors service
func New(reader contentdomain.ReaderPort) *Svc {
	if reader == nil {
		panic("anchors.Service requires a content reader")
	}
	return &Svc{
		reader:    reader,
		extractor: extract.New(normalize.New(), rules.MustLoad()),
	}
}

// Extract mines anchors for in.Canonical from the document body. A provided
// BodyText takes precedence over the stored content so editors can mine
// unsaved drafts
func (s *Svc) Extract(ctx context.Context, in domain.ExtractInput) (domain.ExtractOutput, error) {
	doc, err := s.reader.Get(ctx, in.ID)
	if err != nil {
		return domain.ExtractOutput{}, err
	}

	// a provided draft that cleans to nothing falls back to stored content
	body := contentsvc.CleanContent(strings.TrimSpace(in.BodyText))
	if body == "" {
		body, err = s.reader.PlainText(ctx, in.ID)
		if err != nil {
			return domain.ExtractOutput{}, err
		}
	}

	res, err := s.extractor.Extract(in.Canonical, body, doc.Title)
	if err != nil {
		if f, ok := extract.AsFailure(err); ok {
			return domain.ExtractOutput{}, perr.Wrap(f, perr.ErrorCodeInvalidArgument, f.Error())
		}
		return domain.ExtractOutput{}, err
	}
	return domain.ExtractOutput{ID: in.ID, Result: *res}, nil
}

// Presets reports the per-tier quota preset for a word count
func (s *Svc) Presets(wordCount int) quota.Preset {
	return s.extractor.Presets(wordCount)
}
