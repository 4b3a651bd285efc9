package service

import (
	"context"
	"testing"

	"anchors/internal/core/cannibal"
	perr "anchors/internal/platform/errors"
)

func newAnnotateSvc(profiles map[int64]cannibal.DocProfile) *Svc {
	reader := &fakeReader{urls: map[int64]string{}}
	extractor := &fakeExtractor{anchors: map[int64][]string{}}
	return New(reader, &fakeProfiles{profiles: profiles}, extractor)
}

func TestAnnotateSelf(t *testing.T) {
	svc := newAnnotateSvc(nil)
	got, err := svc.Annotate(context.Background(), 7, 7, "caseton de poliestireno")
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if got.Score != 0 || got.Level != cannibal.LevelYellow || got.Reasons != nil {
		t.Fatalf("self comparison = %+v, want zero yellow", got)
	}
}

func TestAnnotateScoresTitleAndSlug(t *testing.T) {
	svc := newAnnotateSvc(map[int64]cannibal.DocProfile{
		2: {
			ID:        2,
			TitleNorm: "caseton de poliestireno precios y medidas",
			SlugNorm:  "caseton de poliestireno precios",
		},
		1: {
			ID:        1,
			TitleNorm: "guia de losas reticulares",
			SlugNorm:  "guia losas reticulares",
		},
	})

	got, err := svc.Annotate(context.Background(), 2, 1, "Casetón de Poliestireno")
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if got.Score != 40 || got.Level != cannibal.LevelOrange {
		t.Fatalf("score = %d %s, want 40 orange", got.Score, got.Level)
	}
	if len(got.Reasons) == 0 {
		t.Fatalf("expected reasons, got none")
	}
}

func TestAnnotateMissingProfile(t *testing.T) {
	svc := newAnnotateSvc(map[int64]cannibal.DocProfile{})
	_, err := svc.Annotate(context.Background(), 2, 1, "caseton")
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("code = %v, want not found", perr.CodeOf(err))
	}
}
