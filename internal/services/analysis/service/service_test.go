package service

import (
	"context"
	"testing"

	perr "anchors/internal/platform/errors"
	"anchors/internal/platform/testkit"
	contentdomain "anchors/internal/services/content/domain"
)

type fakeReader struct {
	docs  map[int64]contentdomain.Document
	plain map[int64]string
	gets  int
}

func (f *fakeReader) Get(ctx context.Context, id int64) (contentdomain.Document, error) {
	f.gets++
	doc, ok := f.docs[id]
	if !ok {
		return contentdomain.Document{}, perr.NotFoundf("document %d not found", id)
	}
	return doc, nil
}

func (f *fakeReader) Detail(ctx context.Context, id int64) (contentdomain.DocumentDetail, error) {
	doc, err := f.Get(ctx, id)
	if err != nil {
		return contentdomain.DocumentDetail{}, err
	}
	return contentdomain.DocumentDetail{ID: doc.ID, Title: doc.Title, BodyText: f.plain[id]}, nil
}

func (f *fakeReader) PlainText(ctx context.Context, id int64) (string, error) {
	if _, err := f.Get(ctx, id); err != nil {
		return "", err
	}
	return f.plain[id], nil
}

func (f *fakeReader) ResolveURL(ctx context.Context, id int64) (string, bool) {
	_, ok := f.docs[id]
	return "https://example.test/doc", ok
}

func TestNewRequiresReader(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil) })
}

func TestProfileFields(t *testing.T) {
	reader := &fakeReader{
		docs: map[int64]contentdomain.Document{
			1: {ID: 1, Title: "Casetón de Poliestireno", Slug: "caseton-de-poliestireno"},
		},
		plain: map[int64]string{
			1: "El casetón de poliestireno aligera la losa reticular en cada obra moderna.",
		},
	}
	svc := New(reader)

	p, err := svc.Profile(context.Background(), 1)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("ID = %d", p.ID)
	}
	if p.TitleNorm != "caseton de poliestireno" {
		t.Fatalf("TitleNorm = %q", p.TitleNorm)
	}
	if p.SlugNorm != "caseton de poliestireno" {
		t.Fatalf("SlugNorm = %q, want hyphens as spaces", p.SlugNorm)
	}
	if p.NormPlain == "" || p.NormPlain[0] != 'e' {
		t.Fatalf("NormPlain = %q, want normalized body", p.NormPlain)
	}
	if p.Vector["caseton"] != 1 || p.Vector["poliestireno"] != 1 {
		t.Fatalf("Vector = %v, want caseton and poliestireno counted", p.Vector)
	}
	if len(p.TopNgrams) == 0 {
		t.Fatalf("TopNgrams empty")
	}
}

func TestProfileCaches(t *testing.T) {
	reader := &fakeReader{
		docs:  map[int64]contentdomain.Document{1: {ID: 1, Title: "Titulo", Slug: "titulo"}},
		plain: map[int64]string{1: "contenido del documento"},
	}
	svc := New(reader)

	if _, err := svc.Profile(context.Background(), 1); err != nil {
		t.Fatalf("Profile: %v", err)
	}
	before := reader.gets
	if _, err := svc.Profile(context.Background(), 1); err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if reader.gets != before {
		t.Fatalf("second Profile hit the reader (%d -> %d reads)", before, reader.gets)
	}
}

func TestProfileMissingDocument(t *testing.T) {
	svc := New(&fakeReader{docs: map[int64]contentdomain.Document{}, plain: map[int64]string{}})
	_, err := svc.Profile(context.Background(), 9)
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("code = %v, want not found", perr.CodeOf(err))
	}
}
