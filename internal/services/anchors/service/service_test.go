package service

import (
	"context"
	"strings"
	"testing"

	perr "anchors/internal/platform/errors"
	"anchors/internal/platform/testkit"
	"anchors/internal/services/anchors/domain"
	contentdomain "anchors/internal/services/content/domain"
)

type fakeReader struct {
	doc      contentdomain.Document
	plain    string
	plainErr error
}

func (f *fakeReader) Get(ctx context.Context, id int64) (contentdomain.Document, error) {
	if id != f.doc.ID {
		return contentdomain.Document{}, perr.NotFoundf("document %d not found", id)
	}
	return f.doc, nil
}

func (f *fakeReader) Detail(ctx context.Context, id int64) (contentdomain.DocumentDetail, error) {
	doc, err := f.Get(ctx, id)
	if err != nil {
		return contentdomain.DocumentDetail{}, err
	}
	return contentdomain.DocumentDetail{ID: doc.ID, Title: doc.Title, BodyText: f.plain}, nil
}

func (f *fakeReader) PlainText(ctx context.Context, id int64) (string, error) {
	if f.plainErr != nil {
		return "", f.plainErr
	}
	if _, err := f.Get(ctx, id); err != nil {
		return "", err
	}
	return f.plain, nil
}

func (f *fakeReader) ResolveURL(ctx context.Context, id int64) (string, bool) {
	return "https://example.test/doc", id == f.doc.ID
}

// richBody repeats the canonical phrase in varied sentences often enough for
// the short-document preset to fill
func richBody() string {
	var b strings.Builder
	for i := 0; i < 6; i++ {
		b.WriteString("El casetón de poliestireno EPS aligera la losa reticular y facilita el trabajo en obra. ")
	}
	for i := 0; i < 3; i++ {
		b.WriteString("La losa reticular aligerada reduce las cargas muertas del edificio. ")
		b.WriteString("Los bloques de unicel resisten la humedad durante el colado. ")
	}
	for i := 0; i < 20; i++ {
		b.WriteString("La cuadrilla coloca cada pieza sobre la cimbra y revisa los apoyos antes del colado final para asegurar una superficie uniforme. ")
	}
	return b.String()
}

func TestNewRequiresReader(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil) })
}

func TestExtractFromStoredContent(t *testing.T) {
	reader := &fakeReader{
		doc:   contentdomain.Document{ID: 1, Title: "Casetón de poliestireno para losas"},
		plain: richBody(),
	}
	svc := New(reader)

	out, err := svc.Extract(context.Background(), domain.ExtractInput{
		ID:        1,
		Canonical: "casetón de poliestireno",
	})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if out.ID != 1 {
		t.Fatalf("ID = %d", out.ID)
	}
	if got := len(out.Result.Anchors); got != out.Result.Quotas.Total {
		t.Fatalf("anchors = %d, quota total = %d", got, out.Result.Quotas.Total)
	}
}

func TestExtractPrefersProvidedBody(t *testing.T) {
	reader := &fakeReader{
		doc:      contentdomain.Document{ID: 1, Title: "Casetón de poliestireno"},
		plainErr: perr.DBf("stored content unreachable"),
	}
	svc := New(reader)

	out, err := svc.Extract(context.Background(), domain.ExtractInput{
		ID:        1,
		Canonical: "casetón de poliestireno",
		BodyText:  "<p>" + richBody() + "</p>",
	})
	if err != nil {
		t.Fatalf("Extract with provided body: %v", err)
	}
	if len(out.Result.Anchors) == 0 {
		t.Fatalf("no anchors mined from provided body")
	}
}

func TestExtractMissingDocument(t *testing.T) {
	svc := New(&fakeReader{doc: contentdomain.Document{ID: 1}})
	_, err := svc.Extract(context.Background(), domain.ExtractInput{ID: 9, Canonical: "caseton"})
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("code = %v, want not found", perr.CodeOf(err))
	}
}

func TestExtractThinBodyMapsToInvalidArgument(t *testing.T) {
	reader := &fakeReader{
		doc:   contentdomain.Document{ID: 1, Title: "Pagina corta"},
		plain: "de la que en los unos con para por como pero tanto",
	}
	svc := New(reader)

	_, err := svc.Extract(context.Background(), domain.ExtractInput{ID: 1, Canonical: "palabra clave"})
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("code = %v, want invalid argument", perr.CodeOf(err))
	}
}

func TestPresets(t *testing.T) {
	svc := New(&fakeReader{doc: contentdomain.Document{ID: 1}})
	if got := svc.Presets(500); got.Total != 4 {
		t.Fatalf("Presets(500).Total = %d, want 4", got.Total)
	}
	if got := svc.Presets(1200); got.Total != 6 {
		t.Fatalf("Presets(1200).Total = %d, want 6", got.Total)
	}
	if got := svc.Presets(3000); got.Total != 8 {
		t.Fatalf("Presets(3000).Total = %d, want 8", got.Total)
	}
}
