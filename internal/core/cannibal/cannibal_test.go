package cannibal

import (
	"math"
	"strings"
	"testing"

	"anchors/internal/core/ngram"
	"anchors/internal/core/normalize"
)

func profile(n *normalize.Normalizer, id int64, title, slug, plain string) DocProfile {
	normPlain := n.Normalize(plain)
	return DocProfile{
		ID:        id,
		TitleNorm: n.Normalize(title),
		SlugNorm:  n.Normalize(strings.ReplaceAll(slug, "-", " ")),
		NormPlain: normPlain,
		Vector:    Vectorize(n, normPlain),
		TopNgrams: ngram.Top(n, normPlain, 2, 3, 20),
	}
}

func TestCompareSelfIsZero(t *testing.T) {
	n := normalize.New()
	s := NewScorer(n)
	p := profile(n, 7, "Casetón de poliestireno", "caseton-de-poliestireno", "caseton de poliestireno por todas partes")

	got := s.Compare(p, p, "casetón de poliestireno")
	if got.Score != 0 || got.Level != LevelYellow || got.Reasons != nil {
		t.Fatalf("self comparison = %+v, want zero score", got)
	}
}

func TestCompareMissingIDs(t *testing.T) {
	n := normalize.New()
	s := NewScorer(n)
	p := profile(n, 0, "t", "s", "texto")
	m := profile(n, 3, "t", "s", "texto")
	if got := s.Compare(p, m, "clave"); got.Score != 0 {
		t.Fatalf("missing id comparison = %+v, want zero", got)
	}
}

func TestCompareHighOverlap(t *testing.T) {
	n := normalize.New()
	s := NewScorer(n)

	text := strings.Repeat("caseton de poliestireno para losa reticular aligerada en obra gris moderna ", 30)
	mother := profile(n, 1, "Casetón de poliestireno", "caseton-de-poliestireno", text)
	candidate := profile(n, 2, "Casetón de poliestireno barato", "caseton-de-poliestireno-barato", text)

	got := s.Compare(candidate, mother, "casetón de poliestireno")
	if got.Score < 70 || got.Level != LevelRed {
		t.Fatalf("near-duplicate pages should score red, got %+v", got)
	}
	if got.Score > 100 {
		t.Fatalf("score above cap: %d", got.Score)
	}
	if len(got.Reasons) == 0 {
		t.Fatal("expected reasons on a scoring comparison")
	}
}

func TestCompareUnrelated(t *testing.T) {
	n := normalize.New()
	s := NewScorer(n)

	mother := profile(n, 1, "Casetón de poliestireno", "caseton-de-poliestireno",
		strings.Repeat("caseton de poliestireno para losa reticular ", 20))
	candidate := profile(n, 2, "Recetas de cocina regional", "recetas-cocina-regional",
		strings.Repeat("guiso tradicional con verduras frescas y caldo casero ", 20))

	got := s.Compare(candidate, mother, "casetón de poliestireno")
	if got.Score >= 40 {
		t.Fatalf("unrelated pages should stay yellow, got %+v", got)
	}
	if got.Score < 0 || got.Score > 100 {
		t.Fatalf("score out of bounds: %d", got.Score)
	}
}

func TestVariants(t *testing.T) {
	n := normalize.New()
	s := NewScorer(n)

	vars := s.Variants("casetón de poliestireno")
	want := []string{"caseton de poliestireno", "caseton poliestireno", "caseton", "casetons", "casetones", "poliestireno", "poliestirenos", "poliestirenoes"}
	if len(vars) != len(want) {
		t.Fatalf("variants = %v, want %v", vars, want)
	}
	for i, v := range vars {
		if v != want[i] {
			t.Fatalf("variant[%d] = %q, want %q", i, v, want[i])
		}
	}
}

func TestVariantsSingularizes(t *testing.T) {
	n := normalize.New()
	s := NewScorer(n)
	vars := s.Variants("losas")
	found := false
	for _, v := range vars {
		if v == "losa" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected singular variant in %v", vars)
	}
}

func TestCosine(t *testing.T) {
	a := map[string]int{"losa": 2, "caseton": 3}
	if got := Cosine(a, a); math.Abs(got-1) > 1e-9 {
		t.Fatalf("cosine with self = %v, want 1", got)
	}
	b := map[string]int{"cocina": 1, "receta": 4}
	if got := Cosine(a, b); got != 0 {
		t.Fatalf("orthogonal cosine = %v, want 0", got)
	}
	if got := Cosine(nil, a); got != 0 {
		t.Fatalf("empty vector cosine = %v, want 0", got)
	}
}

func TestVectorize(t *testing.T) {
	n := normalize.New()
	vec := Vectorize(n, "el caseton de poliestireno y la losa con caseton")
	if vec["caseton"] != 2 {
		t.Fatalf("caseton count = %d, want 2", vec["caseton"])
	}
	if _, ok := vec["el"]; ok {
		t.Fatal("stopword leaked into vector")
	}
	if _, ok := vec["y"]; ok {
		t.Fatal("short token leaked into vector")
	}
}

func TestDensity(t *testing.T) {
	n := normalize.New()
	s := NewScorer(n)

	// 10 words, 2 hits -> 200 per 1000
	plain := "caseton aqui caseton alla relleno relleno relleno relleno relleno relleno"
	d := s.Density(plain, []string{"caseton"})
	if math.Abs(d-200) > 1e-9 {
		t.Fatalf("density = %v, want 200", d)
	}
	if s.Density("", []string{"caseton"}) != 0 {
		t.Fatal("empty text density should be 0")
	}
}
