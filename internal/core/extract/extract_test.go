package extract

import (
	"strings"
	"testing"

	"anchors/internal/core/classify"
	"anchors/internal/core/normalize"
	"anchors/internal/core/rules"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	p, err := rules.Load()
	if err != nil {
		t.Fatalf("rules.Load: %v", err)
	}
	return New(normalize.New(), p)
}

// buildBody assembles a short article: six sentences carrying the canonical
// phrase, repeated supporting sentences, and enough filler to stay in the
// lowest preset bracket
func buildBody() string {
	var b strings.Builder
	phrase := "El casetón de poliestireno EPS aligera la losa reticular y facilita el trabajo en obra. "
	support1 := "La losa reticular aligerada reduce las cargas muertas del edificio. "
	support2 := "Los bloques de unicel resisten la humedad durante el colado. "
	filler := "La cuadrilla coloca cada pieza sobre la cimbra y revisa los apoyos antes del colado final para asegurar una superficie uniforme. "

	for i := 0; i < 6; i++ {
		b.WriteString(phrase)
	}
	for i := 0; i < 3; i++ {
		b.WriteString(support1)
		b.WriteString(support2)
	}
	for i := 0; i < 20; i++ {
		b.WriteString(filler)
	}
	return b.String()
}

func TestExtractEndToEnd(t *testing.T) {
	e := newExtractor(t)
	n := normalize.New()

	canonical := "casetón de poliestireno"
	title := "Casetón de poliestireno para losas"
	body := buildBody()

	res, err := e.Extract(canonical, body, title)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if res.WordCount > 700 {
		t.Fatalf("test body too long: %d words", res.WordCount)
	}
	if res.Preset.Total != 4 {
		t.Fatalf("preset total = %d, want 4", res.Preset.Total)
	}
	if len(res.Anchors) != 4 {
		t.Fatalf("got %d anchors, want 4: %+v", len(res.Anchors), res.Anchors)
	}
	if res.Quotas.Total != 4 || res.Quotas.Exact != 1 || res.Quotas.Phrase != 1 || res.Quotas.Semantic != 2 {
		t.Fatalf("quotas = %+v, want 4/1/1/2", res.Quotas)
	}

	canonNorm := n.Normalize(canonical)
	coreNorm := n.CanonicalCore(canonical)
	normBody := n.Normalize(normalize.Collapse(body))

	byTier := map[classify.Tier][]Anchor{}
	for _, a := range res.Anchors {
		byTier[a.Tier] = append(byTier[a.Tier], a)
	}
	if len(byTier[classify.TierExact]) != 1 || len(byTier[classify.TierPhrase]) != 1 || len(byTier[classify.TierSemantic]) != 2 {
		t.Fatalf("tier split wrong: %+v", res.Anchors)
	}

	exact := byTier[classify.TierExact][0]
	if exact.NormText() != canonNorm {
		t.Fatalf("exact anchor = %q, want norm %q", exact.Text, canonNorm)
	}
	if exact.Frequency < 6 {
		t.Fatalf("exact frequency = %d, want >= 6", exact.Frequency)
	}

	phrase := byTier[classify.TierPhrase][0]
	if phrase.NormText() != "caseton de poliestireno eps" {
		t.Fatalf("phrase anchor = %q", phrase.Text)
	}

	for _, a := range byTier[classify.TierSemantic] {
		if strings.Contains(a.NormText(), canonNorm) || strings.Contains(a.NormText(), coreNorm) {
			t.Fatalf("semantic anchor %q contains the canonical", a.Text)
		}
	}

	// selection is globally ordered by tier rank
	if res.Anchors[0].Tier != classify.TierExact || res.Anchors[1].Tier != classify.TierPhrase {
		t.Fatalf("selection out of tier order: %+v", res.Anchors)
	}

	// reported frequencies match whole-word counts in the normalized body
	for _, a := range res.Anchors {
		if got := normalize.WholeWordCount(normBody, a.NormText()); got != a.Frequency {
			t.Fatalf("anchor %q frequency %d, body count %d", a.Text, a.Frequency, got)
		}
		if a.Frequency < 1 {
			t.Fatalf("anchor %q has zero frequency", a.Text)
		}
	}

	// no two anchors share a stopword-stripped signature
	sigs := map[string]string{}
	for _, a := range res.Anchors {
		sig := Signature(n, a.NormText())
		if other, dup := sigs[sig]; dup {
			t.Fatalf("anchors %q and %q share signature %q", a.Text, other, sig)
		}
		sigs[sig] = a.Text
	}
}

func TestExtractPreflightFailures(t *testing.T) {
	e := newExtractor(t)

	cases := []struct {
		name      string
		canonical string
		body      string
		want      FailKind
	}{
		{"missing canonical", "   ", "texto cualquiera", FailMissingCanonical},
		{"empty body", "casetón de poliestireno", "  \n\t ", FailEmptyBody},
		{"no tokens", "casetón de poliestireno", "¡¡ !! ¿? ...", FailNoTokens},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Extract(tc.canonical, tc.body, "")
			f, ok := AsFailure(err)
			if !ok {
				t.Fatalf("expected *Failure, got %v", err)
			}
			if f.Kind != tc.want {
				t.Fatalf("kind = %s, want %s", f.Kind, tc.want)
			}
		})
	}
}

func TestExtractNoCandidates(t *testing.T) {
	e := newExtractor(t)
	_, err := e.Extract("palabra clave", "de la que en los unos con para por como pero tanto", "")
	f, ok := AsFailure(err)
	if !ok {
		t.Fatalf("expected *Failure, got %v", err)
	}
	if f.Kind != FailNoCandidates {
		t.Fatalf("kind = %s, want %s", f.Kind, FailNoCandidates)
	}
}

func TestExtractQuotaDeficit(t *testing.T) {
	e := newExtractor(t)
	_, err := e.Extract("otra cosa", "hola mundo feliz", "")
	f, ok := AsFailure(err)
	if !ok {
		t.Fatalf("expected *Failure, got %v", err)
	}
	if f.Kind != FailQuotaDeficit {
		t.Fatalf("kind = %s, want %s", f.Kind, FailQuotaDeficit)
	}
	if f.Needed != 4 || f.Available != 3 {
		t.Fatalf("deficit = need %d avail %d, want 4/3", f.Needed, f.Available)
	}
}

func TestDedupeKeepsStronger(t *testing.T) {
	n := normalize.New()
	anchors := []Anchor{
		{Text: "el caseton de poliestireno", Frequency: 2, norm: "el caseton de poliestireno", start: 40},
		{Text: "caseton de poliestireno", Frequency: 2, norm: "caseton de poliestireno", start: 90},
		{Text: "caseton para poliestireno", Frequency: 5, norm: "caseton para poliestireno", start: 10},
	}
	out := dedupe(n, anchors)
	if len(out) != 1 {
		t.Fatalf("got %d anchors, want 1: %+v", len(out), out)
	}
	if out[0].Frequency != 5 {
		t.Fatalf("kept %+v, want the frequency-5 anchor", out[0])
	}
}

func TestDedupeTieBreaks(t *testing.T) {
	n := normalize.New()
	anchors := []Anchor{
		{Text: "el caseton ligero", Frequency: 3, norm: "el caseton ligero", start: 5},
		{Text: "caseton ligero", Frequency: 3, norm: "caseton ligero", start: 50},
	}
	out := dedupe(n, anchors)
	if len(out) != 1 {
		t.Fatalf("got %d anchors, want 1", len(out))
	}
	if out[0].Text != "caseton ligero" {
		t.Fatalf("kept %q, want the shorter text", out[0].Text)
	}
}
