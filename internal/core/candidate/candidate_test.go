package candidate

import (
	"testing"

	"anchors/internal/core/normalize"
	"anchors/internal/core/rules"
)

func TestGenerateWindows(t *testing.T) {
	n := normalize.New()
	text := "losa reticular aligerada con poliestireno"
	tokens := n.Tokenize(text)

	cands := Generate(text, tokens, 3)

	want := map[string]bool{
		"losa reticular":                 true,
		"losa reticular aligerada":       true,
		"reticular aligerada":            true,
		"reticular aligerada con":        true,
		"aligerada con":                  true,
		"aligerada con poliestireno":     true,
		"con poliestireno":               true,
	}
	if len(cands) != len(want) {
		t.Fatalf("got %d candidates, want %d: %+v", len(cands), len(want), cands)
	}
	for _, c := range cands {
		if !want[c.Text] {
			t.Fatalf("unexpected candidate %q", c.Text)
		}
	}
}

func TestGenerateLengthBounds(t *testing.T) {
	n := normalize.New()

	// two-token windows under 6 chars must be dropped
	short := "ir ya"
	if cands := Generate(short, n.Tokenize(short), MaxWindow); len(cands) != 0 {
		t.Fatalf("expected no candidates for short text, got %+v", cands)
	}

	// a window over 80 chars must be dropped while shorter ones survive
	long := "palabra superlarguisima extraordinariamente descomunalmente interminablemente grandota"
	for _, c := range Generate(long, n.Tokenize(long), MaxWindow) {
		if len([]rune(c.Text)) > 80 {
			t.Fatalf("candidate over 80 chars leaked: %q", c.Text)
		}
	}
}

func TestGenerateStartOffsets(t *testing.T) {
	n := normalize.New()
	text := "muro de carga firme"
	tokens := n.Tokenize(text)
	for _, c := range Generate(text, tokens, MaxWindow) {
		if c.Start != c.Tokens[0].RuneOffset {
			t.Fatalf("candidate %q start %d != first token offset %d", c.Text, c.Start, c.Tokens[0].RuneOffset)
		}
	}
}

func TestValidatorRules(t *testing.T) {
	n := normalize.New()
	v := NewValidator(n, rules.MustLoad())
	coreTerms := []string{"caseton", "poliestireno", "losa"}

	cases := []struct {
		name         string
		text         string
		enforceVerbs bool
		want         bool
	}{
		{"valid on-topic phrase", "losa reticular aligerada", true, true},
		{"punctuation", "losa reticular, aligerada", true, false},
		{"url", "losa en https://ejemplo.org", true, false},
		{"email", "losa ventas@ejemplo.com pedidos", true, false},
		{"phone", "losa al 55 12345678", true, false},
		{"price", "losa desde 900 mxn", true, false},
		{"domain", "losa segun ejemplo.com hoy", true, false},
		{"cta term", "cotiza tu losa reticular", true, false},
		{"boilerplate", "en definitiva la losa gana", true, false},
		{"internal stopword ok", "losa muy grande", true, true},
		{"one alphabetic token", "losa 1234", true, false},
		{"stopword edge", "de losa reticular", true, false},
		{"weak verb enforced", "losa reticular mejora resistencia", true, false},
		{"weak verb relaxed", "losa reticular mejora resistencia", false, true},
		{"off topic", "muro de carga firme", true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks := n.Tokenize(tc.text)
			c := Candidate{Text: tc.text, Tokens: toks, Start: 0}
			if got := v.Valid(c, coreTerms, tc.enforceVerbs); got != tc.want {
				t.Fatalf("Valid(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}
