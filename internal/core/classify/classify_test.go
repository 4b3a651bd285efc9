package classify

import "testing"

func TestClassify(t *testing.T) {
	const (
		canon = "caseton de poliestireno"
		core  = "caseton poliestireno"
	)

	cases := []struct {
		name   string
		anchor string
		want   Tier
	}{
		{"identity with canonical", "caseton de poliestireno", TierExact},
		{"identity with core", "caseton poliestireno", TierExact},
		{"superset of canonical", "caseton de poliestireno eps", TierPhrase},
		{"superset of core", "mejor caseton poliestireno ligero", TierPhrase},
		{"related only", "losa reticular aligerada", TierSemantic},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.anchor, canon, core); got != tc.want {
				t.Fatalf("Classify(%q) = %s, want %s", tc.anchor, got, tc.want)
			}
		})
	}
}

func TestClassifyEmptyCanonical(t *testing.T) {
	if got := Classify("cualquier cosa", "", ""); got != TierSemantic {
		t.Fatalf("empty canonical should classify semantic, got %s", got)
	}
}

func TestTierOrderAndNames(t *testing.T) {
	if !(TierExact < TierPhrase && TierPhrase < TierSemantic) {
		t.Fatal("tier rank order broken")
	}
	names := map[Tier]string{TierExact: "exact", TierPhrase: "phrase", TierSemantic: "semantic"}
	for tier, want := range names {
		if tier.String() != want {
			t.Fatalf("tier %d name = %q, want %q", tier, tier.String(), want)
		}
	}
}
