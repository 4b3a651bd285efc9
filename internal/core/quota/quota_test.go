package quota

import (
	"errors"
	"testing"
)

func TestPresetBrackets(t *testing.T) {
	cases := []struct {
		words int
		want  Preset
	}{
		{0, Preset{Total: 4, Exact: 1, Phrase: 1, Semantic: 2}},
		{700, Preset{Total: 4, Exact: 1, Phrase: 1, Semantic: 2}},
		{701, Preset{Total: 6, Exact: 1, Phrase: 3, Semantic: 2}},
		{1500, Preset{Total: 6, Exact: 1, Phrase: 3, Semantic: 2}},
		{1501, Preset{Total: 8, Exact: 1, Phrase: 4, Semantic: 3}},
		{9000, Preset{Total: 8, Exact: 1, Phrase: 4, Semantic: 3}},
	}
	for _, tc := range cases {
		got := PresetFor(tc.words)
		if got != tc.want {
			t.Fatalf("PresetFor(%d) = %+v, want %+v", tc.words, got, tc.want)
		}
		if got.Exact+got.Phrase+got.Semantic != got.Total {
			t.Fatalf("PresetFor(%d): tiers do not sum to total: %+v", tc.words, got)
		}
	}
}

func TestResolveBaseAssignment(t *testing.T) {
	preset := PresetFor(500)
	got, err := Resolve(preset, Counts{Exact: 3, Phrase: 2, Semantic: 5})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := Counts{Exact: 1, Phrase: 1, Semantic: 2}
	if got != want {
		t.Fatalf("Resolve = %+v, want %+v", got, want)
	}
}

func TestResolveBorrowsPhraseFirst(t *testing.T) {
	// no exact anchors available, phrase has surplus to cover the hole
	preset := PresetFor(500)
	got, err := Resolve(preset, Counts{Exact: 0, Phrase: 4, Semantic: 2})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Sum() != preset.Total {
		t.Fatalf("resolved sum = %d, want %d (%+v)", got.Sum(), preset.Total, got)
	}
	if got.Phrase != 2 || got.Semantic != 2 || got.Exact != 0 {
		t.Fatalf("borrow order wrong: %+v", got)
	}
}

func TestResolveBorrowFallsThrough(t *testing.T) {
	// phrase surplus is not enough, semantic then exact must chip in
	preset := PresetFor(1000) // total 6: 1/3/2
	got, err := Resolve(preset, Counts{Exact: 3, Phrase: 1, Semantic: 2})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Sum() != preset.Total {
		t.Fatalf("resolved sum = %d, want %d (%+v)", got.Sum(), preset.Total, got)
	}
	want := Counts{Exact: 3, Phrase: 1, Semantic: 2}
	if got != want {
		t.Fatalf("Resolve = %+v, want %+v", got, want)
	}
}

func TestResolveDeficit(t *testing.T) {
	preset := PresetFor(2000) // total 8
	_, err := Resolve(preset, Counts{Exact: 1, Phrase: 2, Semantic: 3})
	if err == nil {
		t.Fatal("expected deficit error")
	}
	var deficit *DeficitError
	if !errors.As(err, &deficit) {
		t.Fatalf("expected *DeficitError, got %T", err)
	}
	if deficit.Needed != 8 || deficit.Available != 6 {
		t.Fatalf("deficit = %+v", deficit)
	}
}
