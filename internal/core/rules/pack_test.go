package rules

import "testing"

func mustPack(t *testing.T) *Pack {
	t.Helper()
	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return p
}

func TestLoad(t *testing.T) {
	p := mustPack(t)
	if p.Version != 1 {
		t.Fatalf("version = %d, want 1", p.Version)
	}
	if len(p.SeedTerms()) == 0 {
		t.Fatal("expected seed terms")
	}
}

func TestContainsCTA(t *testing.T) {
	p := mustPack(t)

	cases := []struct {
		in   string
		want bool
	}{
		{"cotiza tu proyecto hoy", true},
		{"escribenos por whatsapp", true},
		{"suscribete al boletin", true},
		{"losa reticular aligerada", false},
		// substring semantics: the denylist hits inside longer words too
		{"casa preciosa del lago", true},
	}
	for _, tc := range cases {
		if got := p.ContainsCTA(tc.in); got != tc.want {
			t.Fatalf("ContainsCTA(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsBoilerplate(t *testing.T) {
	p := mustPack(t)
	if !p.IsBoilerplate("en definitiva") {
		t.Fatal("expected boilerplate hit for exact phrase")
	}
	if !p.IsBoilerplate("en definitiva la mejor opcion") {
		t.Fatal("expected boilerplate hit for prefixed phrase")
	}
	if !p.IsBoilerplate("losa reticular en definitiva") {
		t.Fatal("expected boilerplate hit at phrase end")
	}
	if !p.IsBoilerplate("los resultados en definitiva positivos") {
		t.Fatal("expected boilerplate hit mid-phrase")
	}
	if p.IsBoilerplate("venden definitivamente mas casetones") {
		t.Fatal("filler inside a longer word should not match")
	}
	if p.IsBoilerplate("losa reticular aligerada") {
		t.Fatal("clean phrase should not match")
	}
}

func TestIsWeakVerb(t *testing.T) {
	p := mustPack(t)
	for _, v := range []string{"es", "ofrece", "mejoran", "utilizar"} {
		if !p.IsWeakVerb(v) {
			t.Fatalf("expected %q to be a weak verb", v)
		}
	}
	if p.IsWeakVerb("aligerar") {
		t.Fatal("aligerar is not on the weak verb list")
	}
}

func TestPatternDetectors(t *testing.T) {
	p := mustPack(t)

	if !p.LooksLikeURL("visita https://ejemplo.org ahora") {
		t.Fatal("URL not detected")
	}
	if !p.LooksLikeEmail("escribe a ventas@ejemplo.com") {
		t.Fatal("email not detected")
	}
	if !p.LooksLikePrice("desde 1,500 MXN por pieza") {
		t.Fatal("price not detected")
	}
	if !p.LooksLikePrice("ahorra 20% en tu compra") {
		t.Fatal("percent price not detected")
	}
	if !p.LooksLikeDomain("segun ejemplo.com el mercado crece") {
		t.Fatal("bare domain not detected")
	}
	if p.LooksLikeDomain("la obra avanza con rapidez") {
		t.Fatal("false domain hit")
	}
}

func TestLooksLikePhone(t *testing.T) {
	p := mustPack(t)
	if !p.LooksLikePhone("llama al 55 12345678") {
		t.Fatal("phone number not detected")
	}
	// dimension codes carry digit runs but no long contact run
	if p.LooksLikePhone("bloques de 40x40x20 para losa") {
		t.Fatal("dimension code misdetected as phone")
	}
	if p.LooksLikePhone("panel de 15 cm") {
		t.Fatal("single short digit run misdetected as phone")
	}
}
