package services

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Strategic Relations", "strategic-relations"},
		{"  Policy -- Briefing  ", "policy-briefing"},
		{"Yemen 2030", "yemen-2030"},
		{"Already-Slugged", "already-slugged"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyNonLatinFallsBackToUUID(t *testing.T) {
	got := Slugify("!!!")
	if got == "" {
		t.Fatalf("symbol-only title must still yield a slug")
	}
	if len(got) != 36 {
		t.Fatalf("expected uuid fallback, got %q", got)
	}
}

func TestCleanSearchTerm(t *testing.T) {
	if got := CleanSearchTerm("  foreign   policy \n"); got != "foreign policy" {
		t.Fatalf("got %q", got)
	}
	if got := CleanSearchTerm("   "); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"100%", `100\%`},
		{"under_score", `under\_score`},
		{`back\slash`, `back\\slash`},
		{"plain", "plain"},
	}
	for _, tc := range cases {
		if got := EscapeLike(tc.in); got != tc.want {
			t.Fatalf("EscapeLike(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
