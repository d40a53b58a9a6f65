package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Lang
		ok   bool
	}{
		{"en", LangEN, true},
		{"AR", LangAR, true},
		{"  ar ", LangAR, true},
		{"fr", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Parse(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDir(t *testing.T) {
	if LangAR.Dir() != "rtl" {
		t.Fatalf("arabic direction = %q", LangAR.Dir())
	}
	if LangEN.Dir() != "ltr" {
		t.Fatalf("english direction = %q", LangEN.Dir())
	}
}

func TestPick(t *testing.T) {
	if got := Pick(LangAR, "منتدى ريدان", "Raydan Forum"); got != "منتدى ريدان" {
		t.Fatalf("arabic preferred: got %q", got)
	}
	if got := Pick(LangEN, "منتدى ريدان", "Raydan Forum"); got != "Raydan Forum" {
		t.Fatalf("english preferred: got %q", got)
	}
	if got := Pick(LangEN, "منتدى ريدان", ""); got != "منتدى ريدان" {
		t.Fatalf("missing english must fall back: got %q", got)
	}
	if got := Pick(LangAR, "  ", "Raydan Forum"); got != "Raydan Forum" {
		t.Fatalf("blank arabic must fall back: got %q", got)
	}
	if got := Pick(LangAR, "", ""); got != "" {
		t.Fatalf("both empty: got %q", got)
	}
}

func TestPickPtr(t *testing.T) {
	ar := "نص"
	if got := PickPtr(LangAR, &ar, nil); got != "نص" {
		t.Fatalf("got %q", got)
	}
	if got := PickPtr(LangAR, nil, nil); got != "" {
		t.Fatalf("nil pair: got %q", got)
	}
}

func TestFromRequestQueryWins(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/public/hero?lang=ar", nil)
	r.Header.Set("Accept-Language", "en-US")
	if got := FromRequest(r); got != LangAR {
		t.Fatalf("got %q", got)
	}
}

func TestFromRequestCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/public/hero", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "ar"})
	if got := FromRequest(r); got != LangAR {
		t.Fatalf("got %q", got)
	}
}

func TestFromRequestAcceptLanguage(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/public/hero", nil)
	r.Header.Set("Accept-Language", "ar-YE,ar;q=0.9,en;q=0.5")
	if got := FromRequest(r); got != LangAR {
		t.Fatalf("got %q", got)
	}
}

func TestFromRequestDefault(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/public/hero", nil)
	if got := FromRequest(r); got != LangEN {
		t.Fatalf("got %q", got)
	}
}

func TestTranslationFallsBackToKey(t *testing.T) {
	if got := T(LangEN, "no.such.key"); got != "no.such.key" {
		t.Fatalf("got %q", got)
	}
	if got := T(LangAR, "membership.success"); got == "membership.success" {
		t.Fatalf("known key must resolve")
	}
}
