package httpapi

import "testing"

func strPtr(value string) *string {
	return &value
}

func TestResolveSlideLink(t *testing.T) {
	link, external := resolveSlideLink(strPtr("briefing"), strPtr("abc"), nil)
	if link == nil || *link != "/briefings/abc" || external {
		t.Fatalf("briefing link = %v, external = %v", link, external)
	}

	link, external = resolveSlideLink(strPtr("activity"), strPtr("xyz"), nil)
	if link == nil || *link != "/activities/xyz" || external {
		t.Fatalf("activity link = %v, external = %v", link, external)
	}

	link, external = resolveSlideLink(strPtr("external"), nil, strPtr(" https://example.org "))
	if link == nil || *link != "https://example.org" || !external {
		t.Fatalf("external link = %v, external = %v", link, external)
	}

	if link, _ := resolveSlideLink(nil, strPtr("abc"), nil); link != nil {
		t.Fatalf("nil type must yield no link")
	}
	if link, _ := resolveSlideLink(strPtr("briefing"), nil, nil); link != nil {
		t.Fatalf("briefing without target must yield no link")
	}
}

func TestHeroSlideRequestValidLink(t *testing.T) {
	cases := []struct {
		name string
		req  HeroSlideRequest
		want bool
	}{
		{"no link", HeroSlideRequest{}, true},
		{"briefing with id", HeroSlideRequest{LinkType: strPtr("briefing"), LinkID: strPtr("abc")}, true},
		{"briefing without id", HeroSlideRequest{LinkType: strPtr("briefing")}, false},
		{"external with url", HeroSlideRequest{LinkType: strPtr("external"), ExternalLink: strPtr("https://example.org")}, true},
		{"external without url", HeroSlideRequest{LinkType: strPtr("external")}, false},
		{"unknown type", HeroSlideRequest{LinkType: strPtr("page")}, false},
	}
	for _, tc := range cases {
		if got := tc.req.validLink(); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestNullIfEmpty(t *testing.T) {
	if nullIfEmpty("  ") != nil {
		t.Fatalf("blank must be nil")
	}
	value := nullIfEmpty(" notes ")
	if value == nil || *value != "notes" {
		t.Fatalf("got %v", value)
	}
}

func TestParseInt(t *testing.T) {
	if parseInt("", 9) != 9 {
		t.Fatalf("empty must use fallback")
	}
	if parseInt("junk", 9) != 9 {
		t.Fatalf("junk must use fallback")
	}
	if parseInt("42", 9) != 42 {
		t.Fatalf("numbers must parse")
	}
}
