package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported site language.
type Lang string

const (
	LangEN Lang = "en"
	LangAR Lang = "ar"
)

const (
	QueryParam = "lang"
	CookieName = "raydan-forum-language"
)

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Arabic,
})

func Parse(value string) (Lang, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "en":
		return LangEN, true
	case "ar":
		return LangAR, true
	}
	return "", false
}

// Dir returns the document text direction for the language.
func (l Lang) Dir() string {
	if l == LangAR {
		return "rtl"
	}
	return "ltr"
}

// Pick resolves a localized field pair. The preferred language wins; an
// empty value falls back to the other language rather than disappearing.
func Pick(lang Lang, ar, en string) string {
	ar = strings.TrimSpace(ar)
	en = strings.TrimSpace(en)
	if lang == LangAR {
		if ar != "" {
			return ar
		}
		return en
	}
	if en != "" {
		return en
	}
	return ar
}

// PickPtr is Pick over nullable columns.
func PickPtr(lang Lang, ar, en *string) string {
	return Pick(lang, deref(ar), deref(en))
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// FromRequest resolves the request language: explicit query parameter,
// then the persisted cookie, then Accept-Language, defaulting to English.
func FromRequest(r *http.Request) Lang {
	if lang, ok := Parse(r.URL.Query().Get(QueryParam)); ok {
		return lang
	}
	if cookie, err := r.Cookie(CookieName); err == nil {
		if lang, ok := Parse(cookie.Value); ok {
			return lang
		}
	}
	if header := r.Header.Get("Accept-Language"); header != "" {
		if tags, _, err := language.ParseAcceptLanguage(header); err == nil {
			_, index, _ := matcher.Match(tags...)
			if index == 1 {
				return LangAR
			}
			return LangEN
		}
	}
	return LangEN
}
