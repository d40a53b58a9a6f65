package services

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

func Slugify(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	var b strings.Builder
	lastDash := false
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return uuid.NewString()
	}
	return slug
}

func ResolveSectionSlug(db *sqlx.DB, title string) (string, error) {
	return resolveSlug(db, `SELECT EXISTS(SELECT 1 FROM sections WHERE slug = $1)`, title)
}

func ResolveCategorySlug(db *sqlx.DB, title string) (string, error) {
	return resolveSlug(db, `SELECT EXISTS(SELECT 1 FROM categories WHERE slug = $1)`, title)
}

func ResolveArticleSlug(db *sqlx.DB, title string) (string, error) {
	return resolveSlug(db, `SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)`, title)
}

func resolveSlug(db *sqlx.DB, existsQuery, title string) (string, error) {
	base := Slugify(title)
	candidate := base
	counter := 2
	for {
		var exists bool
		err := db.Get(&exists, existsQuery, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(counter)
		counter++
	}
}

func CleanSearchTerm(term string) string {
	return strings.Join(strings.Fields(term), " ")
}

// EscapeLike quotes LIKE metacharacters so user input matches literally.
func EscapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}
