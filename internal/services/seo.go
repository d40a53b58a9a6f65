package services

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"raydan-backend-go/internal/i18n"
	"raydan-backend-go/internal/models"
)

type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

type BusinessHours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

// OrganizationSchema builds the schema.org Organization block rendered
// into the page head, localized to the active language.
func OrganizationSchema(info models.BusinessInfo, lang i18n.Lang, baseURL string) map[string]interface{} {
	schema := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Organization",
		"name":        i18n.Pick(lang, info.BusinessNameAR, info.BusinessName),
		"description": i18n.Pick(lang, info.DescriptionAR, info.Description),
		"email":       info.Email,
		"telephone":   info.Phone,
		"url":         baseURL,
	}
	if info.FoundedYear > 0 {
		schema["foundingDate"] = strconv.Itoa(info.FoundedYear)
	}

	if strings.TrimSpace(info.Address) != "" && strings.TrimSpace(info.City) != "" {
		schema["address"] = map[string]interface{}{
			"@type":           "PostalAddress",
			"streetAddress":   i18n.Pick(lang, info.AddressAR, info.Address),
			"addressLocality": i18n.Pick(lang, info.CityAR, info.City),
			"addressRegion":   i18n.Pick(lang, info.StateAR, info.State),
			"postalCode":      info.PostalCode,
			"addressCountry":  i18n.Pick(lang, info.CountryAR, info.Country),
		}
	}

	if info.Latitude != nil && info.Longitude != nil {
		schema["geo"] = map[string]interface{}{
			"@type":     "GeoCoordinates",
			"latitude":  *info.Latitude,
			"longitude": *info.Longitude,
		}
	}

	if hours := openingHours(info.BusinessHours); len(hours) > 0 {
		schema["openingHours"] = hours
	}

	if sameAs := socialLinks(info.SocialMedia); len(sameAs) > 0 {
		schema["sameAs"] = sameAs
	}
	return schema
}

func openingHours(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var hours BusinessHours
	if err := json.Unmarshal(raw, &hours); err != nil {
		return nil
	}
	days := []struct {
		abbrev string
		hours  DayHours
	}{
		{"Mo", hours.Monday},
		{"Tu", hours.Tuesday},
		{"We", hours.Wednesday},
		{"Th", hours.Thursday},
		{"Fr", hours.Friday},
		{"Sa", hours.Saturday},
		{"Su", hours.Sunday},
	}
	out := make([]string, 0, len(days))
	for _, day := range days {
		if day.hours.Closed || day.hours.Open == "" || day.hours.Close == "" {
			continue
		}
		out = append(out, day.abbrev+" "+day.hours.Open+"-"+day.hours.Close)
	}
	return out
}

func socialLinks(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	links := map[string]string{}
	if err := json.Unmarshal(raw, &links); err != nil {
		return nil
	}
	// Stable order keeps the generated markup deterministic.
	keys := make([]string, 0, len(links))
	for key := range links {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if value := strings.TrimSpace(links[key]); value != "" {
			out = append(out, value)
		}
	}
	return out
}

type BreadcrumbItem struct {
	Name string
	URL  string
}

func BreadcrumbSchema(items []BreadcrumbItem) map[string]interface{} {
	elements := make([]map[string]interface{}, 0, len(items))
	for i, item := range items {
		elements = append(elements, map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
			"item":     item.URL,
		})
	}
	return map[string]interface{}{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	}
}
