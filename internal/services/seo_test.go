package services

import (
	"reflect"
	"testing"

	"raydan-backend-go/internal/i18n"
	"raydan-backend-go/internal/models"
)

func sampleBusinessInfo() models.BusinessInfo {
	lat := 15.3694
	lon := 44.1910
	return models.BusinessInfo{
		BusinessName:   "Raydan Forum",
		BusinessNameAR: "منتدى ريدان",
		Address:        "Hadda Street",
		AddressAR:      "شارع حدة",
		City:           "Sanaa",
		CityAR:         "صنعاء",
		Country:        "Yemen",
		CountryAR:      "اليمن",
		Phone:          "+967 1 234567",
		Email:          "info@raydanforum.org",
		Latitude:       &lat,
		Longitude:      &lon,
		FoundedYear:    2020,
		Description:    "Policy forum",
		DescriptionAR:  "منتدى سياسات",
		BusinessHours: []byte(`{
			"monday":  {"open": "09:00", "close": "17:00"},
			"tuesday": {"open": "09:00", "close": "17:00"},
			"friday":  {"closed": true}
		}`),
		SocialMedia: []byte(`{
			"twitter":  "https://x.com/raydan",
			"facebook": "https://facebook.com/raydan",
			"empty":    ""
		}`),
	}
}

func TestOrganizationSchemaEnglish(t *testing.T) {
	schema := OrganizationSchema(sampleBusinessInfo(), i18n.LangEN, "https://raydanforum.org")
	if schema["@type"] != "Organization" {
		t.Fatalf("@type = %v", schema["@type"])
	}
	if schema["name"] != "Raydan Forum" {
		t.Fatalf("name = %v", schema["name"])
	}
	if schema["foundingDate"] != "2020" {
		t.Fatalf("foundingDate = %v", schema["foundingDate"])
	}
	address, ok := schema["address"].(map[string]interface{})
	if !ok {
		t.Fatalf("address missing")
	}
	if address["addressLocality"] != "Sanaa" {
		t.Fatalf("locality = %v", address["addressLocality"])
	}
	geo, ok := schema["geo"].(map[string]interface{})
	if !ok {
		t.Fatalf("geo missing")
	}
	if geo["latitude"] != 15.3694 {
		t.Fatalf("latitude = %v", geo["latitude"])
	}
}

func TestOrganizationSchemaArabic(t *testing.T) {
	schema := OrganizationSchema(sampleBusinessInfo(), i18n.LangAR, "https://raydanforum.org")
	if schema["name"] != "منتدى ريدان" {
		t.Fatalf("name = %v", schema["name"])
	}
	address := schema["address"].(map[string]interface{})
	if address["addressCountry"] != "اليمن" {
		t.Fatalf("country = %v", address["addressCountry"])
	}
}

func TestOrganizationSchemaOpeningHours(t *testing.T) {
	schema := OrganizationSchema(sampleBusinessInfo(), i18n.LangEN, "https://raydanforum.org")
	hours, ok := schema["openingHours"].([]string)
	if !ok {
		t.Fatalf("openingHours missing")
	}
	want := []string{"Mo 09:00-17:00", "Tu 09:00-17:00"}
	if !reflect.DeepEqual(hours, want) {
		t.Fatalf("hours = %v, want %v", hours, want)
	}
}

func TestOrganizationSchemaSameAsSortedAndFiltered(t *testing.T) {
	schema := OrganizationSchema(sampleBusinessInfo(), i18n.LangEN, "https://raydanforum.org")
	sameAs, ok := schema["sameAs"].([]string)
	if !ok {
		t.Fatalf("sameAs missing")
	}
	want := []string{"https://facebook.com/raydan", "https://x.com/raydan"}
	if !reflect.DeepEqual(sameAs, want) {
		t.Fatalf("sameAs = %v, want %v", sameAs, want)
	}
}

func TestBreadcrumbSchema(t *testing.T) {
	schema := BreadcrumbSchema([]BreadcrumbItem{
		{Name: "Home", URL: "https://raydanforum.org"},
		{Name: "Briefings", URL: "https://raydanforum.org/briefings"},
	})
	elements, ok := schema["itemListElement"].([]map[string]interface{})
	if !ok {
		t.Fatalf("itemListElement missing")
	}
	if len(elements) != 2 {
		t.Fatalf("got %d elements", len(elements))
	}
	if elements[0]["position"] != 1 || elements[1]["position"] != 2 {
		t.Fatalf("positions = %v, %v", elements[0]["position"], elements[1]["position"])
	}
	if elements[1]["name"] != "Briefings" {
		t.Fatalf("name = %v", elements[1]["name"])
	}
}
