package i18n

// Static UI strings. Content text lives in the database; this set only
// covers fixed chrome such as navigation labels and generic messages.
var dictionary = map[Lang]map[string]string{
	LangEN: {
		"site.title":         "Raydan Forum",
		"site.subtitle":      "For Strategic Relations",
		"nav.home":           "Home",
		"nav.briefings":      "Briefings",
		"nav.activities":     "Activities",
		"nav.membership":     "Membership",
		"nav.about":          "About",
		"membership.success": "Your application has been received",
		"error.generic":      "An error occurred, please try again",
		"error.notfound":     "The requested item was not found",
		"error.unauthorized": "Authentication failed",
		"error.forbidden":    "This page is available to super admins only",
	},
	LangAR: {
		"site.title":         "منتدى ريدان",
		"site.subtitle":      "للعلاقات الاستراتيجية",
		"nav.home":           "الرئيسية",
		"nav.briefings":      "الإحاطات",
		"nav.activities":     "الفعاليات",
		"nav.membership":     "العضوية",
		"nav.about":          "عن المنتدى",
		"membership.success": "تم استلام طلبك بنجاح",
		"error.generic":      "حدث خطأ، يرجى المحاولة مرة أخرى",
		"error.notfound":     "العنصر المطلوب غير موجود",
		"error.unauthorized": "فشل تسجيل الدخول",
		"error.forbidden":    "هذه الصفحة متاحة فقط للمسؤولين الرئيسيين",
	},
}

// T returns the UI string for key in the given language, or the raw key
// when unmapped.
func T(lang Lang, key string) string {
	table, ok := dictionary[lang]
	if !ok {
		table = dictionary[LangEN]
	}
	if value, ok := table[key]; ok {
		return value
	}
	return key
}
