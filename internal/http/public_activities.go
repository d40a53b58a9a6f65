package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"raydan-backend-go/internal/i18n"
)

type ActivityDTO struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	ActivityType     string  `json:"activityType"`
	Location         string  `json:"location"`
	FeaturedImage    string  `json:"featuredImage"`
	StartDate        string  `json:"startDate"`
	EndDate          *string `json:"endDate"`
	IsUpcoming       bool    `json:"isUpcoming"`
	RegistrationLink *string `json:"registrationLink"`
}

type activityRow struct {
	ID               string     `db:"id"`
	TitleAR          string     `db:"title_ar"`
	TitleEN          string     `db:"title_en"`
	DescriptionAR    string     `db:"description_ar"`
	DescriptionEN    string     `db:"description_en"`
	ActivityTypeAR   string     `db:"activity_type_ar"`
	ActivityTypeEN   string     `db:"activity_type_en"`
	LocationAR       string     `db:"location_ar"`
	LocationEN       string     `db:"location_en"`
	FeaturedImage    string     `db:"featured_image"`
	StartDate        time.Time  `db:"start_date"`
	EndDate          *time.Time `db:"end_date"`
	IsUpcoming       bool       `db:"is_upcoming"`
	RegistrationLink *string    `db:"registration_link"`
}

func (row activityRow) dto(lang i18n.Lang) ActivityDTO {
	return ActivityDTO{
		ID:               row.ID,
		Title:            i18n.Pick(lang, row.TitleAR, row.TitleEN),
		Description:      i18n.Pick(lang, row.DescriptionAR, row.DescriptionEN),
		ActivityType:     i18n.Pick(lang, row.ActivityTypeAR, row.ActivityTypeEN),
		Location:         i18n.Pick(lang, row.LocationAR, row.LocationEN),
		FeaturedImage:    row.FeaturedImage,
		StartDate:        formatTime(row.StartDate),
		EndDate:          formatTimePtr(row.EndDate),
		IsUpcoming:       row.IsUpcoming,
		RegistrationLink: row.RegistrationLink,
	}
}

const activityColumns = `
SELECT id, title_ar, title_en, description_ar, description_en,
       activity_type_ar, activity_type_en, location_ar, location_en,
       featured_image, start_date, end_date, is_upcoming, registration_link
FROM activities
`

func (s *Server) PublicActivities(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	query := activityColumns
	args := []interface{}{}
	if r.URL.Query().Get("upcoming") == "true" {
		query += "WHERE is_upcoming = TRUE\n"
	}
	query += "ORDER BY start_date DESC"
	if limit := parseInt(r.URL.Query().Get("limit"), 0); limit > 0 {
		args = append(args, limit)
		query += " LIMIT $1"
	}
	rows := []activityRow{}
	if err := s.DB.Select(&rows, query, args...); err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	items := make([]ActivityDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.dto(lang))
	}
	WriteJSON(w, http.StatusOK, map[string][]ActivityDTO{"items": items})
}

func (s *Server) PublicActivityDetail(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	activityID := chi.URLParam(r, "activityId")
	row := activityRow{}
	if err := s.DB.Get(&row, activityColumns+"WHERE id = $1", activityID); err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(lang, "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, row.dto(lang))
}
