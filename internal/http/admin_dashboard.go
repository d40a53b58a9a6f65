package httpapi

import (
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"raydan-backend-go/internal/i18n"
	"raydan-backend-go/internal/icons"
	"raydan-backend-go/internal/services"
)

type DashboardCounts struct {
	Briefings           int `json:"briefings"`
	Activities          int `json:"activities"`
	Articles            int `json:"articles"`
	TeamMembers         int `json:"teamMembers"`
	PendingApplications int `json:"pendingApplications"`
	PendingComments     int `json:"pendingComments"`
	TotalViews          int `json:"totalViews"`
}

type DashboardResponse struct {
	Counts             DashboardCounts       `json:"counts"`
	RecentApplications []AdminApplicationDTO `json:"recentApplications"`
	GeneratedAt        time.Time             `json:"generatedAt"`
}

// Dashboard aggregates the back-office landing numbers. The counts are
// independent queries, so they run concurrently.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	counts := DashboardCounts{}
	recent := []AdminApplicationDTO{}

	g, ctx := errgroup.WithContext(r.Context())
	count := func(dst *int, query string, args ...interface{}) {
		g.Go(func() error {
			return s.DB.GetContext(ctx, dst, query, args...)
		})
	}
	count(&counts.Briefings, `SELECT COUNT(*) FROM briefings`)
	count(&counts.Activities, `SELECT COUNT(*) FROM activities`)
	count(&counts.Articles, `SELECT COUNT(*) FROM articles`)
	count(&counts.TeamMembers, `SELECT COUNT(*) FROM team_members WHERE is_active = TRUE`)
	count(&counts.PendingApplications, `SELECT COUNT(*) FROM membership_applications WHERE status = $1`, services.StatusPending)
	count(&counts.PendingComments, `SELECT COUNT(*) FROM comments WHERE is_approved = FALSE`)
	count(&counts.TotalViews, `SELECT COALESCE(SUM(views_count), 0) FROM briefings`)
	g.Go(func() error {
		return s.DB.SelectContext(ctx, &recent, `
SELECT `+adminApplicationColumns+`
FROM membership_applications
WHERE status = $1
ORDER BY created_at DESC
LIMIT 5
`, services.StatusPending)
	})
	if err := g.Wait(); err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}

	WriteJSON(w, http.StatusOK, DashboardResponse{
		Counts:             counts,
		RecentApplications: recent,
		GeneratedAt:        time.Now().UTC(),
	})
}

func (s *Server) IconNames(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": icons.Names()})
}
