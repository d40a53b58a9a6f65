package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"raydan-backend-go/internal/i18n"
	"raydan-backend-go/internal/services"
)

var metricsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (s *Server) MetricsHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 120)
	if limit < 1 {
		limit = 1
	}
	if limit > 500 {
		limit = 500
	}
	items, err := services.LatestMetrics(s.DB, limit)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// MetricsSocket streams live samples to the dashboard. Browsers cannot
// set headers on websocket requests, so the access token rides in the
// query string.
func (s *Server) MetricsSocket(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	token, claims, err := s.Tokens.ParseToken(tokenStr)
	if err != nil || !token.Valid || claims["typ"] != "access" {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	role, _ := claims["role"].(string)
	if role != services.RoleSuperAdmin && role != services.RoleEditor {
		WriteError(w, http.StatusForbidden, "Not allowed")
		return
	}

	conn, err := metricsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("metrics socket upgrade: %v", err)
		return
	}
	s.MetricsHub.Add(conn)
	defer func() {
		s.MetricsHub.Remove(conn)
		_ = conn.Close()
	}()

	// Reads are discarded; the loop exits when the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
