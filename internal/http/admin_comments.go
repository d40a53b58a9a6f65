package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"raydan-backend-go/internal/i18n"
)

type AdminCommentDTO struct {
	ID         string    `db:"id" json:"id"`
	ArticleID  string    `db:"article_id" json:"articleId"`
	UserID     string    `db:"user_id" json:"userId"`
	ParentID   *string   `db:"parent_id" json:"parentId"`
	Content    string    `db:"content" json:"content"`
	IsApproved bool      `db:"is_approved" json:"isApproved"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

func (s *Server) AdminListComments(w http.ResponseWriter, r *http.Request) {
	rows := []AdminCommentDTO{}
	query := `
SELECT id, article_id, user_id, parent_id, content, is_approved, created_at
FROM comments
ORDER BY created_at DESC
`
	args := []interface{}{}
	switch {
	case r.URL.Query().Get("article_id") != "":
		query = `
SELECT id, article_id, user_id, parent_id, content, is_approved, created_at
FROM comments
WHERE article_id = $1
ORDER BY created_at DESC
`
		args = append(args, r.URL.Query().Get("article_id"))
	case r.URL.Query().Get("pending") == "true":
		query = `
SELECT id, article_id, user_id, parent_id, content, is_approved, created_at
FROM comments
WHERE is_approved = FALSE
ORDER BY created_at DESC
`
	}
	if err := s.DB.Select(&rows, query, args...); err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": rows})
}

func (s *Server) AdminApproveComment(w http.ResponseWriter, r *http.Request) {
	row := AdminCommentDTO{}
	err := s.DB.Get(&row, `
UPDATE comments
SET is_approved = TRUE, updated_at = NOW()
WHERE id = $1
RETURNING id, article_id, user_id, parent_id, content, is_approved, created_at
`, chi.URLParam(r, "commentId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(requestLang(r), "error.notfound"))
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (s *Server) AdminDeleteComment(w http.ResponseWriter, r *http.Request) {
	result, err := s.DB.Exec(`DELETE FROM comments WHERE id = $1`, chi.URLParam(r, "commentId"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, i18n.T(requestLang(r), "error.generic"))
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		WriteError(w, http.StatusNotFound, i18n.T(requestLang(r), "error.notfound"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
