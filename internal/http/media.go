package httpapi

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"raydan-backend-go/internal/i18n"
	"raydan-backend-go/internal/services"
)

// 15 MiB covers the photography and policy PDFs the editors upload.
const maxUploadBytes = 15 << 20

type UploadResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func (s *Server) UploadMedia(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	bucket := chi.URLParam(r, "bucket")
	if !services.ValidBucket(bucket) {
		WriteError(w, http.StatusBadRequest, i18n.T(lang, "error.generic"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteError(w, http.StatusBadRequest, i18n.T(lang, "error.generic"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, i18n.T(lang, "error.generic"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	assetID, url, err := services.SaveMediaAsset(
		s.DB, s.Config.MediaStoragePath, bucket, contentType,
		header.Filename, CurrentAdminID(r), file)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, i18n.T(lang, "error.generic"))
		return
	}
	WriteJSON(w, http.StatusCreated, UploadResponse{ID: assetID, URL: url})
}

func (s *Server) MediaContent(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	row := struct {
		Bucket      string  `db:"bucket"`
		StorageKey  string  `db:"storage_key"`
		ContentType string  `db:"content_type"`
		Filename    *string `db:"filename"`
	}{}
	err := s.DB.Get(&row, `
SELECT bucket, storage_key, content_type, filename
FROM media_assets
WHERE id = $1
`, chi.URLParam(r, "assetId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, i18n.T(lang, "error.notfound"))
		return
	}

	w.Header().Set("Content-Type", row.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if row.Filename != nil {
		w.Header().Set("Content-Disposition", `inline; filename="`+*row.Filename+`"`)
	}
	http.ServeFile(w, r, filepath.Join(s.Config.MediaStoragePath, row.Bucket, row.StorageKey))
}
