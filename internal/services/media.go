package services

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	BucketActivityImages = "activity-images"
	BucketBriefingImages = "briefing-images"
	BucketTeamPhotos     = "team-photos"
	BucketHeroImages     = "hero-images"
	BucketSiteAssets     = "site-assets"
)

var buckets = map[string]bool{
	BucketActivityImages: true,
	BucketBriefingImages: true,
	BucketTeamPhotos:     true,
	BucketHeroImages:     true,
	BucketSiteAssets:     true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"image/gif":       true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

func ValidBucket(name string) bool {
	return buckets[name]
}

func AllowedContentType(contentType string) bool {
	return allowedContentTypes[contentType]
}

func EnsureStoragePath(base string, bucket string) (string, error) {
	path := filepath.Join(base, bucket)
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", err
	}
	return path, nil
}

// SaveMediaAsset streams the upload to disk under a random key, then
// records the asset row. The row is only written once the file is fully
// on disk; a failed write removes the file so no orphan row remains.
func SaveMediaAsset(db *sqlx.DB, basePath, bucket, contentType, filename, ownerID string, body io.Reader) (string, string, error) {
	if !ValidBucket(bucket) {
		return "", "", ErrBadRequest("Unknown storage bucket")
	}
	if !AllowedContentType(contentType) {
		return "", "", ErrBadRequest("Unsupported file type")
	}
	assetID := uuid.NewString()
	storageKey := assetID
	bucketPath, err := EnsureStoragePath(basePath, bucket)
	if err != nil {
		return "", "", err
	}
	targetPath := filepath.Join(bucketPath, storageKey)

	file, err := os.Create(targetPath)
	if err != nil {
		return "", "", err
	}
	hasher := sha256.New()
	writer := io.MultiWriter(file, hasher)
	size, err := io.Copy(writer, body)
	_ = file.Close()
	if err != nil {
		_ = os.Remove(targetPath)
		return "", "", err
	}
	if size == 0 {
		_ = os.Remove(targetPath)
		return "", "", ErrBadRequest("Uploaded file is empty")
	}
	sha := hex.EncodeToString(hasher.Sum(nil))

	_, err = db.Exec(`
INSERT INTO media_assets (id, owner_admin_id, bucket, storage_key, filename, content_type, size_bytes, sha256, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`, assetID, nullableString(ownerID), bucket, storageKey, nullableString(filename), contentType, size, sha, time.Now().UTC())
	if err != nil {
		_ = os.Remove(targetPath)
		return "", "", err
	}
	return assetID, BuildAssetURL(assetID), nil
}

func BuildAssetURL(assetID string) string {
	return "/api/media/assets/" + assetID + "/content"
}

func DeleteAsset(db *sqlx.DB, basePath string, assetID string) error {
	row := struct {
		Bucket     string `db:"bucket"`
		StorageKey string `db:"storage_key"`
	}{}
	if err := db.Get(&row, `SELECT bucket, storage_key FROM media_assets WHERE id = $1`, assetID); err != nil {
		return nil
	}
	_, _ = db.Exec(`DELETE FROM media_assets WHERE id = $1`, assetID)
	_ = os.Remove(filepath.Join(basePath, row.Bucket, row.StorageKey))
	return nil
}

func nullableString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
