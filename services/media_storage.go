package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxAssetSize = 5 * 1024 * 1024 // 5 MB, same ceiling the gallery form enforced

var (
	ErrAssetTooLarge = errors.New("image exceeds the 5 MB limit")
	ErrNotAnImage    = errors.New("only image uploads are allowed")
	ErrUnknownBucket = errors.New("unknown upload bucket")
)

// Buckets mirror the original storage layout: one per asset-bearing entity.
var assetBuckets = map[string]bool{
	"gallery":     true,
	"menu-images": true,
	"plan-images": true,
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// MediaStorage saves uploaded images under Root/<bucket>/ and hands back the
// public URL the row write will carry in image_url.
type MediaStorage struct {
	Root    string // local directory, e.g. public/uploads
	BaseURL string // public prefix, e.g. http://localhost:8080
}

func NewMediaStorage(root, baseURL string) *MediaStorage {
	return &MediaStorage{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

func IsValidBucket(bucket string) bool {
	return assetBuckets[bucket]
}

// Save validates and stores one uploaded file. Stored names are uuid-based
// so concurrent uploads never collide.
func (ms *MediaStorage) Save(bucket string, file *multipart.FileHeader) (string, error) {
	if !IsValidBucket(bucket) {
		return "", ErrUnknownBucket
	}
	if file.Size > MaxAssetSize {
		return "", ErrAssetTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if !imageExtensions[ext] && !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}
	if ext == "" {
		ext = ".webp"
	}

	dir := filepath.Join(ms.Root, bucket)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(dir, name)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := out.ReadFrom(src); err != nil {
		os.Remove(dst)
		return "", err
	}

	return fmt.Sprintf("%s/uploads/%s/%s", ms.BaseURL, bucket, name), nil
}
