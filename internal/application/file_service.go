package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/teslo-shop/catalog-api/pkg/helpers"
)

// ErrUnsupportedFile rejects uploads that are not an accepted image type.
var ErrUnsupportedFile = errors.New("make sure the file is an image")

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// FileService is the file boundary: it accepts an image stream, stores the
// object, and returns a stable public URL. The rest of the system only
// ever stores and returns that string.
type FileService struct {
	GCS    *storage.Client
	Bucket string
}

func NewFileService(gcs *storage.Client, bucket string) *FileService {
	return &FileService{GCS: gcs, Bucket: bucket}
}

// UploadProductImage validates the extension, stores the object under
// products/<uuid><ext>, and returns its public URL.
func (s *FileService) UploadProductImage(ctx context.Context, r io.Reader, filename, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return "", ErrUnsupportedFile
	}
	if s.GCS == nil || s.Bucket == "" {
		return "", errors.New("object storage not configured")
	}
	objectPath := "products/" + uuid.NewString() + ext
	return helpers.UploadObject(ctx, s.GCS, s.Bucket, objectPath, contentType, r)
}

// ProductImageURL resolves a stored image name to its public URL.
func (s *FileService) ProductImageURL(imageName string) string {
	return helpers.PublicURL(s.Bucket, "products/"+imageName)
}
