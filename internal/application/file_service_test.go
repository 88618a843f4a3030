package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadProductImageRejectsUnsupportedExtensions(t *testing.T) {
	svc := NewFileService(nil, "teslo-products")

	for _, name := range []string{"report.pdf", "shell.sh", "archive.tar.gz", "noext"} {
		_, err := svc.UploadProductImage(context.Background(), strings.NewReader("x"), name, "application/octet-stream")
		assert.ErrorIs(t, err, ErrUnsupportedFile, name)
	}
}

func TestUploadProductImageExtensionIsCaseInsensitive(t *testing.T) {
	// Validation passes for .JPG; the upload then fails on the nil storage
	// client, which proves the extension check ran first.
	svc := NewFileService(nil, "")
	_, err := svc.UploadProductImage(context.Background(), strings.NewReader("x"), "photo.JPG", "image/jpeg")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFile)
}

func TestProductImageURL(t *testing.T) {
	svc := NewFileService(nil, "teslo-products")
	url := svc.ProductImageURL("abc.jpg")
	assert.Contains(t, url, "teslo-products")
	assert.Contains(t, url, "products/abc.jpg")
}
