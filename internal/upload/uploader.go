package upload

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// Uploader stores an uploaded file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, filename, contentType string) (string, error)
}

// GCSUploader writes project images to a Cloud Storage bucket.
type GCSUploader struct {
	client *storage.Client
	bucket string
}

func NewGCSUploader(ctx context.Context, bucket string) (*GCSUploader, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	log.Printf("[Storage] ✅ Using bucket %s", bucket)
	return &GCSUploader{client: client, bucket: bucket}, nil
}

func (u *GCSUploader) Upload(ctx context.Context, r io.Reader, filename, contentType string) (string, error) {
	// Object key keeps the original extension but not the original name
	object := "project-images/" + uuid.New().String() + path.Ext(filename)

	w := u.client.Bucket(u.bucket).Object(object).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, object), nil
}

func (u *GCSUploader) Close() error {
	return u.client.Close()
}
