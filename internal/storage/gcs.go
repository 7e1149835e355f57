package storage

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCSStore keeps uploads in a Cloud Storage bucket; objects are made public
// so the front end can load them directly.
type GCSStore struct {
	client *gcs.Client
	bucket string
}

func NewGCSStore(ctx context.Context, bucket string) (*GCSStore, error) {
	c, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &GCSStore{client: c, bucket: bucket}, nil
}

func (s *GCSStore) Close() error { return s.client.Close() }

func (s *GCSStore) Save(ctx context.Context, name string, contentType string, r io.Reader) (string, string, error) {
	obj := s.client.Bucket(s.bucket).Object(name)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", "", err
	}
	if err := w.Close(); err != nil {
		return "", "", err
	}

	if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", "", err
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, name)
	return name, url, nil
}

func (s *GCSStore) Open(ctx context.Context, path string) ([]byte, string, error) {
	r, err := s.client.Bucket(s.bucket).Object(path).NewReader(ctx)
	if err != nil {
		return nil, "", err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}
	return data, FormatFromPath(path), nil
}
