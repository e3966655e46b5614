package interfaces

import "context"

// IPhotoStorage abstracts blob storage for ticket photos (e.g. S3).
// Upload stores the object and returns a publicly reachable URL.
type IPhotoStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
