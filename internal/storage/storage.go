package storage

import (
	"context"
	"errors"
)

// Buckets, one per claims vertical. Names match the hosted project so
// existing objects stay reachable when switching drivers.
const (
	BucketEnergie        = "energie_rechnungen"
	BucketBetriebskosten = "betriebskosten"
	BucketCasino         = "casinoverluste"
)

var (
	ErrObjectNotFound = errors.New("storage object not found")
	ErrUploadFailed   = errors.New("storage upload failed")
)

// Store is the blob side of the external data service. Rows live in
// the relational store; Store only moves bytes.
type Store interface {
	// Upload writes data under bucket/path with the given content type.
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error
	// Download returns the object's bytes and its recorded content type.
	Download(ctx context.Context, bucket, path string) ([]byte, string, error)
	// PublicURL returns the direct (non-proxied) URL for an object.
	PublicURL(bucket, path string) string
	// Exists probes whether the path still resolves. Listing uses this
	// to filter out rows whose blob was deleted out-of-band.
	Exists(ctx context.Context, bucket, path string) bool
}
