// Package storage contains the blob backends uploaded images are written to:
// an S3-compatible bucket in production and a local directory in development.
package storage

import "context"

// Store writes a named object and returns its public URL.
//
// Ready is checked before any work is done for an upload. It returns
// common.ErrForbidden when the backend may not be used in the current
// environment and common.ErrStorageNotConfigured when it lacks credentials.
type Store interface {
	Ready() error
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)
}
