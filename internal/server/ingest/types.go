// Package ingest implements the image upload pipeline: validation, HEIC
// transcoding, downscaling of oversized images, unique naming and the
// hand-off to a storage backend.
package ingest

// MaxUploadBytes is the largest accepted payload (10 MiB).
const MaxUploadBytes = 10 * 1024 * 1024

// Upload is one received file. A nil *Upload means no file was provided.
type Upload struct {
	Data      []byte
	MediaType string
	Filename  string
}

// NormalizedImage is the payload ready for storage. ContentType always
// matches Extension, see ContentTypeFor.
type NormalizedImage struct {
	Data        []byte
	Extension   string
	ContentType string
}

// StoredAsset is the result of a successful upload.
type StoredAsset struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// Policy controls normalization. MaxDimension of 0 disables resizing.
type Policy struct {
	Quality      int
	MaxDimension int
}

// DefaultPolicy is used by both upload routes unless configured otherwise.
var DefaultPolicy = Policy{Quality: 85, MaxDimension: 2048}
