package ingest

import (
	"regexp"
	"strings"
)

var heicName = regexp.MustCompile(`(?i)\.hei[cf]$`)

// allowedExtensions are kept from the original filename; anything else is stored as jpg.
var allowedExtensions = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "webp": true, "gif": true, "avif": true,
}

func isHEICType(mediaType string) bool {
	mt := strings.ToLower(strings.TrimSpace(mediaType))
	return mt == "image/heic" || mt == "image/heif"
}

// IsImage reports whether an upload is accepted as an image: by media type
// or, for HEIC files that browsers often send without one, by name.
func IsImage(mediaType, filename string) bool {
	mt := strings.ToLower(strings.TrimSpace(mediaType))
	return strings.HasPrefix(mt, "image/") || isHEICType(mt) || heicName.MatchString(filename)
}

func IsHEIC(mediaType, filename string) bool {
	return isHEICType(mediaType) || heicName.MatchString(filename)
}

// ExtensionFor returns the lowercased text after the last dot of filename
// (the whole name when it has none) when that is one of the preserved
// formats, and "jpg" otherwise.
func ExtensionFor(filename string) string {
	ext := strings.ToLower(filename[strings.LastIndex(filename, ".")+1:])
	if allowedExtensions[ext] {
		return ext
	}
	return "jpg"
}

func ContentTypeFor(ext string) string {
	ext = strings.ToLower(ext)
	if ext == "jpg" || ext == "jpeg" {
		return "image/jpeg"
	}
	return "image/" + ext
}
