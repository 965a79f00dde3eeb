package ingest

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/avif"
	"github.com/gen2brain/heic"
	"github.com/gen2brain/webp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// decodeHEIC is a seam for tests.
var decodeHEIC = heic.Decode

type encodeFunc func(w io.Writer, img image.Image, quality int) error

func imagingEncoder(f imaging.Format) encodeFunc {
	return func(w io.Writer, img image.Image, quality int) error {
		return imaging.Encode(w, img, f, imaging.JPEGQuality(quality))
	}
}

// encoders maps a decoded format to the encoder used after a resize, so a
// resized image keeps its format.
var encoders = map[string]encodeFunc{
	"jpeg": imagingEncoder(imaging.JPEG),
	"png":  imagingEncoder(imaging.PNG),
	"gif":  imagingEncoder(imaging.GIF),
	"bmp":  imagingEncoder(imaging.BMP),
	"tiff": imagingEncoder(imaging.TIFF),
	"webp": func(w io.Writer, img image.Image, quality int) error {
		return webp.Encode(w, img, webp.Options{Quality: quality, Method: 4})
	},
	"avif": func(w io.Writer, img image.Image, quality int) error {
		return avif.Encode(w, img, avif.Options{Quality: quality, QualityAlpha: quality, Speed: 8})
	},
}

// Normalize converts HEIC input to JPEG and downsizes images wider than
// the policy allows. Other images are returned as is. Bytes that no
// registered codec can read are an error.
func Normalize(up *Upload, p Policy) (*NormalizedImage, error) {
	if IsHEIC(up.MediaType, up.Filename) {
		data, err := transcodeHEIC(up.Data, p)
		if err != nil {
			return nil, err
		}
		return &NormalizedImage{Data: data, Extension: "jpg", ContentType: ContentTypeFor("jpg")}, nil
	}

	ext := ExtensionFor(up.Filename)
	data, err := downscale(up.Data, p)
	if err != nil {
		return nil, err
	}
	return &NormalizedImage{Data: data, Extension: ext, ContentType: ContentTypeFor(ext)}, nil
}

func transcodeHEIC(data []byte, p Policy) ([]byte, error) {
	img, err := decodeHEIC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("heic decode: %w", err)
	}
	img = fit(img, p.MaxDimension)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.Quality)); err != nil {
		return nil, fmt.Errorf("jpeg encode: %w", err)
	}
	return buf.Bytes(), nil
}

func downscale(data []byte, p Policy) ([]byte, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("read image metadata: %w", err)
	}
	if p.MaxDimension <= 0 || cfg.Width <= p.MaxDimension {
		return data, nil
	}

	enc, ok := encoders[format]
	if !ok {
		return nil, fmt.Errorf("%s: resize not supported", format)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%s decode: %w", format, err)
	}

	var buf bytes.Buffer
	if err := enc(&buf, fit(img, p.MaxDimension), p.Quality); err != nil {
		return nil, fmt.Errorf("%s encode: %w", format, err)
	}
	return buf.Bytes(), nil
}

// fit scales img to fit inside limit x limit keeping aspect ratio. It never enlarges.
func fit(img image.Image, limit int) image.Image {
	if limit <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= limit && b.Dy() <= limit {
		return img
	}
	return imaging.Fit(img, limit, limit, imaging.Lanczos)
}
