package rest

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/dmitrijs2005/artfolio/internal/server/ingest"
	"github.com/gin-gonic/gin"
)

// maxRequestBytes bounds the whole multipart body; the file itself is
// limited by the pipeline.
const maxRequestBytes = ingest.MaxUploadBytes + 1<<20

// handleUpload serves one upload route. Backend readiness is checked before
// the form is read, so a disabled route never consumes the body.
func (s *Server) handleUpload(u Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := u.Ready(); err != nil {
			s.fail(c, err)
			return
		}

		up, err := readUpload(c)
		if err != nil {
			s.fail(c, err)
			return
		}

		asset, err := u.Ingest(c.Request.Context(), up)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "url": asset.URL, "filename": asset.Filename})
	}
}

// readFormFile reads at most one byte past the size limit so the pipeline
// can still reject oversized files.
var readFormFile = func(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, ingest.MaxUploadBytes+1))
}

// readUpload returns the "file" form field, or nil when the request has none.
func readUpload(c *gin.Context) (*ingest.Upload, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ingest.BadRequest("image exceeds size limit")
		}
		return nil, nil
	}

	data, err := readFormFile(fh)
	if err != nil {
		return nil, ingest.ServerError(err.Error())
	}

	return &ingest.Upload{
		Data:      data,
		MediaType: fh.Header.Get("Content-Type"),
		Filename:  fh.Filename,
	}, nil
}
