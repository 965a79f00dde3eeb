package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/artfolio/internal/common"
	"github.com/dmitrijs2005/artfolio/internal/logging"
	"github.com/dmitrijs2005/artfolio/internal/server/storage"
)

// Upload outcomes reported to the Observer.
const (
	OutcomeStored     = "stored"
	OutcomeBadRequest = "bad_request"
	OutcomeForbidden  = "forbidden"
	OutcomeError      = "error"
)

// Observer receives one record per Ingest call.
type Observer interface {
	ObserveUpload(backend, outcome string, size int, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveUpload(string, string, int, time.Duration) {}

// Pipeline validates, normalizes and stores uploads into one backend.
// It holds no per-request state and is safe for concurrent use.
type Pipeline struct {
	backend  string
	store    storage.Store
	policy   Policy
	observer Observer
	log      logging.Logger

	now        func() time.Time
	randSuffix func() (string, error)
}

type Option func(*Pipeline)

func WithPolicy(p Policy) Option         { return func(pl *Pipeline) { pl.policy = p } }
func WithObserver(o Observer) Option     { return func(pl *Pipeline) { pl.observer = o } }
func WithLogger(l logging.Logger) Option { return func(pl *Pipeline) { pl.log = l } }

// NewPipeline returns a pipeline writing to store. backend names the store
// in logs and metrics ("s3", "local").
func NewPipeline(backend string, store storage.Store, opts ...Option) *Pipeline {
	p := &Pipeline{
		backend:    backend,
		store:      store,
		policy:     DefaultPolicy,
		observer:   nopObserver{},
		log:        logging.Nop{},
		now:        time.Now,
		randSuffix: func() (string, error) { return common.MakeRandBase36String(11) },
	}
	for _, o := range opts {
		o(p)
	}
	p.log = p.log.With("module", "ingest", "backend", backend)
	return p
}

// Ready reports whether the backend accepts uploads right now, as the
// pipeline error Ingest would return.
func (p *Pipeline) Ready() error {
	if err := p.store.Ready(); err != nil {
		return readinessError(err)
	}
	return nil
}

// Ingest runs the full pipeline for one upload. Every failure is an *Error.
func (p *Pipeline) Ingest(ctx context.Context, up *Upload) (*StoredAsset, error) {
	start := time.Now()
	size := 0
	if up != nil {
		size = len(up.Data)
	}

	asset, err := p.ingest(ctx, up)

	outcome := outcomeOf(err)
	p.observer.ObserveUpload(p.backend, outcome, size, time.Since(start))
	if err != nil {
		if outcome == OutcomeError {
			p.log.Error(ctx, "upload failed", "error", err, "bytes", size)
		} else {
			p.log.Info(ctx, "upload rejected", "reason", err.Error(), "bytes", size)
		}
		return nil, err
	}
	p.log.Info(ctx, "image stored", "url", asset.URL, "bytes", size, "elapsed", time.Since(start))
	return asset, nil
}

func (p *Pipeline) ingest(ctx context.Context, up *Upload) (*StoredAsset, error) {
	if err := p.Ready(); err != nil {
		return nil, err
	}
	if up == nil {
		return nil, BadRequest(msgNoFile)
	}
	if !IsImage(up.MediaType, up.Filename) {
		return nil, BadRequest(msgNotImage)
	}
	if len(up.Data) > MaxUploadBytes {
		return nil, BadRequest(msgTooLarge)
	}

	img, err := Normalize(up, p.policy)
	if err != nil {
		return nil, asServerError(err)
	}

	name, err := p.fileName(img.Extension)
	if err != nil {
		return nil, asServerError(err)
	}

	url, err := p.store.Put(ctx, name, img.Data, img.ContentType)
	if err != nil {
		return nil, asServerError(err)
	}
	return &StoredAsset{Filename: name, URL: url}, nil
}

// fileName builds artwork-<unix ms>-<random>.<ext>.
func (p *Pipeline) fileName(ext string) (string, error) {
	suffix, err := p.randSuffix()
	if err != nil {
		return "", fmt.Errorf("random name: %w", err)
	}
	return fmt.Sprintf("artwork-%d-%s.%s", p.now().UnixMilli(), suffix, ext), nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeStored
	case errors.Is(err, common.ErrBadRequest):
		return OutcomeBadRequest
	case errors.Is(err, common.ErrForbidden):
		return OutcomeForbidden
	default:
		return OutcomeError
	}
}
