package rest

import (
	"context"
	"time"

	"github.com/dmitrijs2005/artfolio/internal/server/ingest"
	"github.com/dmitrijs2005/artfolio/internal/server/models"
)

type ArtworkService interface {
	List(ctx context.Context) ([]*models.Artwork, error)
	Featured(ctx context.Context) ([]*models.Artwork, error)
	ByCategory(ctx context.Context, category string) ([]*models.Artwork, error)
	Get(ctx context.Context, id string) (*models.Artwork, error)
	Related(ctx context.Context, id string, limit int) ([]*models.Artwork, error)
	Create(ctx context.Context, a *models.Artwork) (*models.Artwork, error)
	Update(ctx context.Context, id string, u *models.ArtworkUpdate) (*models.Artwork, error)
	Delete(ctx context.Context, id string) error
}

type EventService interface {
	List(ctx context.Context) ([]*models.Event, error)
	Upcoming(ctx context.Context) ([]*models.Event, error)
	Past(ctx context.Context) ([]*models.Event, error)
	Featured(ctx context.Context, limit int) ([]*models.Event, error)
	Get(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, e *models.Event, images []string) (*models.Event, error)
	Update(ctx context.Context, id string, u *models.EventUpdate, newImages []string) (*models.Event, error)
	Delete(ctx context.Context, id string) error
	DeleteImage(ctx context.Context, imageID string) error
}

// UserService logs admins in and validates their tokens.
type UserService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(token string) (string, error)
}

// Uploader is one ingestion pipeline bound to a storage backend.
type Uploader interface {
	Ready() error
	Ingest(ctx context.Context, up *ingest.Upload) (*ingest.StoredAsset, error)
}

type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}
