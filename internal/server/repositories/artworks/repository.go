package artworks

import (
	"context"

	"github.com/dmitrijs2005/artfolio/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, a *models.Artwork) (*models.Artwork, error)
	Update(ctx context.Context, id string, u *models.ArtworkUpdate) (*models.Artwork, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Artwork, error)
	List(ctx context.Context) ([]*models.Artwork, error)
	ListByCategory(ctx context.Context, category string) ([]*models.Artwork, error)
}
