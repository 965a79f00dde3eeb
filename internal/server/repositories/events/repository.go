package events

import (
	"context"

	"github.com/dmitrijs2005/artfolio/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.Event) (*models.Event, error)
	Update(ctx context.Context, id string, u *models.EventUpdate) (*models.Event, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	List(ctx context.Context) ([]*models.Event, error)
	AddImages(ctx context.Context, eventID string, urls []string) ([]models.EventImage, error)
	DeleteImage(ctx context.Context, imageID string) error
}
