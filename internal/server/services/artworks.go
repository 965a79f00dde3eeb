package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/artfolio/internal/server/content"
	"github.com/dmitrijs2005/artfolio/internal/server/models"
	"github.com/dmitrijs2005/artfolio/internal/server/repositories/repomanager"
)

// ArtworkService serves artworks in display order and applies admin edits.
type ArtworkService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewArtworkService(db *sql.DB, m repomanager.RepositoryManager) *ArtworkService {
	return &ArtworkService{db: db, repomanager: m}
}

// List returns all artworks ranked by priority, then recency.
func (s *ArtworkService) List(ctx context.Context) ([]*models.Artwork, error) {
	all, err := s.repomanager.Artworks(s.db).List(ctx)
	if err != nil {
		return nil, wrap("list artworks", err)
	}
	return content.RankArtworks(all), nil
}

func (s *ArtworkService) Featured(ctx context.Context) ([]*models.Artwork, error) {
	all, err := s.repomanager.Artworks(s.db).List(ctx)
	if err != nil {
		return nil, wrap("list artworks", err)
	}
	return content.FeaturedArtworks(all), nil
}

func (s *ArtworkService) ByCategory(ctx context.Context, category string) ([]*models.Artwork, error) {
	list, err := s.repomanager.Artworks(s.db).ListByCategory(ctx, category)
	if err != nil {
		return nil, wrap("list artworks by category", err)
	}
	return content.RankArtworks(list), nil
}

func (s *ArtworkService) Get(ctx context.Context, id string) (*models.Artwork, error) {
	a, err := s.repomanager.Artworks(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, wrap("get artwork", err)
	}
	return a, nil
}

// Related returns up to limit other artworks of the same category.
func (s *ArtworkService) Related(ctx context.Context, id string, limit int) ([]*models.Artwork, error) {
	repo := s.repomanager.Artworks(s.db)

	a, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, wrap("get artwork", err)
	}
	same, err := repo.ListByCategory(ctx, a.Category)
	if err != nil {
		return nil, wrap("list artworks by category", err)
	}
	return content.RelatedArtworks(same, a.Category, a.ID, limit), nil
}

func (s *ArtworkService) Create(ctx context.Context, a *models.Artwork) (*models.Artwork, error) {
	created, err := s.repomanager.Artworks(s.db).Create(ctx, a)
	if err != nil {
		return nil, wrap("create artwork", err)
	}
	return created, nil
}

func (s *ArtworkService) Update(ctx context.Context, id string, u *models.ArtworkUpdate) (*models.Artwork, error) {
	updated, err := s.repomanager.Artworks(s.db).Update(ctx, id, u)
	if err != nil {
		return nil, wrap("update artwork", err)
	}
	return updated, nil
}

// Delete removes the row only. The stored image is left in place.
func (s *ArtworkService) Delete(ctx context.Context, id string) error {
	if err := s.repomanager.Artworks(s.db).Delete(ctx, id); err != nil {
		return wrap("delete artwork", err)
	}
	return nil
}
