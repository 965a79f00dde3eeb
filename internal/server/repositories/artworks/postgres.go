// Package artworks provides PostgreSQL-backed persistence for artworks.
// Listing order is left to the content package; queries only return rows.
package artworks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/artfolio/internal/common"
	"github.com/dmitrijs2005/artfolio/internal/dbx"
	"github.com/dmitrijs2005/artfolio/internal/server/models"
)

const columns = `id, title, description, image_url, category, subcategory, featured, display_priority, created_at, updated_at`

// PostgresRepository implements artwork storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArtwork(s scanner) (*models.Artwork, error) {
	var (
		a        models.Artwork
		priority sql.NullInt32
	)
	if err := s.Scan(&a.ID, &a.Title, &a.Description, &a.ImageURL, &a.Category, &a.Subcategory,
		&a.Featured, &priority, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	if priority.Valid {
		p := int(priority.Int32)
		a.DisplayPriority = &p
	}
	return &a, nil
}

// Create inserts the artwork and returns the stored row.
func (r *PostgresRepository) Create(ctx context.Context, a *models.Artwork) (*models.Artwork, error) {
	query := `
		INSERT INTO artworks (title, description, image_url, category, subcategory, featured, display_priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + columns

	created, err := scanArtwork(r.db.QueryRowContext(ctx, query,
		a.Title, a.Description, a.ImageURL, a.Category, a.Subcategory, a.Featured, a.DisplayPriority))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

// Update applies the non-nil fields of u. A clear of DisplayPriority is not
// expressible; nil leaves the column as is.
func (r *PostgresRepository) Update(ctx context.Context, id string, u *models.ArtworkUpdate) (*models.Artwork, error) {
	query := `
		UPDATE artworks SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			image_url = COALESCE($4, image_url),
			category = COALESCE($5, category),
			subcategory = COALESCE($6, subcategory),
			featured = COALESCE($7, featured),
			display_priority = COALESCE($8, display_priority),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + columns

	updated, err := scanArtwork(r.db.QueryRowContext(ctx, query, id,
		u.Title, u.Description, u.ImageURL, u.Category, u.Subcategory, u.Featured, u.DisplayPriority))
	if err != nil {
		if dbx.IsNotFound(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM artworks WHERE id = $1`, id)
	if err != nil {
		if dbx.IsNotFound(err) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Artwork, error) {
	query := `SELECT ` + columns + ` FROM artworks WHERE id = $1`

	a, err := scanArtwork(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if dbx.IsNotFound(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Artwork, error) {
	return r.list(ctx, `SELECT `+columns+` FROM artworks`)
}

func (r *PostgresRepository) ListByCategory(ctx context.Context, category string) ([]*models.Artwork, error) {
	return r.list(ctx, `SELECT `+columns+` FROM artworks WHERE category = $1`, category)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Artwork, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select artworks: %w", err)
	}
	defer rows.Close()

	result := []*models.Artwork{}
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
