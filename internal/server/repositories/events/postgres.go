// Package events provides PostgreSQL-backed persistence for exhibitions and
// other events together with their additional gallery images.
package events

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/artfolio/internal/common"
	"github.com/dmitrijs2005/artfolio/internal/dbx"
	"github.com/dmitrijs2005/artfolio/internal/server/models"
)

const columns = `id, title, description, main_image_url, start_date, end_date, location, featured, created_at, updated_at`

// PostgresRepository implements event storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*models.Event, error) {
	var (
		e        models.Event
		location sql.NullString
	)
	if err := s.Scan(&e.ID, &e.Title, &e.Description, &e.MainImageURL, &e.StartDate, &e.EndDate,
		&location, &e.Featured, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	if location.Valid {
		e.Location = &location.String
	}
	e.Images = []models.EventImage{}
	return &e, nil
}

// Create inserts the event row only; images are added with AddImages.
func (r *PostgresRepository) Create(ctx context.Context, e *models.Event) (*models.Event, error) {
	query := `
		INSERT INTO events (title, description, main_image_url, start_date, end_date, location, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + columns

	created, err := scanEvent(r.db.QueryRowContext(ctx, query,
		e.Title, e.Description, e.MainImageURL, e.StartDate, e.EndDate, e.Location, e.Featured))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

// Update applies the non-nil fields of u and returns the event without images.
func (r *PostgresRepository) Update(ctx context.Context, id string, u *models.EventUpdate) (*models.Event, error) {
	query := `
		UPDATE events SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			main_image_url = COALESCE($4, main_image_url),
			start_date = COALESCE($5, start_date),
			end_date = COALESCE($6, end_date),
			location = COALESCE($7, location),
			featured = COALESCE($8, featured),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + columns

	updated, err := scanEvent(r.db.QueryRowContext(ctx, query, id,
		u.Title, u.Description, u.MainImageURL, u.StartDate, u.EndDate, u.Location, u.Featured))
	if err != nil {
		if dbx.IsNotFound(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return updated, nil
}

// Delete removes the event; its images go with it through ON DELETE CASCADE.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.execOne(ctx, `DELETE FROM events WHERE id = $1`, id)
}

func (r *PostgresRepository) DeleteImage(ctx context.Context, imageID string) error {
	return r.execOne(ctx, `DELETE FROM event_images WHERE id = $1`, imageID)
}

func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
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

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	query := `SELECT ` + columns + ` FROM events WHERE id = $1`

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if dbx.IsNotFound(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	images, err := r.selectImages(ctx,
		`SELECT id, event_id, image_url, sort_order, created_at FROM event_images
		 WHERE event_id = $1 ORDER BY sort_order`, id)
	if err != nil {
		return nil, err
	}
	e.Images = append(e.Images, images...)
	return e, nil
}

// List returns every event with its images. Images are fetched in a single
// query and grouped by event.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Event, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM events ORDER BY start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select events: %w", err)
	}
	defer rows.Close()

	result := []*models.Event{}
	byID := map[string]*models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
		byID[e.ID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	images, err := r.selectImages(ctx,
		`SELECT id, event_id, image_url, sort_order, created_at FROM event_images
		 ORDER BY event_id, sort_order`)
	if err != nil {
		return nil, err
	}
	for _, img := range images {
		if e, ok := byID[img.EventID]; ok {
			e.Images = append(e.Images, img)
		}
	}
	return result, nil
}

func (r *PostgresRepository) selectImages(ctx context.Context, query string, args ...any) ([]models.EventImage, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select event images: %w", err)
	}
	defer rows.Close()

	var result []models.EventImage
	for rows.Next() {
		var img models.EventImage
		if err := rows.Scan(&img.ID, &img.EventID, &img.ImageURL, &img.Order, &img.Created); err != nil {
			return nil, err
		}
		result = append(result, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// AddImages appends urls to the event gallery. Their order continues after
// the current highest order so earlier images keep their position.
func (r *PostgresRepository) AddImages(ctx context.Context, eventID string, urls []string) ([]models.EventImage, error) {
	if len(urls) == 0 {
		return nil, nil
	}

	var last int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(sort_order), -1) FROM event_images WHERE event_id = $1`, eventID).Scan(&last)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	query := `
		INSERT INTO event_images (event_id, image_url, sort_order)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	added := make([]models.EventImage, 0, len(urls))
	for i, url := range urls {
		img := models.EventImage{EventID: eventID, ImageURL: url, Order: last + 1 + i}
		if err := r.db.QueryRowContext(ctx, query, eventID, url, img.Order).Scan(&img.ID, &img.Created); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		added = append(added, img)
	}
	return added, nil
}
