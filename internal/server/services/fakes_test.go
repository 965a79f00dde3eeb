package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/artfolio/internal/common"
	"github.com/dmitrijs2005/artfolio/internal/dbx"
	"github.com/dmitrijs2005/artfolio/internal/server/models"
	"github.com/dmitrijs2005/artfolio/internal/server/repositories/artworks"
	"github.com/dmitrijs2005/artfolio/internal/server/repositories/events"
	"github.com/dmitrijs2005/artfolio/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

type fakeArtworksRepo struct {
	items   []*models.Artwork
	listErr error
	created *models.Artwork
	updated *models.ArtworkUpdate
	deleted string
}

func (f *fakeArtworksRepo) Create(_ context.Context, a *models.Artwork) (*models.Artwork, error) {
	f.created = a
	out := *a
	out.ID = "new-id"
	return &out, nil
}

func (f *fakeArtworksRepo) Update(_ context.Context, id string, u *models.ArtworkUpdate) (*models.Artwork, error) {
	for _, a := range f.items {
		if a.ID == id {
			f.updated = u
			return a, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeArtworksRepo) Delete(_ context.Context, id string) error {
	for _, a := range f.items {
		if a.ID == id {
			f.deleted = id
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeArtworksRepo) GetByID(_ context.Context, id string) (*models.Artwork, error) {
	for _, a := range f.items {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeArtworksRepo) List(context.Context) ([]*models.Artwork, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeArtworksRepo) ListByCategory(_ context.Context, category string) ([]*models.Artwork, error) {
	var out []*models.Artwork
	for _, a := range f.items {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeEventsRepo struct {
	items       []*models.Event
	createErr   error
	addImgErr   error
	addedImages []string
	updates     int
}

func (f *fakeEventsRepo) Create(_ context.Context, e *models.Event) (*models.Event, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *e
	out.ID = "ev-new"
	out.Images = []models.EventImage{}
	stored := out
	f.items = append(f.items, &stored)
	return &out, nil
}

func (f *fakeEventsRepo) Update(_ context.Context, id string, u *models.EventUpdate) (*models.Event, error) {
	e, err := f.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	f.updates++
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.StartDate != nil {
		e.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		e.EndDate = *u.EndDate
	}
	return e, nil
}

func (f *fakeEventsRepo) Delete(_ context.Context, id string) error {
	for i, e := range f.items {
		if e.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeEventsRepo) GetByID(_ context.Context, id string) (*models.Event, error) {
	for _, e := range f.items {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeEventsRepo) List(context.Context) ([]*models.Event, error) {
	return f.items, nil
}

func (f *fakeEventsRepo) AddImages(_ context.Context, eventID string, urls []string) ([]models.EventImage, error) {
	if f.addImgErr != nil {
		return nil, f.addImgErr
	}
	f.addedImages = append(f.addedImages, urls...)
	e, err := f.GetByID(context.Background(), eventID)
	if err != nil {
		return nil, err
	}
	var out []models.EventImage
	for _, u := range urls {
		img := models.EventImage{ID: "img-" + u, EventID: eventID, ImageURL: u, Order: len(e.Images)}
		e.Images = append(e.Images, img)
		out = append(out, img)
	}
	return out, nil
}

func (f *fakeEventsRepo) DeleteImage(_ context.Context, imageID string) error {
	if imageID == "missing" {
		return common.ErrorNotFound
	}
	return nil
}

type fakeUsersRepo struct {
	byEmail   map[string]*models.User
	getErr    error
	createErr error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "u-" + u.Email
	if f.byEmail == nil {
		f.byEmail = map[string]*models.User{}
	}
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) UpdatePassword(_ context.Context, email, hash string) error {
	u, ok := f.byEmail[email]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash = hash
	return nil
}

type fakeRepoManager struct {
	a *fakeArtworksRepo
	e *fakeEventsRepo
	u *fakeUsersRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Artworks(dbx.DBTX) artworks.Repository        { return m.a }
func (m *fakeRepoManager) Events(dbx.DBTX) events.Repository            { return m.e }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.u }
