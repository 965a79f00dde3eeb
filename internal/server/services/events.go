package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/artfolio/internal/common"
	"github.com/dmitrijs2005/artfolio/internal/dbx"
	"github.com/dmitrijs2005/artfolio/internal/server/content"
	"github.com/dmitrijs2005/artfolio/internal/server/models"
	"github.com/dmitrijs2005/artfolio/internal/server/repositories/repomanager"
)

// ErrEventDates is returned when an event would end before it starts.
var ErrEventDates error = &common.ValidationError{Message: "end date must not be before start date"}

type EventService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEventService(db *sql.DB, m repomanager.RepositoryManager) *EventService {
	return &EventService{db: db, repomanager: m}
}

func (s *EventService) all(ctx context.Context) ([]*models.Event, error) {
	list, err := s.repomanager.Events(s.db).List(ctx)
	if err != nil {
		return nil, wrap("list events", err)
	}
	return list, nil
}

// List returns every event, latest start first.
func (s *EventService) List(ctx context.Context) ([]*models.Event, error) {
	list, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	return content.SortEventsByStartDesc(list), nil
}

func (s *EventService) Upcoming(ctx context.Context) ([]*models.Event, error) {
	list, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	return content.UpcomingEvents(list), nil
}

func (s *EventService) Past(ctx context.Context) ([]*models.Event, error) {
	list, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	return content.PastEvents(list), nil
}

func (s *EventService) Featured(ctx context.Context, limit int) ([]*models.Event, error) {
	list, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	return content.FeaturedEvents(list, limit), nil
}

func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	e, err := s.repomanager.Events(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, wrap("get event", err)
	}
	return e, nil
}

// Create stores the event and its additional images in one transaction.
func (s *EventService) Create(ctx context.Context, e *models.Event, images []string) (*models.Event, error) {
	if e.EndDate.Before(e.StartDate) {
		return nil, ErrEventDates
	}

	var created *models.Event
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Events(tx)

		var err error
		if created, err = repo.Create(ctx, e); err != nil {
			return err
		}
		added, err := repo.AddImages(ctx, created.ID, images)
		if err != nil {
			return err
		}
		created.Images = append(created.Images, added...)
		return nil
	})
	if err != nil {
		return nil, wrap("create event", err)
	}
	return created, nil
}

// Update applies u and appends newImages. The dates are validated after
// merging u into the stored event.
func (s *EventService) Update(ctx context.Context, id string, u *models.EventUpdate, newImages []string) (*models.Event, error) {
	var updated *models.Event
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Events(tx)

		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		start, end := current.StartDate, current.EndDate
		if u.StartDate != nil {
			start = *u.StartDate
		}
		if u.EndDate != nil {
			end = *u.EndDate
		}
		if end.Before(start) {
			return ErrEventDates
		}

		if _, err := repo.Update(ctx, id, u); err != nil {
			return err
		}
		if _, err := repo.AddImages(ctx, id, newImages); err != nil {
			return err
		}
		updated, err = repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, wrap("update event", err)
	}
	return updated, nil
}

// Delete removes the event and, by cascade, its image rows.
func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.repomanager.Events(s.db).Delete(ctx, id); err != nil {
		return wrap("delete event", err)
	}
	return nil
}

func (s *EventService) DeleteImage(ctx context.Context, imageID string) error {
	if err := s.repomanager.Events(s.db).DeleteImage(ctx, imageID); err != nil {
		return wrap("delete event image", err)
	}
	return nil
}
