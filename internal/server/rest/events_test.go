package rest

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/artfolio/internal/server/models"
	"github.com/dmitrijs2005/artfolio/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() map[string]any {
	return map[string]any{
		"title":        "Spring show",
		"description":  "Group exhibition at the town gallery",
		"mainImageUrl": "/uploads/artwork-1-abc.jpg",
		"startDate":    "2026-05-01T10:00:00Z",
		"endDate":      "2026-05-10T18:00:00Z",
		"location":     "Lyon",
	}
}

func TestListEvents_Views(t *testing.T) {
	tests := []struct {
		query  string
		called string
	}{
		{"", "list"},
		{"?view=upcoming", "upcoming"},
		{"?view=past", "past"},
		{"?view=featured&limit=3", "featured"},
	}
	for _, tt := range tests {
		t.Run(tt.called, func(t *testing.T) {
			ts := newTestServer(t)
			ts.events.items = []*models.Event{{ID: "e1"}}

			rec := ts.do(t, http.MethodGet, "/api/events"+tt.query, nil, false)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.called, ts.events.called)
			assert.Len(t, decode(t, rec)["events"], 1)
		})
	}
}

func TestListEvents_FeaturedLimit(t *testing.T) {
	ts := newTestServer(t)

	ts.do(t, http.MethodGet, "/api/events?view=featured&limit=3", nil, false)
	assert.Equal(t, 3, ts.events.limit)

	ts.do(t, http.MethodGet, "/api/events?view=featured", nil, false)
	assert.Equal(t, 0, ts.events.limit)
}

func TestListEvents_UnknownView(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/events?view=soon", nil, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, ts.events.called)
}

func TestGetEvent(t *testing.T) {
	ts := newTestServer(t)
	ts.events.items = []*models.Event{{ID: "e1", Images: []models.EventImage{{ID: "i1", ImageURL: "/uploads/a.jpg"}}}}

	rec := ts.do(t, http.MethodGet, "/api/events/e1", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	ev := decode(t, rec)["event"].(map[string]any)
	assert.Len(t, ev["images"], 1)

	rec = ts.do(t, http.MethodGet, "/api/events/nope", nil, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateEvent(t *testing.T) {
	ts := newTestServer(t)
	payload := validEvent()
	payload["additionalImages"] = []string{"https://cdn.example.com/a.jpg", "/uploads/b.jpg"}

	rec := ts.do(t, http.MethodPost, "/api/events", payload, true)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, ts.events.created)
	assert.Equal(t, "Lyon", *ts.events.created.Location)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "/uploads/b.jpg"}, ts.events.images)
}

func TestCreateEvent_EndBeforeStart(t *testing.T) {
	ts := newTestServer(t)
	payload := validEvent()
	payload["endDate"] = "2026-04-30T10:00:00Z"

	rec := ts.do(t, http.MethodPost, "/api/events", payload, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	d := decode(t, rec)["details"].([]any)[0].(map[string]any)
	assert.Equal(t, "endDate", d["field"])
	assert.Equal(t, "gtefield", d["rule"])
	assert.Nil(t, ts.events.created)
}

func TestCreateEvent_BadImage(t *testing.T) {
	ts := newTestServer(t)
	payload := validEvent()
	payload["additionalImages"] = []string{"not a url"}

	rec := ts.do(t, http.MethodPost, "/api/events", payload, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateEvent(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPut, "/api/events/e1",
		map[string]any{"featured": true, "newImages": []string{"/uploads/c.jpg"}}, true)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "e1", ts.events.updateID)
	assert.True(t, *ts.events.update.Featured)
	assert.Equal(t, []string{"/uploads/c.jpg"}, ts.events.images)
}

func TestUpdateEvent_ServiceRejectsDates(t *testing.T) {
	ts := newTestServer(t)
	ts.events.err = fmt.Errorf("update event: %w", services.ErrEventDates)

	rec := ts.do(t, http.MethodPut, "/api/events/e1", map[string]any{"endDate": "2020-01-01T00:00:00Z"}, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "end date must not be before start date", decode(t, rec)["error"])
}

func TestDeleteEventAndImage(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodDelete, "/api/events/e1", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "e1", ts.events.deleted)

	rec = ts.do(t, http.MethodDelete, "/api/events/images/i9", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "i9", ts.events.deletedIm)
}
