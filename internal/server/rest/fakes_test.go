package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/artfolio/internal/common"
	"github.com/dmitrijs2005/artfolio/internal/server/ingest"
	"github.com/dmitrijs2005/artfolio/internal/server/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testToken = "good-token"

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeArtworks struct {
	items    []*models.Artwork
	err      error
	called   string
	arg      string
	created  *models.Artwork
	updateID string
	update   *models.ArtworkUpdate
	deleted  string
}

func (f *fakeArtworks) List(context.Context) ([]*models.Artwork, error) {
	f.called = "list"
	return f.items, f.err
}

func (f *fakeArtworks) Featured(context.Context) ([]*models.Artwork, error) {
	f.called = "featured"
	return f.items, f.err
}

func (f *fakeArtworks) ByCategory(_ context.Context, category string) ([]*models.Artwork, error) {
	f.called, f.arg = "category", category
	return f.items, f.err
}

func (f *fakeArtworks) Get(_ context.Context, id string) (*models.Artwork, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.items {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeArtworks) Related(_ context.Context, id string, _ int) ([]*models.Artwork, error) {
	f.called, f.arg = "related", id
	return f.items, f.err
}

func (f *fakeArtworks) Create(_ context.Context, a *models.Artwork) (*models.Artwork, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = a
	out := *a
	out.ID = "a-new"
	return &out, nil
}

func (f *fakeArtworks) Update(_ context.Context, id string, u *models.ArtworkUpdate) (*models.Artwork, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updateID, f.update = id, u
	return &models.Artwork{ID: id}, nil
}

func (f *fakeArtworks) Delete(_ context.Context, id string) error {
	f.deleted = id
	return f.err
}

type fakeEvents struct {
	items     []*models.Event
	err       error
	called    string
	limit     int
	created   *models.Event
	images    []string
	updateID  string
	update    *models.EventUpdate
	deleted   string
	deletedIm string
}

func (f *fakeEvents) List(context.Context) ([]*models.Event, error) {
	f.called = "list"
	return f.items, f.err
}

func (f *fakeEvents) Upcoming(context.Context) ([]*models.Event, error) {
	f.called = "upcoming"
	return f.items, f.err
}

func (f *fakeEvents) Past(context.Context) ([]*models.Event, error) {
	f.called = "past"
	return f.items, f.err
}

func (f *fakeEvents) Featured(_ context.Context, limit int) ([]*models.Event, error) {
	f.called, f.limit = "featured", limit
	return f.items, f.err
}

func (f *fakeEvents) Get(_ context.Context, id string) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.items {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeEvents) Create(_ context.Context, e *models.Event, images []string) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created, f.images = e, images
	out := *e
	out.ID = "e-new"
	return &out, nil
}

func (f *fakeEvents) Update(_ context.Context, id string, u *models.EventUpdate, newImages []string) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updateID, f.update, f.images = id, u, newImages
	return &models.Event{ID: id}, nil
}

func (f *fakeEvents) Delete(_ context.Context, id string) error {
	f.deleted = id
	return f.err
}

func (f *fakeEvents) DeleteImage(_ context.Context, imageID string) error {
	f.deletedIm = imageID
	return f.err
}

type fakeUsers struct {
	loginErr error
}

func (f *fakeUsers) Login(_ context.Context, email, _ string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return "token-for-" + email, nil
}

func (f *fakeUsers) Authenticate(token string) (string, error) {
	if token != testToken {
		return "", common.ErrInvalidToken
	}
	return "admin-1", nil
}

type fakeUploader struct {
	readyErr error
	err      error
	got      *ingest.Upload
}

func (f *fakeUploader) Ready() error { return f.readyErr }

func (f *fakeUploader) Ingest(_ context.Context, up *ingest.Upload) (*ingest.StoredAsset, error) {
	f.got = up
	if f.err != nil {
		return nil, f.err
	}
	if up == nil {
		return nil, ingest.BadRequest("no file provided")
	}
	return &ingest.StoredAsset{Filename: "artwork-1-abc.jpg", URL: "https://cdn.example.com/artwork-1-abc.jpg"}, nil
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

type testServer struct {
	srv      *Server
	artworks *fakeArtworks
	events   *fakeEvents
	users    *fakeUsers
	upload   *fakeUploader
	local    *fakeUploader
}

func newTestServer(t *testing.T, mutate ...func(*Deps)) *testServer {
	t.Helper()
	ts := &testServer{
		artworks: &fakeArtworks{},
		events:   &fakeEvents{},
		users:    &fakeUsers{},
		upload:   &fakeUploader{},
		local:    &fakeUploader{},
	}
	d := Deps{
		Artworks:    ts.artworks,
		Events:      ts.events,
		Users:       ts.users,
		Upload:      ts.upload,
		LocalUpload: ts.local,
	}
	for _, m := range mutate {
		m(&d)
	}
	ts.srv = NewServer(":0", d)
	return ts
}

// do sends a request; body may be nil, a []byte or anything JSON-encodable.
func (ts *testServer) do(t *testing.T, method, path string, body any, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+testToken)
	}
	rec := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
