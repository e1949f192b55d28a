// AngelaMos | 2026
// handler_test.go

package property

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/rentfolio/internal/core"
)

type fakeRepo struct {
	properties []Property
	created    []*Property
	createErr  error
}

func (f *fakeRepo) Create(_ context.Context, p *Property) error {
	if f.createErr != nil {
		return f.createErr
	}
	p.CreatedAt = time.Now()
	f.created = append(f.created, p)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Property, error) {
	for i := range f.properties {
		if f.properties[i].ID == id {
			return &f.properties[i], nil
		}
	}
	return nil, fmt.Errorf("get property: %w", core.ErrNotFound)
}

func (f *fakeRepo) ListAvailable(_ context.Context) ([]Property, error) {
	var out []Property
	for _, p := range f.properties {
		if p.Status == StatusAvailable {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByOwner(
	_ context.Context,
	ownerUserID string,
) ([]Property, error) {
	var out []Property
	for _, p := range f.properties {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) SummariesByIDs(
	_ context.Context,
	ids []string,
) ([]Summary, error) {
	return nil, nil
}

func (f *fakeRepo) CountByStatus(
	_ context.Context,
) (total, available int, err error) {
	return len(f.properties), 0, nil
}

func newTestRouter(repo Repository) chi.Router {
	h := NewHandler(NewService(repo))
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

const (
	testAgentID = "0b1c2d3e-4f5a-4b6c-8d7e-9f0a1b2c3d4e"
	testOwnerID = "5e6f7a8b-9c0d-4e1f-8a2b-3c4d5e6f7a8b"
)

func validCreateBody() map[string]any {
	return map[string]any{
		"title":         "Sunrise Villa",
		"address":       "42 Hill Road",
		"city":          "Pune",
		"price":         7500000,
		"status":        "Available",
		"bedrooms":      3,
		"bathrooms":     2,
		"area_sqft":     1450.5,
		"property_type": "Villa",
		"agent_id":      testAgentID,
		"listed_date":   "2026-08-15",
		"owner_user_id": testOwnerID,
	}
}

func postProperty(
	t *testing.T,
	router chi.Router,
	body map[string]any,
) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(
		http.MethodPost,
		"/add_property",
		strings.NewReader(string(raw)),
	)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreatePropertySucceeds(t *testing.T) {
	repo := &fakeRepo{}
	router := newTestRouter(repo)

	rec := postProperty(t, router, validCreateBody())

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Sunrise Villa", resp.Title)
	assert.Equal(t, "2026-08-15", resp.ListedDate)
	assert.InDelta(t, 7500000.0, resp.Price, 1e-9)

	require.Len(t, repo.created, 1)
	assert.Equal(t, StatusAvailable, repo.created[0].Status)
}

func TestCreatePropertyReportsEveryMissingField(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	rec := postProperty(t, router, map[string]any{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := rec.Body.String()
	for _, field := range []string{
		"title", "address", "city", "price", "status",
		"bedrooms", "bathrooms", "area_sqft", "property_type",
		"agent_id", "listed_date", "owner_user_id",
	} {
		assert.Contains(t, body, field)
	}
}

func TestCreatePropertyAllowsZeroBedrooms(t *testing.T) {
	repo := &fakeRepo{}
	router := newTestRouter(repo)

	body := validCreateBody()
	body["bedrooms"] = 0
	body["property_type"] = "Studio"

	rec := postProperty(t, router, body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.created, 1)
	assert.Equal(t, 0, repo.created[0].Bedrooms)
}

func TestCreatePropertyRejectsNonPositivePrice(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	body := validCreateBody()
	body["price"] = 0

	rec := postProperty(t, router, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "price")
}

func TestCreatePropertyRejectsUnknownStatus(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	body := validCreateBody()
	body["status"] = "ForSale"

	rec := postProperty(t, router, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "status")
}

func TestCreatePropertyRejectsMalformedDate(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	body := validCreateBody()
	body["listed_date"] = "15-08-2026"

	rec := postProperty(t, router, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "listed_date")
}

func TestListAvailableFiltersByStatus(t *testing.T) {
	repo := &fakeRepo{
		properties: []Property{
			{ID: "prop-1", Title: "Open", Status: StatusAvailable},
			{ID: "prop-2", Title: "Taken", Status: StatusRented},
		},
	}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/properties", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "prop-1", resp[0].ID)
}

func TestGetUnknownPropertyReturnsNotFound(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	req := httptest.NewRequest(
		http.MethodGet,
		"/properties/"+testAgentID,
		nil,
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
