// AngelaMos | 2026
// handler_test.go

package like

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/rentfolio/internal/core"
)

type fakeRepo struct {
	createErr error
	created   []*Like
	likers    map[string][]Liker
}

func (f *fakeRepo) Create(_ context.Context, l *Like) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, l)
	return nil
}

func (f *fakeRepo) LikersForProperty(
	_ context.Context,
	propertyID string,
) ([]Liker, error) {
	return f.likers[propertyID], nil
}

func (f *fakeRepo) LikersForProperties(
	_ context.Context,
	propertyIDs []string,
) (map[string][]Liker, error) {
	out := make(map[string][]Liker)
	for _, id := range propertyIDs {
		if likers, ok := f.likers[id]; ok {
			out[id] = likers
		}
	}
	return out, nil
}

func (f *fakeRepo) LikedPropertyIDs(
	_ context.Context,
	_ string,
) ([]string, error) {
	return nil, nil
}

func (f *fakeRepo) Count(_ context.Context) (int, error) {
	return len(f.created), nil
}

func newTestRouter(repo Repository) chi.Router {
	h := NewHandler(NewService(repo))
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

const (
	testPropertyID = "3f9c2a1e-8b4d-4c6e-9f0a-1d2e3f4a5b6c"
	testTenantID   = "7a8b9c0d-1e2f-4a3b-8c4d-5e6f7a8b9c0d"
)

func postLike(t *testing.T, router chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(
		http.MethodPost,
		"/like_property",
		strings.NewReader(body),
	)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLikeFirstTimeSucceeds(t *testing.T) {
	repo := &fakeRepo{}
	router := newTestRouter(repo)

	body := `{"property_id":"` + testPropertyID +
		`","tenant_user_id":"` + testTenantID + `"}`
	rec := postLike(t, router, body)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp LikeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Property liked successfully", resp.Message)

	require.Len(t, repo.created, 1)
	assert.Equal(t, testPropertyID, repo.created[0].PropertyID)
	assert.Equal(t, testTenantID, repo.created[0].TenantUserID)
	assert.NotEmpty(t, repo.created[0].ID)
}

func TestLikeDuplicateReturnsConflict(t *testing.T) {
	repo := &fakeRepo{createErr: core.ErrDuplicateKey}
	router := newTestRouter(repo)

	body := `{"property_id":"` + testPropertyID +
		`","tenant_user_id":"` + testTenantID + `"}`
	rec := postLike(t, router, body)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "You have already liked this property")
}

func TestLikeUnknownReferencesReturnBadRequest(t *testing.T) {
	repo := &fakeRepo{createErr: core.ErrInvalidInput}
	router := newTestRouter(repo)

	body := `{"property_id":"` + testPropertyID +
		`","tenant_user_id":"` + testTenantID + `"}`
	rec := postLike(t, router, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLikeReportsEveryMissingField(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	rec := postLike(t, router, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "property_id")
	assert.Contains(t, rec.Body.String(), "tenant_user_id")
}

func TestLikeRejectsMalformedIDs(t *testing.T) {
	repo := &fakeRepo{}
	router := newTestRouter(repo)

	rec := postLike(
		t,
		router,
		`{"property_id":"not-a-uuid","tenant_user_id":"also-not"}`,
	)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.created)
}

func TestLikeRejectsInvalidJSON(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	rec := postLike(t, router, `{"property_id":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetLikesEmptyReturnsNotFound(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	req := httptest.NewRequest(
		http.MethodGet,
		"/get_likes/"+testPropertyID,
		nil,
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No one has liked this property yet.")
}

func TestGetLikesCountsMatchLikers(t *testing.T) {
	name := "Priya Nair"
	repo := &fakeRepo{
		likers: map[string][]Liker{
			testPropertyID: {
				{Email: "priya@example.com", Name: &name},
				{Email: "anon@example.com"},
			},
		},
	}
	router := newTestRouter(repo)

	req := httptest.NewRequest(
		http.MethodGet,
		"/get_likes/"+testPropertyID,
		nil,
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp LikersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalLikes)
	assert.Len(t, resp.InterestedTenants, 2)
	assert.Equal(t, "priya@example.com", resp.InterestedTenants[0].Email)
	assert.Nil(t, resp.InterestedTenants[1].Name)
}
