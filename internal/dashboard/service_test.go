// AngelaMos | 2026
// service_test.go

package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/rentfolio/internal/like"
	"github.com/carterperez-dev/rentfolio/internal/property"
	"github.com/carterperez-dev/rentfolio/internal/rental"
)

type fakePropertyStore struct {
	byOwner   map[string][]property.Property
	summaries []property.Summary
}

func (f *fakePropertyStore) ListByOwner(
	_ context.Context,
	ownerUserID string,
) ([]property.Property, error) {
	return f.byOwner[ownerUserID], nil
}

func (f *fakePropertyStore) SummariesByIDs(
	_ context.Context,
	ids []string,
) ([]property.Summary, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var out []property.Summary
	for _, s := range f.summaries {
		if want[s.ID] {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeRentalLedger struct {
	active map[string]rental.Rental
}

func (f *fakeRentalLedger) ActiveByProperties(
	_ context.Context,
	propertyIDs []string,
) (map[string]rental.Rental, error) {
	out := make(map[string]rental.Rental)
	for _, id := range propertyIDs {
		if r, ok := f.active[id]; ok {
			out[id] = r
		}
	}
	return out, nil
}

type fakeLikeRegistry struct {
	liked  map[string][]string
	likers map[string][]like.Liker
}

func (f *fakeLikeRegistry) LikedPropertyIDs(
	_ context.Context,
	tenantUserID string,
) ([]string, error) {
	return f.liked[tenantUserID], nil
}

func (f *fakeLikeRegistry) LikersForProperties(
	_ context.Context,
	propertyIDs []string,
) (map[string][]like.Liker, error) {
	out := make(map[string][]like.Liker)
	for _, id := range propertyIDs {
		if likers, ok := f.likers[id]; ok {
			out[id] = likers
		}
	}
	return out, nil
}

func TestOwnerViewComputesYieldMetrics(t *testing.T) {
	svc := NewService(
		&fakePropertyStore{
			byOwner: map[string][]property.Property{
				"owner-1": {
					{ID: "prop-1", Title: "Sunrise Villa", Price: 7500000},
				},
			},
		},
		&fakeRentalLedger{
			active: map[string]rental.Rental{
				"prop-1": {PropertyID: "prop-1", MonthlyRent: 35000},
			},
		},
		&fakeLikeRegistry{},
	)

	entries, err := svc.OwnerView(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "prop-1", entry.PropertyID)
	assert.Equal(t, "Sunrise Villa", entry.PropertyTitle)
	assert.InDelta(t, 7500000.0, entry.PropertyPrice, 1e-9)
	assert.InDelta(t, 35000.0, entry.MonthlyRent, 1e-9)
	assert.InDelta(t, 420000.0, entry.AnnualRent, 1e-9)
	assert.InDelta(t, 5.6, entry.RentalYieldPercent, 1e-9)
	assert.InDelta(t, 17.857142857, entry.YearsToCoverPrice, 1e-6)
}

func TestOwnerViewOmitsPropertiesWithoutRental(t *testing.T) {
	svc := NewService(
		&fakePropertyStore{
			byOwner: map[string][]property.Property{
				"owner-1": {
					{ID: "prop-rented", Title: "Rented", Price: 5000000},
					{ID: "prop-vacant", Title: "Vacant", Price: 4000000},
				},
			},
		},
		&fakeRentalLedger{
			active: map[string]rental.Rental{
				"prop-rented": {PropertyID: "prop-rented", MonthlyRent: 25000},
			},
		},
		&fakeLikeRegistry{},
	)

	entries, err := svc.OwnerView(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "prop-rented", entries[0].PropertyID)
}

func TestOwnerViewOmitsNonComputableMetrics(t *testing.T) {
	svc := NewService(
		&fakePropertyStore{
			byOwner: map[string][]property.Property{
				"owner-1": {
					{ID: "prop-1", Title: "Free Stay", Price: 5000000},
				},
			},
		},
		&fakeRentalLedger{
			active: map[string]rental.Rental{
				"prop-1": {PropertyID: "prop-1", MonthlyRent: 0},
			},
		},
		&fakeLikeRegistry{},
	)

	entries, err := svc.OwnerView(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOwnerViewNoPropertiesReturnsEmpty(t *testing.T) {
	svc := NewService(
		&fakePropertyStore{},
		&fakeRentalLedger{},
		&fakeLikeRegistry{},
	)

	entries, err := svc.OwnerView(context.Background(), "owner-unknown")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTenantViewEnrichesLikedProperties(t *testing.T) {
	name := "Meera Iyer"
	svc := NewService(
		&fakePropertyStore{
			summaries: []property.Summary{
				{
					ID:        "prop-1",
					Title:     "Lake View Flat",
					Address:   "12 Lake Road",
					Bedrooms:  2,
					Bathrooms: 1,
				},
			},
		},
		&fakeRentalLedger{},
		&fakeLikeRegistry{
			liked: map[string][]string{
				"tenant-1": {"prop-1"},
			},
			likers: map[string][]like.Liker{
				"prop-1": {
					{Email: "meera@example.com", Name: &name},
					{Email: "other@example.com"},
				},
			},
		},
	)

	entries, err := svc.TenantView(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "prop-1", entry.PropertyID)
	assert.Equal(t, "Lake View Flat", entry.Title)
	assert.Equal(t, "12 Lake Road", entry.Address)
	assert.Equal(t, 2, entry.Bedrooms)
	assert.Equal(t, 1, entry.Bathrooms)
	assert.Len(t, entry.InterestedTenants, 2)
	assert.Equal(t, len(entry.InterestedTenants), entry.TotalLikes)
}

func TestTenantViewSkipsDeletedProperties(t *testing.T) {
	svc := NewService(
		&fakePropertyStore{
			summaries: []property.Summary{
				{ID: "prop-alive", Title: "Still Here"},
			},
		},
		&fakeRentalLedger{},
		&fakeLikeRegistry{
			liked: map[string][]string{
				"tenant-1": {"prop-gone", "prop-alive"},
			},
			likers: map[string][]like.Liker{
				"prop-alive": {{Email: "someone@example.com"}},
			},
		},
	)

	entries, err := svc.TenantView(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "prop-alive", entries[0].PropertyID)
}

func TestTenantViewNoLikesReturnsEmpty(t *testing.T) {
	svc := NewService(
		&fakePropertyStore{},
		&fakeRentalLedger{},
		&fakeLikeRegistry{},
	)

	entries, err := svc.TenantView(context.Background(), "tenant-unknown")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
