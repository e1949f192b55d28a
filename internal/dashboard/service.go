// AngelaMos | 2026
// service.go

package dashboard

import (
	"context"

	"github.com/carterperez-dev/rentfolio/internal/like"
	"github.com/carterperez-dev/rentfolio/internal/property"
	"github.com/carterperez-dev/rentfolio/internal/rental"
	"github.com/carterperez-dev/rentfolio/internal/yield"
)

type PropertyStore interface {
	ListByOwner(
		ctx context.Context,
		ownerUserID string,
	) ([]property.Property, error)
	SummariesByIDs(
		ctx context.Context,
		ids []string,
	) ([]property.Summary, error)
}

type RentalLedger interface {
	ActiveByProperties(
		ctx context.Context,
		propertyIDs []string,
	) (map[string]rental.Rental, error)
}

type LikeRegistry interface {
	LikedPropertyIDs(
		ctx context.Context,
		tenantUserID string,
	) ([]string, error)
	LikersForProperties(
		ctx context.Context,
		propertyIDs []string,
	) (map[string][]like.Liker, error)
}

type Service struct {
	properties PropertyStore
	rentals    RentalLedger
	likes      LikeRegistry
}

func NewService(
	properties PropertyStore,
	rentals RentalLedger,
	likes LikeRegistry,
) *Service {
	return &Service{
		properties: properties,
		rentals:    rentals,
		likes:      likes,
	}
}

// OwnerView lists every property of the owner that has an active rental,
// with yield metrics derived from its price and rent. Properties without a
// rental, or whose price/rent cannot produce metrics, are excluded rather
// than zeroed. An empty slice means "no rented properties", not failure.
func (s *Service) OwnerView(
	ctx context.Context,
	ownerUserID string,
) ([]OwnerEntry, error) {
	properties, err := s.properties.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	if len(properties) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(properties))
	for _, p := range properties {
		ids = append(ids, p.ID)
	}

	rentals, err := s.rentals.ActiveByProperties(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]OwnerEntry, 0, len(rentals))
	for _, p := range properties {
		r, ok := rentals[p.ID]
		if !ok {
			continue
		}

		metrics, err := yield.Compute(p.Price, r.MonthlyRent)
		if err != nil {
			continue
		}

		entries = append(entries, OwnerEntry{
			PropertyID:         p.ID,
			PropertyTitle:      p.Title,
			PropertyPrice:      p.Price,
			MonthlyRent:        r.MonthlyRent,
			AnnualRent:         metrics.AnnualRent,
			RentalYieldPercent: metrics.YieldPercent,
			YearsToCoverPrice:  metrics.YearsToCoverPrice,
		})
	}

	return entries, nil
}

// TenantView lists the tenant's liked properties enriched with the full
// likers set per property. Summaries and likers are each fetched in one
// batched query; liked ids whose property no longer exists are skipped.
func (s *Service) TenantView(
	ctx context.Context,
	tenantUserID string,
) ([]TenantEntry, error) {
	likedIDs, err := s.likes.LikedPropertyIDs(ctx, tenantUserID)
	if err != nil {
		return nil, err
	}

	if len(likedIDs) == 0 {
		return nil, nil
	}

	summaries, err := s.properties.SummariesByIDs(ctx, likedIDs)
	if err != nil {
		return nil, err
	}

	summaryByID := make(map[string]property.Summary, len(summaries))
	for _, summary := range summaries {
		summaryByID[summary.ID] = summary
	}

	likersByProperty, err := s.likes.LikersForProperties(ctx, likedIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]TenantEntry, 0, len(likedIDs))
	for _, id := range likedIDs {
		summary, ok := summaryByID[id]
		if !ok {
			continue
		}

		likers := likersByProperty[id]
		entries = append(entries, TenantEntry{
			PropertyID:        summary.ID,
			Title:             summary.Title,
			Address:           summary.Address,
			Bedrooms:          summary.Bedrooms,
			Bathrooms:         summary.Bathrooms,
			InterestedTenants: likers,
			TotalLikes:        len(likers),
		})
	}

	return entries, nil
}
