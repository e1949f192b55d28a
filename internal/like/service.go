// AngelaMos | 2026
// service.go

package like

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Like records interest in a property. Duplicate pairs surface as
// core.ErrDuplicateKey with no state change.
func (s *Service) Like(
	ctx context.Context,
	propertyID, tenantUserID string,
) (*Like, error) {
	l := &Like{
		ID:           uuid.New().String(),
		PropertyID:   propertyID,
		TenantUserID: tenantUserID,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *Service) Likers(
	ctx context.Context,
	propertyID string,
) ([]Liker, error) {
	return s.repo.LikersForProperty(ctx, propertyID)
}

func (s *Service) LikedPropertyIDs(
	ctx context.Context,
	tenantUserID string,
) ([]string, error) {
	return s.repo.LikedPropertyIDs(ctx, tenantUserID)
}
