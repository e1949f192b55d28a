// AngelaMos | 2026
// service.go

package property

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carterperez-dev/rentfolio/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAvailable(ctx context.Context) ([]Property, error) {
	return s.repo.ListAvailable(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Property, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	req CreatePropertyRequest,
) (*Property, error) {
	listedDate, err := time.Parse(listedDateLayout, req.ListedDate)
	if err != nil {
		return nil, fmt.Errorf(
			"create property: invalid listed_date: %w",
			core.ErrInvalidInput,
		)
	}

	p := &Property{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Address:      req.Address,
		City:         req.City,
		Price:        *req.Price,
		Status:       req.Status,
		Bedrooms:     *req.Bedrooms,
		Bathrooms:    *req.Bathrooms,
		AreaSqft:     *req.AreaSqft,
		PropertyType: req.PropertyType,
		AgentID:      req.AgentID,
		ListedDate:   listedDate,
		OwnerUserID:  req.OwnerUserID,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}
