// AngelaMos | 2026
// repository.go

package rental

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/rentfolio/internal/core"
)

// The schema permits several rentals per property; everywhere a single rental
// is needed the most recent start_date wins.
type Repository interface {
	GetActiveByProperty(
		ctx context.Context,
		propertyID string,
	) (*Rental, error)
	ActiveByProperties(
		ctx context.Context,
		propertyIDs []string,
	) (map[string]Rental, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) GetActiveByProperty(
	ctx context.Context,
	propertyID string,
) (*Rental, error) {
	query := `
		SELECT id, property_id, tenant_name, tenant_phone, start_date,
		       end_date, monthly_rent, security_deposit, created_at
		FROM rentals
		WHERE property_id = $1
		ORDER BY start_date DESC
		LIMIT 1`

	var rental Rental
	err := r.db.GetContext(ctx, &rental, query, propertyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get rental: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get rental: %w", err)
	}

	return &rental, nil
}

// ActiveByProperties fetches the winning rental for every given property in
// one query. Properties without a rental are simply absent from the map.
func (r *repository) ActiveByProperties(
	ctx context.Context,
	propertyIDs []string,
) (map[string]Rental, error) {
	if len(propertyIDs) == 0 {
		return map[string]Rental{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT DISTINCT ON (property_id)
		       id, property_id, tenant_name, tenant_phone, start_date,
		       end_date, monthly_rent, security_deposit, created_at
		FROM rentals
		WHERE property_id IN (?)
		ORDER BY property_id, start_date DESC`, propertyIDs)
	if err != nil {
		return nil, fmt.Errorf("build rentals query: %w", err)
	}

	query = r.db.Rebind(query)

	var rentals []Rental
	if err := r.db.SelectContext(ctx, &rentals, query, args...); err != nil {
		return nil, fmt.Errorf("get rentals by properties: %w", err)
	}

	byProperty := make(map[string]Rental, len(rentals))
	for _, rental := range rentals {
		byProperty[rental.PropertyID] = rental
	}

	return byProperty, nil
}
