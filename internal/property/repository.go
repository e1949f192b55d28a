// AngelaMos | 2026
// repository.go

package property

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/rentfolio/internal/core"
)

type Repository interface {
	Create(ctx context.Context, p *Property) error
	GetByID(ctx context.Context, id string) (*Property, error)
	ListAvailable(ctx context.Context) ([]Property, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Property, error)
	SummariesByIDs(ctx context.Context, ids []string) ([]Summary, error)
	CountByStatus(ctx context.Context) (total, available int, err error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Property) error {
	query := `
		INSERT INTO properties (id, title, address, city, price, status,
		                        bedrooms, bathrooms, area_sqft, property_type,
		                        agent_id, listed_date, owner_user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &p.CreatedAt, query,
		p.ID,
		p.Title,
		p.Address,
		p.City,
		p.Price,
		p.Status,
		p.Bedrooms,
		p.Bathrooms,
		p.AreaSqft,
		p.PropertyType,
		p.AgentID,
		p.ListedDate,
		p.OwnerUserID,
	)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("create property: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create property: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Property, error) {
	query := `
		SELECT id, title, address, city, price, status, bedrooms, bathrooms,
		       area_sqft, property_type, agent_id, listed_date, owner_user_id,
		       created_at
		FROM properties
		WHERE id = $1`

	var p Property
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get property: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}

	return &p, nil
}

func (r *repository) ListAvailable(ctx context.Context) ([]Property, error) {
	query := `
		SELECT id, title, address, city, price, status, bedrooms, bathrooms,
		       area_sqft, property_type, agent_id, listed_date, owner_user_id,
		       created_at
		FROM properties
		WHERE status = $1
		ORDER BY listed_date DESC`

	var properties []Property
	err := r.db.SelectContext(ctx, &properties, query, StatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("list available properties: %w", err)
	}

	return properties, nil
}

func (r *repository) ListByOwner(
	ctx context.Context,
	ownerUserID string,
) ([]Property, error) {
	query := `
		SELECT id, title, address, city, price, status, bedrooms, bathrooms,
		       area_sqft, property_type, agent_id, listed_date, owner_user_id,
		       created_at
		FROM properties
		WHERE owner_user_id = $1
		ORDER BY listed_date DESC`

	var properties []Property
	err := r.db.SelectContext(ctx, &properties, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("list properties by owner: %w", err)
	}

	return properties, nil
}

// SummariesByIDs returns only the rows that still exist; callers are expected
// to treat missing ids as skippable.
func (r *repository) SummariesByIDs(
	ctx context.Context,
	ids []string,
) ([]Summary, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, title, address, bedrooms, bathrooms
		FROM properties
		WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("build summaries query: %w", err)
	}

	query = r.db.Rebind(query)

	var summaries []Summary
	if err := r.db.SelectContext(ctx, &summaries, query, args...); err != nil {
		return nil, fmt.Errorf("get property summaries: %w", err)
	}

	return summaries, nil
}

func (r *repository) CountByStatus(
	ctx context.Context,
) (total, available int, err error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = $1)
		FROM properties`

	row := r.db.QueryRowxContext(ctx, query, StatusAvailable)
	if err := row.Scan(&total, &available); err != nil {
		return 0, 0, fmt.Errorf("count properties: %w", err)
	}

	return total, available, nil
}

func isForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
