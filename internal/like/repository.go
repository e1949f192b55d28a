// AngelaMos | 2026
// repository.go

package like

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/rentfolio/internal/core"
)

type Repository interface {
	Create(ctx context.Context, l *Like) error
	LikersForProperty(
		ctx context.Context,
		propertyID string,
	) ([]Liker, error)
	LikersForProperties(
		ctx context.Context,
		propertyIDs []string,
	) (map[string][]Liker, error)
	LikedPropertyIDs(
		ctx context.Context,
		tenantUserID string,
	) ([]string, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// Create relies on the UNIQUE (property_id, tenant_user_id) constraint for
// exactly-once semantics. The insert is atomic: a duplicate is rejected by
// the database itself, so concurrent likes for the same pair cannot race.
func (r *repository) Create(ctx context.Context, l *Like) error {
	query := `
		INSERT INTO likes (id, property_id, tenant_user_id)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &l.CreatedAt, query,
		l.ID,
		l.PropertyID,
		l.TenantUserID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("create like: %w", core.ErrDuplicateKey)
			case "23503":
				return fmt.Errorf("create like: %w", core.ErrInvalidInput)
			}
		}
		return fmt.Errorf("create like: %w", err)
	}

	return nil
}

func (r *repository) LikersForProperty(
	ctx context.Context,
	propertyID string,
) ([]Liker, error) {
	query := `
		SELECT u.email, pt.name, pt.phone
		FROM likes l
		JOIN users u ON u.id = l.tenant_user_id
		LEFT JOIN potential_tenants pt ON pt.tenant_user_id = l.tenant_user_id
		WHERE l.property_id = $1
		ORDER BY l.created_at`

	var likers []Liker
	err := r.db.SelectContext(ctx, &likers, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("get likers for property: %w", err)
	}

	return likers, nil
}

// LikersForProperties resolves the likers of every given property in a single
// query, so assembling a dashboard never repeats the per-property lookup.
func (r *repository) LikersForProperties(
	ctx context.Context,
	propertyIDs []string,
) (map[string][]Liker, error) {
	if len(propertyIDs) == 0 {
		return map[string][]Liker{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT l.property_id, u.email, pt.name, pt.phone
		FROM likes l
		JOIN users u ON u.id = l.tenant_user_id
		LEFT JOIN potential_tenants pt ON pt.tenant_user_id = l.tenant_user_id
		WHERE l.property_id IN (?)
		ORDER BY l.created_at`, propertyIDs)
	if err != nil {
		return nil, fmt.Errorf("build likers query: %w", err)
	}

	query = r.db.Rebind(query)

	var rows []struct {
		PropertyID string `db:"property_id"`
		Liker
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get likers for properties: %w", err)
	}

	byProperty := make(map[string][]Liker, len(propertyIDs))
	for _, row := range rows {
		byProperty[row.PropertyID] = append(byProperty[row.PropertyID], row.Liker)
	}

	return byProperty, nil
}

func (r *repository) LikedPropertyIDs(
	ctx context.Context,
	tenantUserID string,
) ([]string, error) {
	query := `
		SELECT property_id
		FROM likes
		WHERE tenant_user_id = $1
		ORDER BY created_at`

	var ids []string
	err := r.db.SelectContext(ctx, &ids, query, tenantUserID)
	if err != nil {
		return nil, fmt.Errorf("get liked property ids: %w", err)
	}

	return ids, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM likes`)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}

	return count, nil
}
