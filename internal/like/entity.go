// AngelaMos | 2026
// entity.go

package like

import (
	"time"
)

// Like records a tenant's interest in a property, unique per
// (property, tenant) pair. Never updated, never removed.
type Like struct {
	ID           string    `db:"id"`
	PropertyID   string    `db:"property_id"`
	TenantUserID string    `db:"tenant_user_id"`
	CreatedAt    time.Time `db:"created_at"`
}

// Liker is a like enriched with the tenant's contact profile. Name and phone
// are nullable: a tenant without a potential_tenants row still counts.
type Liker struct {
	Email string  `db:"email" json:"email"`
	Name  *string `db:"name"  json:"name"`
	Phone *string `db:"phone" json:"phone"`
}
