// AngelaMos | 2026
// entity.go

package rental

import (
	"time"
)

// TenantPhone and SecurityDeposit are nullable in the schema.
type Rental struct {
	ID              string    `db:"id"`
	PropertyID      string    `db:"property_id"`
	TenantName      string    `db:"tenant_name"`
	TenantPhone     *string   `db:"tenant_phone"`
	StartDate       time.Time `db:"start_date"`
	EndDate         time.Time `db:"end_date"`
	MonthlyRent     float64   `db:"monthly_rent"`
	SecurityDeposit *float64  `db:"security_deposit"`
	CreatedAt       time.Time `db:"created_at"`
}
