// AngelaMos | 2026
// dto.go

package dashboard

import (
	"github.com/carterperez-dev/rentfolio/internal/like"
)

// OwnerEntry is one rented property with its derived financials. Field names
// mirror the owner dashboard's established payload.
type OwnerEntry struct {
	PropertyID         string  `json:"property_id"`
	PropertyTitle      string  `json:"property_title"`
	PropertyPrice      float64 `json:"property_price"`
	MonthlyRent        float64 `json:"monthly_rent"`
	AnnualRent         float64 `json:"annual_rent"`
	RentalYieldPercent float64 `json:"rental_yield_percent"`
	YearsToCoverPrice  float64 `json:"years_to_cover_price"`
}

// TenantEntry is one liked property with its co-interest data. TotalLikes is
// always len(InterestedTenants); the canonical likers set is computed once
// per property per assembly.
type TenantEntry struct {
	PropertyID        string       `json:"property_id"`
	Title             string       `json:"title"`
	Address           string       `json:"address"`
	Bedrooms          int          `json:"bedrooms"`
	Bathrooms         int          `json:"bathrooms"`
	InterestedTenants []like.Liker `json:"interested_tenants"`
	TotalLikes        int          `json:"total_likes"`
}
