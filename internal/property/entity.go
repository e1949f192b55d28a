// AngelaMos | 2026
// entity.go

package property

import (
	"time"
)

type Property struct {
	ID           string    `db:"id"`
	Title        string    `db:"title"`
	Address      string    `db:"address"`
	City         string    `db:"city"`
	Price        float64   `db:"price"`
	Status       string    `db:"status"`
	Bedrooms     int       `db:"bedrooms"`
	Bathrooms    int       `db:"bathrooms"`
	AreaSqft     float64   `db:"area_sqft"`
	PropertyType string    `db:"property_type"`
	AgentID      string    `db:"agent_id"`
	ListedDate   time.Time `db:"listed_date"`
	OwnerUserID  string    `db:"owner_user_id"`
	CreatedAt    time.Time `db:"created_at"`
}

func (p *Property) IsAvailable() bool {
	return p.Status == StatusAvailable
}

const (
	StatusAvailable   = "Available"
	StatusRented      = "Rented"
	StatusUnavailable = "Unavailable"
)

// Summary is the reduced projection the tenant dashboard embeds.
type Summary struct {
	ID        string `db:"id"        json:"property_id"`
	Title     string `db:"title"     json:"title"`
	Address   string `db:"address"   json:"address"`
	Bedrooms  int    `db:"bedrooms"  json:"bedrooms"`
	Bathrooms int    `db:"bathrooms" json:"bathrooms"`
}
