// AngelaMos | 2026
// dto.go

package property

import (
	"time"
)

// CreatePropertyRequest requires every listing attribute. Numeric fields are
// pointers so that an absent field and a legitimate zero are distinguishable.
type CreatePropertyRequest struct {
	Title        string   `json:"title"         validate:"required,max=100"`
	Address      string   `json:"address"       validate:"required,max=150"`
	City         string   `json:"city"          validate:"required,max=50"`
	Price        *float64 `json:"price"         validate:"required,gt=0"`
	Status       string   `json:"status"        validate:"required,oneof=Available Rented Unavailable"`
	Bedrooms     *int     `json:"bedrooms"      validate:"required,min=0"`
	Bathrooms    *int     `json:"bathrooms"     validate:"required,min=0"`
	AreaSqft     *float64 `json:"area_sqft"     validate:"required,gt=0"`
	PropertyType string   `json:"property_type" validate:"required,max=50"`
	AgentID      string   `json:"agent_id"      validate:"required,uuid"`
	ListedDate   string   `json:"listed_date"   validate:"required,datetime=2006-01-02"`
	OwnerUserID  string   `json:"owner_user_id" validate:"required,uuid"`
}

type PropertyResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Price        float64   `json:"price"`
	Status       string    `json:"status"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	AreaSqft     float64   `json:"area_sqft"`
	PropertyType string    `json:"property_type"`
	AgentID      string    `json:"agent_id"`
	ListedDate   string    `json:"listed_date"`
	OwnerUserID  string    `json:"owner_user_id"`
	CreatedAt    time.Time `json:"created_at"`
}

const listedDateLayout = "2006-01-02"

func ToPropertyResponse(p *Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID,
		Title:        p.Title,
		Address:      p.Address,
		City:         p.City,
		Price:        p.Price,
		Status:       p.Status,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		AreaSqft:     p.AreaSqft,
		PropertyType: p.PropertyType,
		AgentID:      p.AgentID,
		ListedDate:   p.ListedDate.Format(listedDateLayout),
		OwnerUserID:  p.OwnerUserID,
		CreatedAt:    p.CreatedAt,
	}
}

func ToPropertyResponseList(properties []Property) []PropertyResponse {
	responses := make([]PropertyResponse, 0, len(properties))
	for _, p := range properties {
		responses = append(responses, ToPropertyResponse(&p))
	}
	return responses
}
