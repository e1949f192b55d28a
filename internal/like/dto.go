// AngelaMos | 2026
// dto.go

package like

type LikeRequest struct {
	PropertyID   string `json:"property_id"    validate:"required,uuid"`
	TenantUserID string `json:"tenant_user_id" validate:"required,uuid"`
}

type LikeResponse struct {
	Message string `json:"message"`
}

type LikersResponse struct {
	TotalLikes        int     `json:"total_likes"`
	InterestedTenants []Liker `json:"interested_tenants"`
}
