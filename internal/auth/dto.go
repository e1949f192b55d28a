// AngelaMos | 2026
// dto.go

package auth

type SignupRequest struct {
	Email    string `json:"email"     validate:"required,email,max=255"`
	Password string `json:"password"  validate:"required,min=8,max=128"`
	UserType string `json:"user_type" validate:"required,oneof=owner tenant"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type LoginResponse struct {
	Message     string `json:"message"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	UserType    string `json:"user_type"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
