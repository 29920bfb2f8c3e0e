package transport

// LoginRequest carries staff credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RefreshRequest carries a refresh token to rotate
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LogoutRequest revokes a refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// TokenPairResponse is returned on login and refresh
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// MeResponse describes the authenticated staff user
type MeResponse struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	DisplayName string   `json:"displayName"`
	Roles       []string `json:"roles"`
}
