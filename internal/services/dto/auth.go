package dto

// RegisterRequest creates a new account. Admins are seeded at startup and can
// never be registered through the API.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username" validate:"required,min=3,max=150"`
	Password    string `json:"password" validate:"required,min=8"`
	Role        string `json:"role" validate:"required,is-user-role"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=15"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse returns the token pair plus the account representation.
type AuthResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
	Message      string        `json:"message,omitempty"`
}
