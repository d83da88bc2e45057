package types

import "github.com/golang-jwt/jwt/v5"

// RegisterRequest represents the expected JSON body for user registration.
type RegisterRequest struct {
	Username  string  `json:"username" validate:"required,username" example:"traveler_01"`
	Email     string  `json:"email" validate:"required,email" example:"newuser@example.com"`
	Password  string  `json:"password" validate:"required,strongpassword" example:"Str0ngPass"`
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,max=50"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,max=50"`
}

// LoginRequest represents the expected JSON body for user login.
// Username accepts either the username or the email address.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=255" example:"traveler_01"`
	Password string `json:"password" validate:"required" example:"Str0ngPass"`
}

// AuthResponse is returned after a successful register or login.
type AuthResponse struct {
	User  *UserProfile `json:"user"`
	Token string       `json:"token" example:"eyJhbGciOiJI..."`
}

// Claims represents the custom claims included in the JWT access token.
type Claims struct {
	UserID   string `json:"uid"`
	Username string `json:"usr,omitempty"`
	Email    string `json:"eml"`
	jwt.RegisteredClaims
}
