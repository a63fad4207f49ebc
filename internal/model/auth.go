package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	CEFRLevel Level  `json:"cefr_level" validate:"omitempty,oneof=A1 A2 B1 B2 C1"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

// JWTCustomClaims are the claims of an access token. The subject is the user ID.
type JWTCustomClaims struct {
	Level Level `json:"level,omitempty"`
	jwt.RegisteredClaims
}
