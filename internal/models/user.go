package models

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

type User struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email,omitempty"`
	PassportNumber string     `json:"passport_number,omitempty"`
	Password       string     `json:"password,omitempty"`
	Avatar         *string    `json:"avatar,omitempty"`
	Role           string     `json:"role"`
	Disabled       bool       `json:"disabled,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Session struct {
	UserID       int       `json:"user_id"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type SignUpRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	PassportNumber string `json:"passport_number"`
	Password       string `json:"password"`
}

type SignUpResponse struct {
	User   User   `json:"user"`
	Tokens Tokens `json:"tokens"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name           string  `json:"name"`
	PassportNumber string  `json:"passport_number"`
	Avatar         *string `json:"avatar,omitempty"`
}
