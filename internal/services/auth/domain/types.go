// Package domain holds DTOs for the auth http and service contracts
package domain

// Credentials is the signup and signin body
type Credentials struct {
	Name     string `json:"name" validate:"required,min=1,max=64" example:"ana"`
	Password string `json:"password" validate:"required,min=1,max=128" example:"correct horse"`
}

// RefreshInput exchanges a refresh token for a new pair
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenPair is returned by signup, signin and refresh
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// User is the public view of an account
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// token kinds carried in the type claim
const (
	AccessToken  = "access_token"
	RefreshToken = "refresh_token"
)
