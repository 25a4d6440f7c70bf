package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type User struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	Name               string         `json:"name"`
	Email              string         `json:"email" gorm:"uniqueIndex"`
	Password           string         `json:"-"` // bcrypt hash, never serialized
	Role               string         `json:"role" gorm:"size:20;default:'brand'"`
	SubscriptionStatus string         `json:"subscription_status" gorm:"size:20;default:'free'"`
	EmailConfirmed     bool           `json:"email_confirmed" gorm:"default:false"`
	FirebaseUID        *string        `json:"firebase_uid,omitempty" gorm:"uniqueIndex"` // NULL until a Firebase login links it; NULLs never collide on the index

	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `json:"-" gorm:"index"`
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Name  string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// TokenPair is issued on signup/signin and renewed on refresh. The access
// token authorizes API calls; the refresh token is only accepted by the
// refresh and confirm endpoints.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims.
// TokenType distinguishes access tokens from refresh tokens.
type JwtCustomClaims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type,omitempty"`
	jwt.RegisteredClaims
}
