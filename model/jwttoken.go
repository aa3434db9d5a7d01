package model

import "github.com/golang-jwt/jwt/v5"

// RefreshTokenRecord is stored at refreshTokens/{uid}. The token itself is
// never persisted, only its hash.
type RefreshTokenRecord struct {
	UserID    string `firestore:"userId" json:"userId"`
	TokenHash string `firestore:"tokenHash" json:"tokenHash"`
	CreatedAt int64  `firestore:"createdAt" json:"createdAt"` // unix seconds
	Revoked   bool   `firestore:"revoked" json:"revoked"`
	ExpiresIn int64  `firestore:"expiresIn" json:"expiresIn"` // seconds
}

type AccessClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
