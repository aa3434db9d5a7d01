package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"taskflow/model"
)

// AuthStore is the slice of the document store the auth service needs.
type AuthStore interface {
	CreateUser(ctx context.Context, u model.User) error
	GetUser(ctx context.Context, uid string) (model.User, error)
	FindUserByEmail(ctx context.Context, email string) (model.User, error)
	UpdateUserName(ctx context.Context, uid, name string) error
	SaveAccount(ctx context.Context, a model.Account) error
	GetAccount(ctx context.Context, uid string) (model.Account, error)
	SaveRefreshToken(ctx context.Context, rec model.RefreshTokenRecord) error
	DeleteRefreshToken(ctx context.Context, uid string) error
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService owns account creation, sign-in/out and profile updates.
// Identity changes observed by the rest of the process go through the
// session store, not through this service.
type AuthService struct {
	store AuthStore
	log   *zap.Logger
}

func NewAuthService(store AuthStore, log *zap.Logger) *AuthService {
	return &AuthService{store: store, log: log}
}

// CreateAccount registers a new identity and writes its public profile to
// users/{uid} with a placeholder avatar derived from the name.
func (s *AuthService) CreateAccount(ctx context.Context, email, password, name string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return model.User{}, NewError(KindValidation, "name, email and password are required")
	}
	if len(password) < 6 {
		return model.User{}, NewError(KindValidation, "password must be at least 6 characters")
	}

	if _, err := s.store.FindUserByEmail(ctx, email); err == nil {
		return model.User{}, NewError(KindValidation, "email is already registered")
	} else if KindOf(err) != KindNotFound {
		return model.User{}, FromBackend(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, WrapError(KindUnknown, "failed to hash password", err)
	}

	user := model.User{
		UID:       uuid.New().String(),
		Name:      name,
		Email:     email,
		AvatarURL: fmt.Sprintf("https://placehold.co/100x100.png?text=%s", firstLetter(name)),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return model.User{}, FromBackend(err)
	}
	account := model.Account{UID: user.UID, Email: email, PasswordHash: string(hash)}
	if err := s.store.SaveAccount(ctx, account); err != nil {
		return model.User{}, FromBackend(err)
	}
	s.log.Info("account created", zap.String("uid", user.UID))
	return user, nil
}

// SignIn verifies credentials and issues an access/refresh token pair. The
// refresh token is stored hashed, keyed by uid.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (model.User, TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return model.User{}, TokenPair{}, NewError(KindValidation, "email and password are required")
	}

	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return model.User{}, TokenPair{}, NewError(KindNotFound, "no account with that email")
		}
		return model.User{}, TokenPair{}, FromBackend(err)
	}
	account, err := s.store.GetAccount(ctx, user.UID)
	if err != nil {
		return model.User{}, TokenPair{}, FromBackend(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return model.User{}, TokenPair{}, NewError(KindValidation, "invalid email or password")
	}

	access, err := CreateAccessToken(user.UID, user.Email)
	if err != nil {
		return model.User{}, TokenPair{}, WrapError(KindUnknown, "failed to create access token", err)
	}
	refresh, err := CreateRefreshToken(user.UID)
	if err != nil {
		return model.User{}, TokenPair{}, WrapError(KindUnknown, "failed to create refresh token", err)
	}
	hashed, err := HashRefreshToken(refresh)
	if err != nil {
		return model.User{}, TokenPair{}, WrapError(KindUnknown, "failed to hash refresh token", err)
	}

	now := time.Now()
	rec := model.RefreshTokenRecord{
		UserID:    user.UID,
		TokenHash: hashed,
		CreatedAt: now.Unix(),
		ExpiresIn: int64(refreshTokenTTL / time.Second),
	}
	if err := s.store.SaveRefreshToken(ctx, rec); err != nil {
		return model.User{}, TokenPair{}, FromBackend(err)
	}
	s.log.Info("signed in", zap.String("uid", user.UID))
	return user, TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// SignOut revokes the stored refresh token for the identity.
func (s *AuthService) SignOut(ctx context.Context, uid string) error {
	if err := s.store.DeleteRefreshToken(ctx, uid); err != nil {
		return FromBackend(err)
	}
	s.log.Info("signed out", zap.String("uid", uid))
	return nil
}

// UserByID loads the public profile for an authenticated uid.
func (s *AuthService) UserByID(ctx context.Context, uid string) (model.User, error) {
	user, err := s.store.GetUser(ctx, uid)
	if err != nil {
		return model.User{}, FromBackend(err)
	}
	return user, nil
}

// UpdateDisplayName changes the profile name. Denormalized member snapshots
// in existing projects keep the old name; that drift is accepted.
func (s *AuthService) UpdateDisplayName(ctx context.Context, uid, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return NewError(KindValidation, "name is required")
	}
	if err := s.store.UpdateUserName(ctx, uid, name); err != nil {
		return FromBackend(err)
	}
	return nil
}

func firstLetter(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "U"
}
