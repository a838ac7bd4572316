package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/covaciuandrei/gym-attendance-tracker/internal/idgen"
	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/apperr"
	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/storage"
)

type Service struct {
	store    *Store
	secret   []byte
	tokenTTL time.Duration
	id       idgen.Generator
	now      func() time.Time
}

func NewService(backend storage.Backend, secret []byte, tokenTTL time.Duration) *Service {
	return &Service{
		store:    NewStore(backend),
		secret:   secret,
		tokenTTL: tokenTTL,
		id:       idgen.ULID{},
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Register creates the account and its profile document in one go.
func (s *Service) Register(ctx context.Context, email, password string, displayName *string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", apperr.Invalid("a valid email is required")
	}
	if len(password) < 8 {
		return "", apperr.Invalid("password must be at least 8 characters")
	}

	existing, err := s.store.GetAccount(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", apperr.Conflict("account already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	userID, err := s.id.New()
	if err != nil {
		return "", err
	}

	now := s.now()
	if err := s.store.PutAccount(ctx, Account{
		UserID:       userID,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}); err != nil {
		return "", err
	}
	if err := s.store.PutProfile(ctx, userID, Profile{
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   now,
	}); err != nil {
		return "", err
	}
	return userID, nil
}

// Login verifies the password, stamps lastLoginAt and issues an HS256 token
// with the user id as subject.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	acct, err := s.store.GetAccount(ctx, email)
	if err != nil {
		return "", err
	}
	if acct == nil {
		return "", apperr.Unauthenticated("authentication failed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return "", apperr.Unauthenticated("authentication failed")
	}

	if profile, err := s.store.GetProfile(ctx, acct.UserID); err == nil && profile != nil {
		t := s.now()
		profile.LastLoginAt = &t
		_ = s.store.PutProfile(ctx, acct.UserID, *profile)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": acct.UserID,
		"exp": s.now().Add(s.tokenTTL).Unix(),
	})
	return token.SignedString(s.secret)
}

func (s *Service) Profile(ctx context.Context, userID string) (*Profile, error) {
	if userID == "" {
		return nil, apperr.Unauthenticated("not signed in")
	}
	p, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("profile not found")
	}
	return p, nil
}

func (s *Service) SetTheme(ctx context.Context, userID, theme string) error {
	if userID == "" {
		return apperr.Unauthenticated("not signed in")
	}
	if theme != "light" && theme != "dark" {
		return apperr.Invalid("theme must be light or dark")
	}
	p, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.NotFound("profile not found")
	}
	p.Theme = theme
	return s.store.PutProfile(ctx, userID, *p)
}
