package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/storage"
)

type Store struct {
	backend storage.Backend
}

func NewStore(backend storage.Backend) *Store { return &Store{backend: backend} }

func accountPath(email string) storage.Path { return storage.Path{"accounts", email} }
func profilePath(userID string) storage.Path { return storage.Path{"users", userID} }

func (s *Store) GetAccount(ctx context.Context, email string) (*Account, error) {
	doc, err := s.backend.Get(ctx, accountPath(email))
	if err != nil || doc == nil {
		return nil, err
	}
	var a Account
	if err := json.Unmarshal(doc, &a); err != nil {
		return nil, fmt.Errorf("decode account: %w", err)
	}
	return &a, nil
}

func (s *Store) PutAccount(ctx context.Context, a Account) error {
	return s.backend.Set(ctx, accountPath(a.Email), a)
}

func (s *Store) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	doc, err := s.backend.Get(ctx, profilePath(userID))
	if err != nil || doc == nil {
		return nil, err
	}
	var p Profile
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

func (s *Store) PutProfile(ctx context.Context, userID string, p Profile) error {
	return s.backend.Set(ctx, profilePath(userID), p)
}
