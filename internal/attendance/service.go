package attendance

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/covaciuandrei/gym-attendance-tracker/internal/idgen"
	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/apperr"
	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/storage"
)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

// Service validates input and applies the signed-out rule: an empty user id
// turns every operation into a no-op with empty results.
type Service struct {
	store *Store
	clock Clock
	id    idgen.Generator
}

func NewService(backend storage.Backend) *Service {
	return &Service{store: NewStore(backend), clock: realClock{}, id: idgen.ULID{}}
}

// Mark upserts the record for one date. Optional fields left out of the
// request are written as explicit nulls.
func (s *Service) Mark(ctx context.Context, user, date string, in MarkRequest) (Record, error) {
	if user == "" {
		return Record{}, nil
	}
	if err := validDate(date); err != nil {
		return Record{}, err
	}
	if in.DurationMinutes != nil && *in.DurationMinutes < 0 {
		return Record{}, apperr.Invalid("durationMinutes must be >= 0")
	}

	rec := Record{
		Date:            date,
		Timestamp:       s.clock.Now(),
		TrainingTypeID:  emptyToNil(in.TrainingTypeID),
		DurationMinutes: in.DurationMinutes,
		Notes:           emptyToNil(in.Notes),
	}
	if err := s.store.Put(ctx, user, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) Remove(ctx context.Context, user, date string) error {
	if user == "" {
		return nil
	}
	if err := validDate(date); err != nil {
		return err
	}
	return s.store.Delete(ctx, user, date)
}

// Toggle reads the containing month, checks membership and marks or removes
// accordingly. Read-then-write with no isolation: concurrent toggles on the
// same date resolve last-write-wins.
func (s *Service) Toggle(ctx context.Context, user, date string) (bool, error) {
	if user == "" {
		return false, nil
	}
	if err := validDate(date); err != nil {
		return false, err
	}

	year, month, _ := splitDate(date)
	records, err := s.store.Month(ctx, user, year, month)
	if err != nil {
		return false, err
	}
	for _, r := range records {
		if r.Date == date {
			if err := s.store.Delete(ctx, user, date); err != nil {
				return true, err
			}
			return false, nil
		}
	}
	if _, err := s.Mark(ctx, user, date, MarkRequest{}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) Month(ctx context.Context, user string, year, month int) ([]Record, error) {
	if user == "" {
		return []Record{}, nil
	}
	if month < 1 || month > 12 {
		return nil, apperr.Invalid("month must be 1..12")
	}
	return s.store.Month(ctx, user, year, month)
}

func (s *Service) Year(ctx context.Context, user string, year int) ([]Record, error) {
	if user == "" {
		return []Record{}, nil
	}
	return s.store.Year(ctx, user, year)
}

func (s *Service) ListTypes(ctx context.Context, user string) ([]TrainingType, error) {
	if user == "" {
		return []TrainingType{}, nil
	}
	return s.store.ListTypes(ctx, user)
}

func (s *Service) CreateType(ctx context.Context, user string, in TypeRequest) (TrainingType, error) {
	if user == "" {
		return TrainingType{}, nil
	}
	if strings.TrimSpace(in.Name) == "" {
		return TrainingType{}, apperr.Invalid("name is required")
	}
	id, err := s.id.New()
	if err != nil {
		return TrainingType{}, err
	}
	t := TrainingType{
		ID:        id,
		Name:      in.Name,
		Color:     in.Color,
		Icon:      emptyToNil(in.Icon),
		CreatedAt: s.clock.Now(),
	}
	if err := s.store.PutType(ctx, user, t); err != nil {
		return TrainingType{}, err
	}
	return t, nil
}

func (s *Service) UpdateType(ctx context.Context, user, typeID string, in TypeRequest) (TrainingType, error) {
	if user == "" {
		return TrainingType{}, nil
	}
	existing, err := s.store.GetType(ctx, user, typeID)
	if err != nil {
		return TrainingType{}, err
	}
	if existing == nil {
		return TrainingType{}, apperr.NotFound("training type not found")
	}
	existing.Name = in.Name
	existing.Color = in.Color
	existing.Icon = emptyToNil(in.Icon)
	if err := s.store.PutType(ctx, user, *existing); err != nil {
		return TrainingType{}, err
	}
	return *existing, nil
}

// DeleteType removes the definition only. Records referencing the type keep
// their trainingTypeId.
func (s *Service) DeleteType(ctx context.Context, user, typeID string) error {
	if user == "" {
		return nil
	}
	return s.store.DeleteType(ctx, user, typeID)
}

// BackfillDuration covers the current year and the two before it, matching
// how far back legacy records exist.
func (s *Service) BackfillDuration(ctx context.Context, user string) (BackfillResponse, error) {
	if user == "" {
		return BackfillResponse{}, nil
	}
	y := s.clock.Now().Year()
	migrated, total, err := s.store.BackfillDuration(ctx, user, []int{y - 2, y - 1, y})
	if err != nil {
		return BackfillResponse{}, err
	}
	return BackfillResponse{Migrated: migrated, Total: total}, nil
}

func validDate(date string) error {
	if _, err := time.ParseInLocation(DateLayout, date, time.UTC); err != nil {
		return apperr.Invalid("date must be YYYY-MM-DD")
	}
	return nil
}

func splitDate(date string) (year, month, day int) {
	year, _ = strconv.Atoi(date[:4])
	month, _ = strconv.Atoi(date[5:7])
	day, _ = strconv.Atoi(date[8:10])
	return year, month, day
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
