package attendance

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/storage"
)

type Store struct {
	backend storage.Backend
}

func NewStore(backend storage.Backend) *Store { return &Store{backend: backend} }

func dayPath(user, date string) storage.Path {
	return storage.Path{"users", user, "attendances", BucketKey(date), "days", date}
}

func monthPath(user, yearMonth string) storage.Path {
	return storage.Path{"users", user, "attendances", yearMonth, "days"}
}

func typePath(user, typeID string) storage.Path {
	return storage.Path{"users", user, "trainingTypes", typeID}
}

// Put overwrites the record at its date-derived bucket. Marking the same
// date twice keeps one record with the latest values.
func (s *Store) Put(ctx context.Context, user string, rec Record) error {
	return s.backend.Set(ctx, dayPath(user, rec.Date), rec)
}

// Delete removes the record for a date. Absent records are a no-op.
func (s *Store) Delete(ctx context.Context, user, date string) error {
	return s.backend.Delete(ctx, dayPath(user, date))
}

// Month lists one bucket, sorted by date so that concatenating months is
// fully deterministic. Empty buckets yield an empty slice.
func (s *Store) Month(ctx context.Context, user string, year, month int) ([]Record, error) {
	docs, err := s.backend.List(ctx, monthPath(user, YearMonth(year, month)))
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(docs))
	for id, doc := range docs {
		var rec Record
		if err := json.Unmarshal(doc, &rec); err != nil {
			return nil, fmt.Errorf("decode attendance %s: %w", id, err)
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// Year fans the 12 month reads out concurrently and concatenates them in
// month order. Buckets never overlap, so the result is identical to twelve
// sequential reads; the fan-out only buys latency.
func (s *Store) Year(ctx context.Context, user string, year int) ([]Record, error) {
	var months [12][]Record
	g, gctx := errgroup.WithContext(ctx)
	for m := 1; m <= 12; m++ {
		m := m
		g.Go(func() error {
			recs, err := s.Month(gctx, user, year, m)
			if err != nil {
				return err
			}
			months[m-1] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Record
	for _, recs := range months {
		out = append(out, recs...)
	}
	return out, nil
}

func (s *Store) ListTypes(ctx context.Context, user string) ([]TrainingType, error) {
	docs, err := s.backend.List(ctx, storage.Path{"users", user, "trainingTypes"})
	if err != nil {
		return nil, err
	}
	out := make([]TrainingType, 0, len(docs))
	for id, doc := range docs {
		var t TrainingType
		if err := json.Unmarshal(doc, &t); err != nil {
			return nil, fmt.Errorf("decode training type %s: %w", id, err)
		}
		t.ID = id
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) GetType(ctx context.Context, user, typeID string) (*TrainingType, error) {
	doc, err := s.backend.Get(ctx, typePath(user, typeID))
	if err != nil || doc == nil {
		return nil, err
	}
	var t TrainingType
	if err := json.Unmarshal(doc, &t); err != nil {
		return nil, fmt.Errorf("decode training type %s: %w", typeID, err)
	}
	t.ID = typeID
	return &t, nil
}

func (s *Store) PutType(ctx context.Context, user string, t TrainingType) error {
	return s.backend.Set(ctx, typePath(user, t.ID), t)
}

func (s *Store) DeleteType(ctx context.Context, user, typeID string) error {
	return s.backend.Delete(ctx, typePath(user, typeID))
}

// BackfillDuration rewrites legacy records that predate the duration field
// so they carry an explicit null. One additive pass over the given years.
func (s *Store) BackfillDuration(ctx context.Context, user string, years []int) (migrated, total int, err error) {
	for _, year := range years {
		for m := 1; m <= 12; m++ {
			docs, err := s.backend.List(ctx, monthPath(user, YearMonth(year, m)))
			if err != nil {
				return migrated, total, err
			}
			for id, doc := range docs {
				total++
				var fields map[string]json.RawMessage
				if err := json.Unmarshal(doc, &fields); err != nil {
					continue
				}
				if _, ok := fields["durationMinutes"]; ok {
					continue
				}
				var rec Record
				if err := json.Unmarshal(doc, &rec); err != nil {
					continue
				}
				if rec.Date == "" {
					rec.Date = id
				}
				if err := s.Put(ctx, user, rec); err != nil {
					return migrated, total, err
				}
				migrated++
			}
		}
	}
	return migrated, total, nil
}
