package supplement

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/storage"
)

type Store struct {
	backend storage.Backend
}

func NewStore(backend storage.Backend) *Store { return &Store{backend: backend} }

func ingredientPath(stdID string) storage.Path { return storage.Path{"ingredients", stdID} }
func productPath(id string) storage.Path       { return storage.Path{"supplementProducts", id} }

func logPath(user, yearMonth, logID string) storage.Path {
	return storage.Path{"users", user, "healthLogs", yearMonth, "entries", logID}
}

func logsPath(user, yearMonth string) storage.Path {
	return storage.Path{"users", user, "healthLogs", yearMonth, "entries"}
}

func (s *Store) ListIngredients(ctx context.Context) ([]Ingredient, error) {
	docs, err := s.backend.List(ctx, storage.Path{"ingredients"})
	if err != nil {
		return nil, err
	}
	out := make([]Ingredient, 0, len(docs))
	for id, doc := range docs {
		var ing Ingredient
		if err := json.Unmarshal(doc, &ing); err != nil {
			return nil, fmt.Errorf("decode ingredient %s: %w", id, err)
		}
		out = append(out, ing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) PutIngredient(ctx context.Context, ing Ingredient) error {
	return s.backend.Set(ctx, ingredientPath(ing.ID), ing)
}

func (s *Store) ListProducts(ctx context.Context) ([]Product, error) {
	docs, err := s.backend.List(ctx, storage.Path{"supplementProducts"})
	if err != nil {
		return nil, err
	}
	out := make([]Product, 0, len(docs))
	for id, doc := range docs {
		var p Product
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, fmt.Errorf("decode product %s: %w", id, err)
		}
		p.ID = id
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (*Product, error) {
	doc, err := s.backend.Get(ctx, productPath(id))
	if err != nil || doc == nil {
		return nil, err
	}
	var p Product
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("decode product %s: %w", id, err)
	}
	p.ID = id
	return &p, nil
}

func (s *Store) PutProduct(ctx context.Context, p Product) error {
	return s.backend.Set(ctx, productPath(p.ID), p)
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	return s.backend.Delete(ctx, productPath(id))
}

// PutLog writes one entry under the bucket derived from the log's own date.
// Log ids are generated, never natural keys: same-day same-product entries
// coexist and add up.
func (s *Store) PutLog(ctx context.Context, user, logID string, log Log) error {
	log.ID = "" // the document key carries the id
	return s.backend.Set(ctx, logPath(user, bucketOf(log.Date), logID), log)
}

func (s *Store) MonthLogs(ctx context.Context, user, yearMonth string) ([]Log, error) {
	docs, err := s.backend.List(ctx, logsPath(user, yearMonth))
	if err != nil {
		return nil, err
	}
	out := make([]Log, 0, len(docs))
	for id, doc := range docs {
		var l Log
		if err := json.Unmarshal(doc, &l); err != nil {
			return nil, fmt.Errorf("decode supplement log %s: %w", id, err)
		}
		l.ID = id
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// DeleteLog needs the date to locate the bucket; the id alone is not
// bucket-addressable.
func (s *Store) DeleteLog(ctx context.Context, user, logID, date string) error {
	return s.backend.Delete(ctx, logPath(user, bucketOf(date), logID))
}

func bucketOf(date string) string {
	return date[:len("2006-01")]
}
