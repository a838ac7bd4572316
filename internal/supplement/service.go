package supplement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/covaciuandrei/gym-attendance-tracker/internal/idgen"
	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/apperr"
	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/storage"
)

const dateLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

type Service struct {
	store *Store
	clock Clock
	id    idgen.Generator
}

func NewService(backend storage.Backend) *Service {
	return &Service{store: NewStore(backend), clock: realClock{}, id: idgen.ULID{}}
}

// SeedIfEmpty populates the global catalog exactly once. It checks emptiness
// first, so calling it repeatedly is safe.
func (s *Service) SeedIfEmpty(ctx context.Context) (int, error) {
	existing, err := s.store.ListIngredients(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for _, ing := range DefaultIngredients {
		if err := s.store.PutIngredient(ctx, ing); err != nil {
			return 0, err
		}
	}
	return len(DefaultIngredients), nil
}

func (s *Service) Ingredients(ctx context.Context) ([]Ingredient, error) {
	return s.store.ListIngredients(ctx)
}

// SearchIngredients does a case-folded substring match over name, id and
// aliases. The catalog is small and bounded, so filtering client-side beats
// shipping the term to the store.
func (s *Service) SearchIngredients(ctx context.Context, term string) ([]Ingredient, error) {
	all, err := s.store.ListIngredients(ctx)
	if err != nil {
		return nil, err
	}
	needle := fold(term)
	out := make([]Ingredient, 0)
	for _, ing := range all {
		if strings.Contains(fold(ing.Name), needle) || strings.Contains(ing.ID, needle) {
			out = append(out, ing)
			continue
		}
		for _, alias := range ing.Aliases {
			if strings.Contains(fold(alias), needle) {
				out = append(out, ing)
				break
			}
		}
	}
	return out, nil
}

func (s *Service) Products(ctx context.Context) ([]Product, error) {
	return s.store.ListProducts(ctx)
}

func (s *Service) SearchProducts(ctx context.Context, term string) ([]Product, error) {
	all, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	needle := fold(term)
	out := make([]Product, 0)
	for _, p := range all {
		if strings.Contains(fold(p.Name), needle) || strings.Contains(fold(p.Brand), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) Product(ctx context.Context, id string) (*Product, error) {
	p, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("product not found")
	}
	return p, nil
}

func (s *Service) AddProduct(ctx context.Context, user string, in ProductRequest) (Product, error) {
	if user == "" {
		return Product{}, nil
	}
	if err := s.checkProduct(ctx, in); err != nil {
		return Product{}, err
	}
	id, err := s.id.New()
	if err != nil {
		return Product{}, err
	}
	p := Product{
		ID:                    id,
		Name:                  in.Name,
		Brand:                 in.Brand,
		Ingredients:           in.Ingredients,
		ServingsPerDayDefault: defaultServings(in.ServingsPerDayDefault),
		CreatedBy:             user,
		Verified:              false,
	}
	if err := s.store.PutProduct(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, user, id string, in ProductRequest) (Product, error) {
	if user == "" {
		return Product{}, nil
	}
	existing, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if existing == nil {
		return Product{}, apperr.NotFound("product not found")
	}
	if err := s.checkProduct(ctx, in); err != nil {
		return Product{}, err
	}
	existing.Name = in.Name
	existing.Brand = in.Brand
	existing.Ingredients = in.Ingredients
	existing.ServingsPerDayDefault = defaultServings(in.ServingsPerDayDefault)
	if err := s.store.PutProduct(ctx, *existing); err != nil {
		return Product{}, err
	}
	return *existing, nil
}

func (s *Service) DeleteProduct(ctx context.Context, user, id string) error {
	if user == "" {
		return nil
	}
	return s.store.DeleteProduct(ctx, id)
}

// checkProduct rejects bad ingredient lines before anything touches the
// store; in particular every stdId must resolve in the catalog.
func (s *Service) checkProduct(ctx context.Context, in ProductRequest) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperr.Invalid("name is required")
	}
	if len(in.Ingredients) == 0 {
		return apperr.Invalid("at least one ingredient line is required")
	}

	catalog, err := s.store.ListIngredients(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(catalog))
	for _, ing := range catalog {
		known[ing.ID] = struct{}{}
	}

	for _, line := range in.Ingredients {
		if line.Amount < 0 {
			return apperr.Invalid(fmt.Sprintf("ingredient %q: amount must be >= 0", line.StdID))
		}
		if _, ok := known[line.StdID]; !ok {
			return apperr.InvalidReference(fmt.Sprintf("unknown ingredient id %q", line.StdID))
		}
	}
	return nil
}

// LogSupplement creates a fresh entry with the product's name and brand
// frozen in as snapshot fields.
func (s *Service) LogSupplement(ctx context.Context, user string, in LogRequest) (Log, error) {
	if user == "" {
		return Log{}, nil
	}
	if _, err := time.ParseInLocation(dateLayout, in.Date, time.UTC); err != nil {
		return Log{}, apperr.Invalid("date must be YYYY-MM-DD")
	}
	if in.ServingsTaken <= 0 {
		return Log{}, apperr.Invalid("servingsTaken must be > 0")
	}
	product, err := s.store.GetProduct(ctx, in.ProductID)
	if err != nil {
		return Log{}, err
	}
	if product == nil {
		return Log{}, apperr.NotFound("product not found")
	}

	logID, err := s.id.New()
	if err != nil {
		return Log{}, err
	}
	entry := Log{
		Date:          in.Date,
		ProductID:     in.ProductID,
		ProductName:   &product.Name,
		ServingsTaken: in.ServingsTaken,
		Timestamp:     s.clock.Now(),
	}
	if product.Brand != "" {
		entry.ProductBrand = &product.Brand
	}
	if err := s.store.PutLog(ctx, user, logID, entry); err != nil {
		return Log{}, err
	}
	entry.ID = logID
	return entry, nil
}

func (s *Service) MonthLogs(ctx context.Context, user string, year, month int) ([]Log, error) {
	if user == "" {
		return []Log{}, nil
	}
	if month < 1 || month > 12 {
		return nil, apperr.Invalid("month must be 1..12")
	}
	return s.store.MonthLogs(ctx, user, fmt.Sprintf("%04d-%02d", year, month))
}

func (s *Service) RemoveLog(ctx context.Context, user, logID, date string) error {
	if user == "" {
		return nil
	}
	if _, err := time.ParseInLocation(dateLayout, date, time.UTC); err != nil {
		return apperr.Invalid("date must be YYYY-MM-DD")
	}
	return s.store.DeleteLog(ctx, user, logID, date)
}

func defaultServings(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}

// fold lowercases with full Unicode case folding, not just ASCII.
func fold(s string) string {
	return cases.Fold().String(s)
}
