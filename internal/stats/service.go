package stats

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/covaciuandrei/gym-attendance-tracker/internal/attendance"
	"github.com/covaciuandrei/gym-attendance-tracker/internal/supplement"
)

const (
	nutrientTopN = 10
	productTopN  = 5
)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

// Service fetches raw records through the repositories and hands them to the
// pure fold functions. It owns no persistence of its own.
type Service struct {
	att   *attendance.Service
	sup   *supplement.Service
	clock Clock
}

func NewService(att *attendance.Service, sup *supplement.Service) *Service {
	return &Service{att: att, sup: sup, clock: realClock{}}
}

func (s *Service) Attendance(ctx context.Context, user string, year int) (AttendanceStats, error) {
	var (
		records []attendance.Record
		types   []attendance.TrainingType
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		records, err = s.att.Year(gctx, user, year)
		return err
	})
	g.Go(func() (err error) {
		types, err = s.att.ListTypes(gctx, user)
		return err
	})
	if err := g.Wait(); err != nil {
		return AttendanceStats{}, err
	}

	out := AttendanceStats{
		Year:        year,
		YearlyCount: len(records),
		ByMonth:     CountByMonth(records),
		ByType:      TypeBreakdown(records, types),
		MonthTypes:  MonthTypeBreakdown(records, types),
	}
	now := s.clock.Now()
	if year == now.Year() {
		prefix := now.Format("2006-01")
		for _, r := range records {
			if attendance.BucketKey(r.Date) == prefix {
				out.MonthlyCount++
			}
		}
	}
	return out, nil
}

// Workouts is the training-type view on its own, for clients that only
// render the breakdown charts.
func (s *Service) Workouts(ctx context.Context, user string, year int) (WorkoutStats, error) {
	var (
		records []attendance.Record
		types   []attendance.TrainingType
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		records, err = s.att.Year(gctx, user, year)
		return err
	})
	g.Go(func() (err error) {
		types, err = s.att.ListTypes(gctx, user)
		return err
	})
	if err := g.Wait(); err != nil {
		return WorkoutStats{}, err
	}
	return WorkoutStats{
		Year:       year,
		ByType:     TypeBreakdown(records, types),
		MonthTypes: MonthTypeBreakdown(records, types),
	}, nil
}

// Duration reports over the whole year, or over a single month when one is
// given; the per-month series always spans the year.
func (s *Service) Duration(ctx context.Context, user string, year int, month *int) (DurationStats, error) {
	var (
		records []attendance.Record
		types   []attendance.TrainingType
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		records, err = s.att.Year(gctx, user, year)
		return err
	})
	g.Go(func() (err error) {
		types, err = s.att.ListTypes(gctx, user)
		return err
	})
	if err := g.Wait(); err != nil {
		return DurationStats{}, err
	}

	scope := records
	if month != nil {
		prefix := attendance.YearMonth(year, *month)
		scope = scope[:0:0]
		for _, r := range records {
			if attendance.BucketKey(r.Date) == prefix {
				scope = append(scope, r)
			}
		}
	}

	return DurationStats{
		Year:    year,
		Month:   month,
		Summary: Duration(scope),
		ByType:  TypeDurationStats(scope, types),
		ByMonth: DurationByMonth(records),
	}, nil
}

func (s *Service) Supplements(ctx context.Context, user string, year int) (SupplementStats, error) {
	var (
		months   [12][]supplement.Log
		products []supplement.Product
		catalog  []supplement.Ingredient
	)
	g, gctx := errgroup.WithContext(ctx)
	for m := 1; m <= 12; m++ {
		m := m
		g.Go(func() (err error) {
			months[m-1], err = s.sup.MonthLogs(gctx, user, year, m)
			return err
		})
	}
	g.Go(func() (err error) {
		products, err = s.sup.Products(gctx)
		return err
	})
	g.Go(func() (err error) {
		catalog, err = s.sup.Ingredients(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return SupplementStats{}, err
	}

	var logs []supplement.Log
	for _, m := range months {
		logs = append(logs, m...)
	}

	now := s.clock.Now()
	return SupplementStats{
		Year:           year,
		ElapsedDays:    ElapsedDays(year, now),
		DistinctDays:   DistinctLoggedDays(logs, year),
		ConsistencyPct: Consistency(logs, year, now),
		Nutrients:      NutrientTotals(logs, products, catalog, nutrientTopN),
		TopProducts:    TopProducts(logs, year, now, productTopN),
	}, nil
}
