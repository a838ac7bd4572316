package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covaciuandrei/gym-attendance-tracker/internal/attendance"
	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/storage"
	"github.com/covaciuandrei/gym-attendance-tracker/internal/supplement"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

func newTestStats(t *testing.T) (*Service, *attendance.Service, *supplement.Service) {
	t.Helper()
	backend, err := storage.OpenLocal(filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	att := attendance.NewService(backend)
	sup := supplement.NewService(backend)
	svc := &Service{att: att, sup: sup, clock: fixedClock{at: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}}
	return svc, att, sup
}

func TestAttendanceStatsEndToEnd(t *testing.T) {
	svc, att, _ := newTestStats(t)
	ctx := context.Background()

	typ, err := att.CreateType(ctx, "u1", attendance.TypeRequest{Name: "Push", Color: "#fff"})
	require.NoError(t, err)

	for _, d := range []string{"2025-01-10", "2025-06-01", "2025-06-12"} {
		_, err := att.Mark(ctx, "u1", d, attendance.MarkRequest{TrainingTypeID: &typ.ID})
		require.NoError(t, err)
	}

	out, err := svc.Attendance(ctx, "u1", 2025)
	require.NoError(t, err)
	assert.Equal(t, 2025, out.Year)
	assert.Equal(t, 3, out.YearlyCount)
	assert.Equal(t, 2, out.MonthlyCount, "June is the clock's current month")
	require.Len(t, out.ByMonth, 12)
	assert.Equal(t, 1, out.ByMonth[0].Count)
	assert.Equal(t, 2, out.ByMonth[5].Count)
	require.Len(t, out.ByType, 1)
	assert.Equal(t, 3, out.ByType[0].Count)
}

func TestWorkoutStats(t *testing.T) {
	svc, att, _ := newTestStats(t)
	ctx := context.Background()

	typ, err := att.CreateType(ctx, "u1", attendance.TypeRequest{Name: "Push", Color: "#fff"})
	require.NoError(t, err)
	_, err = att.Mark(ctx, "u1", "2025-06-01", attendance.MarkRequest{TrainingTypeID: &typ.ID})
	require.NoError(t, err)

	out, err := svc.Workouts(ctx, "u1", 2025)
	require.NoError(t, err)
	require.Len(t, out.ByType, 1)
	assert.Equal(t, 1, out.ByType[0].Count)
	require.Len(t, out.MonthTypes, 12)
	assert.Len(t, out.MonthTypes[5].Types, 1)
}

func TestAttendanceStatsPastYearHasNoMonthlyCount(t *testing.T) {
	svc, att, _ := newTestStats(t)
	ctx := context.Background()

	_, err := att.Mark(ctx, "u1", "2024-06-10", attendance.MarkRequest{})
	require.NoError(t, err)

	out, err := svc.Attendance(ctx, "u1", 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, out.YearlyCount)
	assert.Zero(t, out.MonthlyCount)
}

func TestDurationStatsMonthScope(t *testing.T) {
	svc, att, _ := newTestStats(t)
	ctx := context.Background()

	for date, d := range map[string]int{
		"2025-03-01": 30,
		"2025-03-15": 50,
		"2025-07-01": 90,
	} {
		dur := d
		_, err := att.Mark(ctx, "u1", date, attendance.MarkRequest{DurationMinutes: &dur})
		require.NoError(t, err)
	}

	year, err := svc.Duration(ctx, "u1", 2025, nil)
	require.NoError(t, err)
	assert.Equal(t, 57, year.Summary.AvgMinutes, "(30+50+90)/3 rounds to 57")
	assert.Equal(t, 3, year.Summary.TrackedCount)

	march := 3
	scoped, err := svc.Duration(ctx, "u1", 2025, &march)
	require.NoError(t, err)
	assert.Equal(t, 40, scoped.Summary.AvgMinutes)
	assert.Equal(t, 2, scoped.Summary.TrackedCount)
	require.Len(t, scoped.ByMonth, 12, "the per-month series always spans the year")
	assert.Equal(t, 90, scoped.ByMonth[6].AvgMinutes)
}

func TestSupplementStatsEndToEnd(t *testing.T) {
	svc, _, sup := newTestStats(t)
	ctx := context.Background()

	_, err := sup.SeedIfEmpty(ctx)
	require.NoError(t, err)

	p, err := sup.AddProduct(ctx, "u1", supplement.ProductRequest{
		Name:        "Daily D3",
		Ingredients: []supplement.IngredientLine{{StdID: "vitamin_d3", Name: "Vitamin D3", Amount: 1000, Unit: "IU"}},
	})
	require.NoError(t, err)

	for _, d := range []string{"2025-01-01", "2025-01-02", "2025-02-10"} {
		_, err := sup.LogSupplement(ctx, "u1", supplement.LogRequest{Date: d, ProductID: p.ID, ServingsTaken: 1})
		require.NoError(t, err)
	}

	out, err := svc.Supplements(ctx, "u1", 2025)
	require.NoError(t, err)
	assert.Equal(t, 2025, out.Year)
	assert.Equal(t, 166, out.ElapsedDays, "June 15 is day 166 of 2025")
	assert.Equal(t, 3, out.DistinctDays)
	assert.Equal(t, 2, out.ConsistencyPct)
	require.Len(t, out.Nutrients, 1)
	assert.Equal(t, 3000.0, out.Nutrients[0].Amount)
	assert.Equal(t, "Vitamin D3", out.Nutrients[0].Name)
	require.Len(t, out.TopProducts, 1)
	assert.Equal(t, 3.0, out.TopProducts[0].TotalServings)
}

func TestStatsSignedOutAreEmpty(t *testing.T) {
	svc, _, _ := newTestStats(t)
	ctx := context.Background()

	att, err := svc.Attendance(ctx, "", 2025)
	require.NoError(t, err)
	assert.Zero(t, att.YearlyCount)

	sup, err := svc.Supplements(ctx, "", 2025)
	require.NoError(t, err)
	assert.Zero(t, sup.DistinctDays)
}
