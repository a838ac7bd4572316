package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covaciuandrei/gym-attendance-tracker/internal/supplement"
)

func logEntry(date, productID string, servings float64) supplement.Log {
	return supplement.Log{Date: date, ProductID: productID, ServingsTaken: servings}
}

func strp(s string) *string { return &s }

func TestNutrientTotalsAreLinearInServings(t *testing.T) {
	products := []supplement.Product{{
		ID: "p1",
		Ingredients: []supplement.IngredientLine{
			{StdID: "vitamin_d3", Name: "Vitamin D3", Amount: 1000, Unit: "IU"},
			{StdID: "zinc", Name: "Zinc", Amount: 15, Unit: "mg"},
		},
	}}
	catalog := []supplement.Ingredient{
		{ID: "vitamin_d3", Name: "Vitamin D3"},
		{ID: "zinc", Name: "Zinc"},
	}

	twoSingles := []supplement.Log{
		logEntry("2025-01-01", "p1", 1),
		logEntry("2025-01-02", "p1", 1),
	}
	oneDouble := []supplement.Log{
		logEntry("2025-01-01", "p1", 2),
	}

	a := NutrientTotals(twoSingles, products, catalog, 0)
	b := NutrientTotals(oneDouble, products, catalog, 0)
	assert.Equal(t, a, b, "two logs of one serving equal one log of two")

	require.Len(t, a, 2)
	assert.Equal(t, "Vitamin D3", a[0].Name)
	assert.Equal(t, 2000.0, a[0].Amount)
	assert.Equal(t, "IU", a[0].Unit)
	assert.Equal(t, 30.0, a[1].Amount)
}

func TestNutrientTotalsSkipsDeadAndZeroLogs(t *testing.T) {
	products := []supplement.Product{{
		ID:          "p1",
		Ingredients: []supplement.IngredientLine{{StdID: "zinc", Amount: 15, Unit: "mg"}},
	}}
	logs := []supplement.Log{
		logEntry("2025-01-01", "p1", 0),       // non-positive servings
		logEntry("2025-01-02", "deleted", 1),  // product gone
		logEntry("2025-01-03", "p1", 1),
	}
	out := NutrientTotals(logs, products, nil, 0)
	require.Len(t, out, 1)
	assert.Equal(t, 15.0, out[0].Amount)
	assert.Equal(t, "zinc", out[0].Name, "unknown in the catalog falls back to the id")
}

func TestNutrientTotalsTopN(t *testing.T) {
	products := []supplement.Product{{
		ID: "p1",
		Ingredients: []supplement.IngredientLine{
			{StdID: "a", Amount: 3, Unit: "mg"},
			{StdID: "b", Amount: 2, Unit: "mg"},
			{StdID: "c", Amount: 1, Unit: "mg"},
		},
	}}
	logs := []supplement.Log{logEntry("2025-01-01", "p1", 1)}
	out := NutrientTotals(logs, products, nil, 2)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].StdID)
	assert.Equal(t, "b", out[1].StdID)
}

func TestElapsedDays(t *testing.T) {
	now := time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, 100, ElapsedDays(2025, now), "day of year for the current year")
	assert.Equal(t, 366, ElapsedDays(2024, now), "leap year length for past years")
	assert.Equal(t, 365, ElapsedDays(2023, now))
	assert.Equal(t, 1, ElapsedDays(2026, now), "future years never divide by zero")
}

func TestDistinctLoggedDays(t *testing.T) {
	logs := []supplement.Log{
		logEntry("2025-01-01", "p1", 1),
		logEntry("2025-01-01", "p2", 1), // same day, counted once
		logEntry("2025-01-02", "p1", 1),
		logEntry("2025-01-03", "p1", 0), // zero servings, ignored
		logEntry("2024-12-31", "p1", 1), // other year, ignored
	}
	assert.Equal(t, 2, DistinctLoggedDays(logs, 2025))
}

func TestConsistency(t *testing.T) {
	now := time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC) // day 100
	logs := make([]supplement.Log, 0, 10)
	for d := 1; d <= 10; d++ {
		logs = append(logs, logEntry(time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), "p1", 1))
	}
	assert.Equal(t, 10, Consistency(logs, 2025, now), "10 distinct days over 100 elapsed is 10 percent")
	assert.Equal(t, 0, Consistency(nil, 2025, now))
}

func TestTopProducts(t *testing.T) {
	now := time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC) // day 100
	logs := []supplement.Log{
		{Date: "2025-01-01", ProductID: "p1", ProductName: strp("Daily D3"), ProductBrand: strp("Acme"), ServingsTaken: 2},
		{Date: "2025-01-02", ProductID: "p1", ProductName: strp("Daily D3"), ServingsTaken: 3},
		{Date: "2025-01-03", ProductID: "p2", ServingsTaken: 4},
	}
	out := TopProducts(logs, 2025, now, 5)
	require.Len(t, out, 2)

	assert.Equal(t, "Daily D3", out[0].Name, "names come from log snapshots")
	assert.Equal(t, "Acme", out[0].Brand)
	assert.Equal(t, 5.0, out[0].TotalServings)
	assert.Equal(t, 0.05, out[0].AvgPerDay)

	assert.Equal(t, "Unknown Product", out[1].Name, "logs without a snapshot get a placeholder")
	assert.Equal(t, 4.0, out[1].TotalServings)
}

func TestTopProductsTopNAndTies(t *testing.T) {
	now := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	logs := []supplement.Log{
		{Date: "2025-01-01", ProductID: "p1", ProductName: strp("Beta"), ServingsTaken: 1},
		{Date: "2025-01-01", ProductID: "p2", ProductName: strp("Alpha"), ServingsTaken: 1},
		{Date: "2025-01-01", ProductID: "p3", ProductName: strp("Gamma"), ServingsTaken: 9},
	}
	out := TopProducts(logs, 2025, now, 2)
	require.Len(t, out, 2)
	assert.Equal(t, "Gamma", out[0].Name)
	assert.Equal(t, "Alpha", out[1].Name, "equal totals order by name")
}
