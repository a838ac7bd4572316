package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/covaciuandrei/gym-attendance-tracker/internal/supplement"
)

type NutrientTotal struct {
	StdID  string  `json:"stdId"`
	Name   string  `json:"name"`
	Unit   string  `json:"unit"`
	Amount float64 `json:"amount"`
}

type ProductUsage struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand,omitempty"`
	TotalServings float64 `json:"totalServings"`
	AvgPerDay     float64 `json:"avgPerDay"`
}

// NutrientTotals accumulates servings × amount per ingredient stdId, then
// resolves display names through the catalog so storage keys never leak into
// presentation. Totals are linear in servings: two logs of one serving equal
// one log of two. Logs without a positive servings count, and logs whose
// product is gone, contribute nothing.
func NutrientTotals(logs []supplement.Log, products []supplement.Product, catalog []supplement.Ingredient, topN int) []NutrientTotal {
	byID := make(map[string]supplement.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	amounts := make(map[string]float64)
	units := make(map[string]string)
	for _, l := range logs {
		if l.ServingsTaken <= 0 {
			continue
		}
		product, ok := byID[l.ProductID]
		if !ok {
			continue
		}
		for _, line := range product.Ingredients {
			amounts[line.StdID] += l.ServingsTaken * line.Amount
			if _, seen := units[line.StdID]; !seen {
				units[line.StdID] = line.Unit
			}
		}
	}

	names := make(map[string]string, len(catalog))
	for _, ing := range catalog {
		names[ing.ID] = ing.Name
	}

	out := make([]NutrientTotal, 0, len(amounts))
	for stdID, amount := range amounts {
		name := names[stdID]
		if name == "" {
			name = stdID
		}
		out = append(out, NutrientTotal{StdID: stdID, Name: name, Unit: units[stdID], Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Name < out[j].Name
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// ElapsedDays is the stats denominator for a year: day-of-year today for the
// current year, the full year length for past years, and never below 1.
func ElapsedDays(year int, now time.Time) int {
	switch {
	case year == now.Year():
		return max(now.YearDay(), 1)
	case year < now.Year():
		return time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC).YearDay()
	default:
		return 1
	}
}

// DistinctLoggedDays counts the days of the year with at least one log that
// has a positive servings count.
func DistinctLoggedDays(logs []supplement.Log, year int) int {
	prefix := fmt.Sprintf("%04d-", year)
	days := make(map[string]struct{})
	for _, l := range logs {
		if l.ServingsTaken <= 0 || !strings.HasPrefix(l.Date, prefix) {
			continue
		}
		days[l.Date] = struct{}{}
	}
	return len(days)
}

// Consistency is the share of elapsed days with at least one intake,
// as a rounded percentage.
func Consistency(logs []supplement.Log, year int, now time.Time) int {
	elapsed := ElapsedDays(year, now)
	return int(math.Round(100 * float64(DistinctLoggedDays(logs, year)) / float64(elapsed)))
}

// TopProducts ranks products by total servings taken, with a per-day average
// over the same elapsed-days rule as Consistency. Display names come from
// the log snapshots, so the ranking survives product edits and deletions.
func TopProducts(logs []supplement.Log, year int, now time.Time, topN int) []ProductUsage {
	usage := make(map[string]*ProductUsage)
	for _, l := range logs {
		if l.ServingsTaken <= 0 {
			continue
		}
		u, ok := usage[l.ProductID]
		if !ok {
			u = &ProductUsage{ProductID: l.ProductID, Name: "Unknown Product"}
			usage[l.ProductID] = u
		}
		if l.ProductName != nil && *l.ProductName != "" {
			u.Name = *l.ProductName
		}
		if l.ProductBrand != nil && u.Brand == "" {
			u.Brand = *l.ProductBrand
		}
		u.TotalServings += l.ServingsTaken
	}

	elapsed := float64(ElapsedDays(year, now))
	out := make([]ProductUsage, 0, len(usage))
	for _, u := range usage {
		u.AvgPerDay = math.Round(u.TotalServings/elapsed*100) / 100
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalServings != out[j].TotalServings {
			return out[i].TotalServings > out[j].TotalServings
		}
		return out[i].Name < out[j].Name
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
