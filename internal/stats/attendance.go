// Package stats folds raw attendance and supplement records into derived
// statistics. Every function here is a pure transform over already-fetched
// slices: no I/O, and a total order on every ranking so identical inputs
// always produce identical output.
package stats

import (
	"math"
	"sort"

	"github.com/covaciuandrei/gym-attendance-tracker/internal/attendance"
)

type MonthCount struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

type TypeCount struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Icon  *string `json:"icon,omitempty"`
	Count int     `json:"count"`
}

type MonthTypes struct {
	Month int         `json:"month"`
	Types []TypeCount `json:"types"`
}

type DurationSummary struct {
	AvgMinutes     int `json:"avgMinutes"`
	TrackedCount   int `json:"trackedCount"`
	UntrackedCount int `json:"untrackedCount"`
}

type TypeDuration struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Icon       *string `json:"icon,omitempty"`
	Count      int     `json:"count"`
	AvgMinutes int     `json:"avgMinutes"`
}

type MonthDuration struct {
	Month      int `json:"month"`
	AvgMinutes int `json:"avgMinutes"`
}

// CountByMonth buckets records by their calendar month in a single pass and
// emits all twelve months so chart series stay aligned.
func CountByMonth(records []attendance.Record) []MonthCount {
	counts := make(map[int]int)
	for _, r := range records {
		if m, ok := monthOf(r.Date); ok {
			counts[m]++
		}
	}
	out := make([]MonthCount, 0, 12)
	for m := 1; m <= 12; m++ {
		out = append(out, MonthCount{Month: m, Count: counts[m]})
	}
	return out
}

// TypeBreakdown counts records per training type. Types with zero records
// are still listed; the order is count descending, name ascending on ties.
func TypeBreakdown(records []attendance.Record, types []attendance.TrainingType) []TypeCount {
	counts := make(map[string]int)
	for _, r := range records {
		if r.TrainingTypeID != nil && *r.TrainingTypeID != "" {
			counts[*r.TrainingTypeID]++
		}
	}
	out := make([]TypeCount, 0, len(types))
	for _, t := range types {
		out = append(out, TypeCount{ID: t.ID, Name: t.Name, Color: t.Color, Icon: t.Icon, Count: counts[t.ID]})
	}
	sortByCount(out)
	return out
}

// MonthTypeBreakdown builds one mapping keyed by (month, type) and emits per
// month only the types that actually occur, unlike the year-wide breakdown.
func MonthTypeBreakdown(records []attendance.Record, types []attendance.TrainingType) []MonthTypes {
	type key struct {
		month  int
		typeID string
	}
	counts := make(map[key]int)
	for _, r := range records {
		if r.TrainingTypeID == nil || *r.TrainingTypeID == "" {
			continue
		}
		if m, ok := monthOf(r.Date); ok {
			counts[key{m, *r.TrainingTypeID}]++
		}
	}

	out := make([]MonthTypes, 0, 12)
	for m := 1; m <= 12; m++ {
		var active []TypeCount
		for _, t := range types {
			if c := counts[key{m, t.ID}]; c > 0 {
				active = append(active, TypeCount{ID: t.ID, Name: t.Name, Color: t.Color, Icon: t.Icon, Count: c})
			}
		}
		sortByCount(active)
		out = append(out, MonthTypes{Month: m, Types: active})
	}
	return out
}

// Duration averages only over records with a positive duration; the rest are
// reported as untracked and never enter the denominator.
func Duration(records []attendance.Record) DurationSummary {
	var total, tracked int
	for _, r := range records {
		if r.Tracked() {
			total += *r.DurationMinutes
			tracked++
		}
	}
	s := DurationSummary{
		TrackedCount:   tracked,
		UntrackedCount: len(records) - tracked,
	}
	if tracked > 0 {
		s.AvgMinutes = roundDiv(total, tracked)
	}
	return s
}

// TypeDurationStats averages tracked durations per type, dropping types with
// no tracked workouts. Sorted by average descending, name ascending on ties.
func TypeDurationStats(records []attendance.Record, types []attendance.TrainingType) []TypeDuration {
	type acc struct{ total, count int }
	data := make(map[string]acc)
	for _, r := range records {
		if r.TrainingTypeID == nil || *r.TrainingTypeID == "" || !r.Tracked() {
			continue
		}
		a := data[*r.TrainingTypeID]
		a.total += *r.DurationMinutes
		a.count++
		data[*r.TrainingTypeID] = a
	}

	out := make([]TypeDuration, 0, len(data))
	for _, t := range types {
		a, ok := data[t.ID]
		if !ok {
			continue
		}
		out = append(out, TypeDuration{
			ID: t.ID, Name: t.Name, Color: t.Color, Icon: t.Icon,
			Count: a.count, AvgMinutes: roundDiv(a.total, a.count),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgMinutes != out[j].AvgMinutes {
			return out[i].AvgMinutes > out[j].AvgMinutes
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// DurationByMonth averages tracked durations per calendar month.
func DurationByMonth(records []attendance.Record) []MonthDuration {
	type acc struct{ total, count int }
	data := make(map[int]acc)
	for _, r := range records {
		if !r.Tracked() {
			continue
		}
		if m, ok := monthOf(r.Date); ok {
			a := data[m]
			a.total += *r.DurationMinutes
			a.count++
			data[m] = a
		}
	}
	out := make([]MonthDuration, 0, 12)
	for m := 1; m <= 12; m++ {
		md := MonthDuration{Month: m}
		if a, ok := data[m]; ok {
			md.AvgMinutes = roundDiv(a.total, a.count)
		}
		out = append(out, md)
	}
	return out
}

func sortByCount(s []TypeCount) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].Count != s[j].Count {
			return s[i].Count > s[j].Count
		}
		return s[i].Name < s[j].Name
	})
}

// monthOf reads the month out of a YYYY-MM-DD date. Malformed dates are
// dropped from monthly series rather than breaking the fold.
func monthOf(date string) (int, bool) {
	if len(date) < 7 || date[4] != '-' {
		return 0, false
	}
	m := int(date[5]-'0')*10 + int(date[6]-'0')
	if m < 1 || m > 12 {
		return 0, false
	}
	return m, true
}

func roundDiv(total, count int) int {
	return int(math.Round(float64(total) / float64(count)))
}
