package attendance

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Record is one attendance document, at most one per (user, date).
// Optional fields are pointers so that absent values serialize as explicit
// null instead of being omitted; a partial mark can therefore never preserve
// stale hidden state.
type Record struct {
	Date            string    `json:"date"`
	Timestamp       time.Time `json:"timestamp"`
	TrainingTypeID  *string   `json:"trainingTypeId"`
	DurationMinutes *int      `json:"durationMinutes"`
	Notes           *string   `json:"notes"`
}

// Tracked reports whether the record counts toward duration averages.
func (r Record) Tracked() bool {
	return r.DurationMinutes != nil && *r.DurationMinutes > 0
}

// TrainingType is a per-user workout category. The id never changes once
// records reference it; deleting a type does not clean up those references.
type TrainingType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      *string   `json:"icon,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BucketKey derives the year-month partition from a record's own date,
// never from stored state, so bucket and record cannot disagree.
func BucketKey(date string) string {
	if len(date) < len("2006-01") {
		return date
	}
	return date[:len("2006-01")]
}

func YearMonth(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
