package stats

type AttendanceStats struct {
	Year         int          `json:"year"`
	YearlyCount  int          `json:"yearlyCount"`
	MonthlyCount int          `json:"monthlyCount"`
	ByMonth      []MonthCount `json:"byMonth"`
	ByType       []TypeCount  `json:"byType"`
	MonthTypes   []MonthTypes `json:"monthTypes"`
}

type WorkoutStats struct {
	Year       int          `json:"year"`
	ByType     []TypeCount  `json:"byType"`
	MonthTypes []MonthTypes `json:"monthTypes"`
}

type DurationStats struct {
	Year    int             `json:"year"`
	Month   *int            `json:"month,omitempty"`
	Summary DurationSummary `json:"summary"`
	ByType  []TypeDuration  `json:"byType"`
	ByMonth []MonthDuration `json:"byMonth"`
}

type SupplementStats struct {
	Year           int             `json:"year"`
	ElapsedDays    int             `json:"elapsedDays"`
	DistinctDays   int             `json:"distinctDays"`
	ConsistencyPct int             `json:"consistencyPct"`
	Nutrients      []NutrientTotal `json:"nutrients"`
	TopProducts    []ProductUsage  `json:"topProducts"`
}
