package analyzer

import (
	"fmt"
	"io"
)

// Summary collects the headline figures of an analysis.
// It is meaningful after Analyze (or all three analyze passes) has run.
type Summary struct {
	TotalAccesses           int   `json:"total_accesses"`
	BusiestHour             int   `json:"busiest_hour"`
	QuietestHour            int   `json:"quietest_hour"`
	BusiestTwoHour          int   `json:"busiest_two_hour_start"`
	BusiestDay              int   `json:"busiest_day"`
	QuietestDay             int   `json:"quietest_day"`
	BusiestMonth            int   `json:"busiest_month"`
	QuietestMonth           int   `json:"quietest_month"`
	AverageAccessesPerMonth int   `json:"average_accesses_per_month"`
	MonthlyTotals           []int `json:"monthly_totals"`
}

// Summarize builds a Summary from the current tables.
func (a *Analyzer) Summarize() Summary {
	return Summary{
		TotalAccesses:           a.NumberOfAccesses(),
		BusiestHour:             a.BusiestHour(),
		QuietestHour:            a.QuietestHour(),
		BusiestTwoHour:          a.BusiestTwoHour(),
		BusiestDay:              a.BusiestDay(),
		QuietestDay:             a.QuietestDay(),
		BusiestMonth:            a.BusiestMonth(),
		QuietestMonth:           a.QuietestMonth(),
		AverageAccessesPerMonth: a.AverageAccessesPerMonth(),
		MonthlyTotals:           a.MonthlyCounts(),
	}
}

// WriteText renders the summary as aligned human-readable lines.
func (s Summary) WriteText(w io.Writer) error {
	lines := []struct {
		label string
		value string
	}{
		{"Total accesses", fmt.Sprintf("%d", s.TotalAccesses)},
		{"Busiest hour", fmt.Sprintf("%02d:00", s.BusiestHour)},
		{"Quietest hour", fmt.Sprintf("%02d:00", s.QuietestHour)},
		{"Busiest two hours", fmt.Sprintf("%02d:00-%02d:59", s.BusiestTwoHour, s.BusiestTwoHour+1)},
		{"Busiest day", fmt.Sprintf("%d", s.BusiestDay)},
		{"Quietest day", fmt.Sprintf("%d", s.QuietestDay)},
		{"Busiest month", fmt.Sprintf("%d", s.BusiestMonth)},
		{"Quietest month", fmt.Sprintf("%d", s.QuietestMonth)},
		{"Average per month", fmt.Sprintf("%d", s.AverageAccessesPerMonth)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%-18s %s\n", l.label+":", l.value); err != nil {
			return err
		}
	}
	return nil
}
