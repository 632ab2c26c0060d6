package analyzer

import (
	"fmt"
	"io"
	"os"

	internalerrors "github.com/olegiv/weblog-analyzer-go/internal/errors"
	"github.com/olegiv/weblog-analyzer-go/internal/logentry"
)

// Table sizes and the offset between slot index and calendar value.
const (
	hoursPerDay   = 24
	daysPerMonth  = logentry.MaxDay
	monthsPerYear = logentry.MaxMonth
	hourOffset    = logentry.MinHour
	dayOffset     = logentry.MinDay
	monthOffset   = logentry.MinMonth
	hourlyHeader  = "Hr: Count"
	dailyHeader   = "Day: Count"
	monthlyHeader = "Month: Count"
)

// Analyzer runs aggregation passes over a Source and answers queries
// against the resulting frequency tables.
//
// Tables are never cleared between passes: running the same analyze
// method twice adds every entry twice. Queries made before the matching
// analyze pass see all-zero tables.
type Analyzer struct {
	source Source
	out    io.Writer

	hourCounts  FrequencyTable
	dayCounts   FrequencyTable
	monthCounts FrequencyTable
}

// New creates an analyzer over source. Print methods write to out, or to
// os.Stdout when out is nil. The analyzer takes ownership of source.
func New(source Source, out io.Writer) *Analyzer {
	if out == nil {
		out = os.Stdout
	}
	return &Analyzer{
		source:      source,
		out:         out,
		hourCounts:  NewFrequencyTable(hoursPerDay),
		dayCounts:   NewFrequencyTable(daysPerMonth),
		monthCounts: NewFrequencyTable(monthsPerYear),
	}
}

// Close releases the underlying source if it holds resources.
func (a *Analyzer) Close() error {
	if c, ok := a.source.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// AnalyzeHourlyData counts every entry by hour of day.
func (a *Analyzer) AnalyzeHourlyData() error {
	return a.analyze(a.hourCounts, func(e logentry.Entry) int { return e.Hour() - hourOffset })
}

// AnalyzeDailyData counts every entry by day of month.
func (a *Analyzer) AnalyzeDailyData() error {
	return a.analyze(a.dayCounts, func(e logentry.Entry) int { return e.Day() - dayOffset })
}

// AnalyzeMonthlyData counts every entry by month of year.
func (a *Analyzer) AnalyzeMonthlyData() error {
	return a.analyze(a.monthCounts, func(e logentry.Entry) int { return e.Month() - monthOffset })
}

// Analyze runs the hourly, daily and monthly passes in that order.
func (a *Analyzer) Analyze() error {
	passes := []struct {
		name string
		run  func() error
	}{
		{"hourly", a.AnalyzeHourlyData},
		{"daily", a.AnalyzeDailyData},
		{"monthly", a.AnalyzeMonthlyData},
	}
	for _, p := range passes {
		if err := p.run(); err != nil {
			return fmt.Errorf("%s analysis failed: %w", p.name, err)
		}
	}
	return nil
}

// analyze consumes the whole source into a scratch table and merges it into
// table only when the pass completes. The source is reset either way.
func (a *Analyzer) analyze(table FrequencyTable, slot func(logentry.Entry) int) (err error) {
	defer func() {
		if resetErr := a.source.Reset(); resetErr != nil && err == nil {
			err = fmt.Errorf("failed to reset log source: %w", resetErr)
		}
	}()

	pass := NewFrequencyTable(len(table))
	for a.source.HasNext() {
		entry, nextErr := a.source.Next()
		if nextErr != nil {
			return nextErr
		}
		pass.Inc(slot(entry))
	}

	table.Add(pass)
	return nil
}

// NumberOfAccesses returns the total of the hourly table.
func (a *Analyzer) NumberOfAccesses() int {
	return a.hourCounts.Sum()
}

// BusiestHour returns the hour (0-23) with the most accesses.
func (a *Analyzer) BusiestHour() int {
	return a.hourCounts.MaxIndex() + hourOffset
}

// QuietestHour returns the hour (0-23) with the fewest accesses.
func (a *Analyzer) QuietestHour() int {
	return a.hourCounts.MinIndex() + hourOffset
}

// BusiestTwoHour returns the first hour of the busiest two-hour window.
func (a *Analyzer) BusiestTwoHour() int {
	return a.hourCounts.MaxPairIndex() + hourOffset
}

// BusiestDay returns the day (1-28) with the most accesses.
func (a *Analyzer) BusiestDay() int {
	return a.dayCounts.MaxIndex() + dayOffset
}

// QuietestDay returns the day (1-28) with the fewest accesses.
func (a *Analyzer) QuietestDay() int {
	return a.dayCounts.MinIndex() + dayOffset
}

// BusiestMonth returns the month (1-12) with the most accesses.
func (a *Analyzer) BusiestMonth() int {
	return a.monthCounts.MaxIndex() + monthOffset
}

// QuietestMonth returns the month (1-12) with the fewest accesses.
func (a *Analyzer) QuietestMonth() int {
	return a.monthCounts.MinIndex() + monthOffset
}

// TotalAccessesPerMonth returns the count recorded for month (1-12).
func (a *Analyzer) TotalAccessesPerMonth(month int) (int, error) {
	if err := internalerrors.CheckRange("month", month, logentry.MinMonth, logentry.MaxMonth); err != nil {
		return 0, err
	}
	return a.monthCounts[month-monthOffset], nil
}

// TotalAccessesPerDay returns the count recorded for day (1-28).
func (a *Analyzer) TotalAccessesPerDay(day int) (int, error) {
	if err := internalerrors.CheckRange("day", day, logentry.MinDay, logentry.MaxDay); err != nil {
		return 0, err
	}
	return a.dayCounts[day-dayOffset], nil
}

// AverageAccessesPerMonth returns the month table total divided by 12,
// truncated toward zero.
func (a *Analyzer) AverageAccessesPerMonth() int {
	return a.monthCounts.Sum() / monthsPerYear
}

// HourlyCounts returns a copy of the hourly table, index = hour.
func (a *Analyzer) HourlyCounts() []int { return a.hourCounts.Clone() }

// DailyCounts returns a copy of the daily table, index = day-1.
func (a *Analyzer) DailyCounts() []int { return a.dayCounts.Clone() }

// MonthlyCounts returns a copy of the monthly table, index = month-1.
func (a *Analyzer) MonthlyCounts() []int { return a.monthCounts.Clone() }

// PrintHourlyCounts lists the hourly table under "Hr: Count".
func (a *Analyzer) PrintHourlyCounts() error {
	return a.hourCounts.Print(a.out, hourlyHeader, hourOffset)
}

// PrintDailyCounts lists the daily table under "Day: Count".
func (a *Analyzer) PrintDailyCounts() error {
	return a.dayCounts.Print(a.out, dailyHeader, dayOffset)
}

// PrintMonthlyCounts lists the monthly table under "Month: Count".
func (a *Analyzer) PrintMonthlyCounts() error {
	return a.monthCounts.Print(a.out, monthlyHeader, monthOffset)
}

// PrintData dumps the raw log lines.
func (a *Analyzer) PrintData() error {
	return a.source.PrintData(a.out)
}
