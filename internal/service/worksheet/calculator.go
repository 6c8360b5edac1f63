package worksheet

import (
	"iter"
	"math"

	"github.com/sanketsmane/ems-backend-go/internal/domain/worksheet"
	"github.com/sanketsmane/ems-backend-go/internal/pkg/timecode"
)

// Productivity score weights per task status.
const (
	weightCompleted  = 1.0
	weightInProgress = 0.7
	weightPending    = 0.3
)

// Calculator derives worksheet totals and the productivity score.
// All methods are pure over the record's entries and breaks.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Recompute stamps entry/break durations and rebuilds every derived
// field. It must run as the last step before each persist, and is
// idempotent: a second call with no intervening mutation produces
// identical derived fields.
func (c *Calculator) Recompute(ws worksheet.Worksheet) worksheet.Worksheet {
	for i := range ws.Entries {
		// Inputs are validated before recompute; a parse failure here
		// leaves the duration at zero rather than aborting the save.
		d, err := timecode.Duration(ws.Entries[i].From, ws.Entries[i].To)
		if err != nil {
			d = 0
		}
		ws.Entries[i].Duration = d
		if ws.Entries[i].Status == "" {
			ws.Entries[i].Status = worksheet.StatusPending
		}
	}
	for i := range ws.Breaks {
		d, err := timecode.Duration(ws.Breaks[i].Start, ws.Breaks[i].End)
		if err != nil {
			d = 0
		}
		ws.Breaks[i].Duration = d
	}

	ws.TotalWorkHours, ws.TotalBreakHours, ws.EffectiveWorkHours = c.aggregate(ws.Entries, ws.Breaks)
	ws.TaskSummary = c.summarizeTasks(ws.Entries)
	ws.ProductivityScore = c.score(ws.TaskSummary, ws.TotalWorkHours, ws.EffectiveWorkHours)

	return ws
}

// aggregate folds durations into hour totals. Breaks are subtracted
// from work time whether or not their windows fall inside logged
// entries; no interval-overlap check is performed. Negative durations
// propagate into the sums unchanged.
func (c *Calculator) aggregate(entries []worksheet.Entry, breaks []worksheet.Break) (workHours, breakHours, effectiveHours float64) {
	var workMinutes, breakMinutes int
	for _, e := range entries {
		workMinutes += e.Duration
	}
	for _, b := range breaks {
		breakMinutes += b.Duration
	}

	workHours = float64(workMinutes) / 60.0
	breakHours = float64(breakMinutes) / 60.0

	effectiveHours = workHours - breakHours
	if effectiveHours < 0 {
		effectiveHours = 0
	}

	return workHours, breakHours, effectiveHours
}

func (c *Calculator) summarizeTasks(entries []worksheet.Entry) worksheet.TaskSummary {
	summary := worksheet.TaskSummary{Total: len(entries)}
	for _, e := range entries {
		switch e.Status {
		case worksheet.StatusCompleted:
			summary.Completed++
		case worksheet.StatusInProgress:
			summary.InProgress++
		default:
			summary.Pending++
		}
	}
	return summary
}

// score combines the weighted task-completion ratio with the time
// efficiency ratio multiplicatively: perfect task completion on top
// of inflated break time still scores near zero.
func (c *Calculator) score(summary worksheet.TaskSummary, workHours, effectiveHours float64) int {
	if summary.Total == 0 {
		return 0
	}

	weighted := (float64(summary.Completed)*weightCompleted +
		float64(summary.InProgress)*weightInProgress +
		float64(summary.Pending)*weightPending) / float64(summary.Total)

	timeEfficiency := 0.0
	if workHours > 0 {
		timeEfficiency = min(effectiveHours/workHours, 1)
	}

	return int(math.Round(weighted * timeEfficiency * 100))
}

// HourlySlots yields one-hour Pending placeholder entries spanning the
// integer hour boundaries from the check-in hour up to the check-out
// hour, excluding any final partial hour. Used to pre-populate a blank
// worksheet. The sequence is lazy, finite and restartable; invalid or
// inverted inputs yield nothing.
func (c *Calculator) HourlySlots(checkIn, checkOut string) iter.Seq[worksheet.Entry] {
	return func(yield func(worksheet.Entry) bool) {
		startMins, err := timecode.Parse(checkIn)
		if err != nil {
			return
		}
		endMins, err := timecode.Parse(checkOut)
		if err != nil {
			return
		}

		for hour := startMins / 60; hour < endMins/60; hour++ {
			slot := worksheet.Entry{
				From:     timecode.Format(hour * 60),
				To:       timecode.Format((hour + 1) * 60),
				Status:   worksheet.StatusPending,
				Duration: 60,
			}
			if !yield(slot) {
				return
			}
		}
	}
}
