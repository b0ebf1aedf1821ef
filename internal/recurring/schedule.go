// Package recurring computes due dates for recurring transactions. The
// external job system owns scheduling and retries; this package only
// answers "given a transaction dated d with interval i, when is it next
// due".
package recurring

import (
	"fmt"
	"time"

	"github.com/dinesh6383/Finance-tracking-App/internal/models"
)

// NextDueDate returns the first occurrence strictly after from for a
// transaction anchored at date with the given interval. Monthly and yearly
// cadences clamp to the last day of shorter months (anchor Jan 31 → Feb 28).
func NextDueDate(date time.Time, interval models.RecurringInterval, from time.Time) (time.Time, error) {
	if !interval.Valid() {
		return time.Time{}, fmt.Errorf("unknown recurring interval: %s", interval)
	}

	next := date
	for !next.After(from) {
		next = advance(next, date, interval)
	}
	return next, nil
}

func advance(current, anchor time.Time, interval models.RecurringInterval) time.Time {
	switch interval {
	case models.IntervalDaily:
		return current.AddDate(0, 0, 1)
	case models.IntervalWeekly:
		return current.AddDate(0, 0, 7)
	case models.IntervalMonthly:
		return addMonthsClamped(current, anchor.Day(), 1)
	case models.IntervalYearly:
		return addYearsClamped(current, anchor.Day())
	}
	return current
}

// addMonthsClamped advances by months keeping the anchor day where the
// target month allows it. time.AddDate alone would normalise Jan 31 + 1
// month into Mar 2/3.
func addMonthsClamped(current time.Time, anchorDay, months int) time.Time {
	year, month, _ := current.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, current.Location())
	day := anchorDay
	if last := lastDayOfMonth(firstOfTarget); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		current.Hour(), current.Minute(), current.Second(), current.Nanosecond(), current.Location())
}

func addYearsClamped(current time.Time, anchorDay int) time.Time {
	year, month, _ := current.Date()
	firstOfTarget := time.Date(year+1, month, 1, 0, 0, 0, 0, current.Location())
	day := anchorDay
	if last := lastDayOfMonth(firstOfTarget); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		current.Hour(), current.Minute(), current.Second(), current.Nanosecond(), current.Location())
}

func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
