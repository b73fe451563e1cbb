// internal/domain/tariff/classifier.go
package tariff

import (
	"time"

	"tariff_notification_bot/internal/domain/holiday"
)

// Classifier maps a wall-clock timestamp to its tariff period using the
// fixed weekly schedule for the regulated Spanish tariff. Weekends and
// public holidays are billed entirely as off-peak.
type Classifier struct {
	holidayProvider holiday.Provider
}

func NewClassifier(hp holiday.Provider) *Classifier {
	return &Classifier{holidayProvider: hp}
}

// Classify returns the tariff period for the given local time.
// Pure and deterministic given the timestamp and the holiday calendar.
func (c *Classifier) Classify(now time.Time) Period {
	wd := now.Weekday()
	if wd == time.Saturday || wd == time.Sunday || c.holidayProvider.IsHoliday(now) {
		return PeriodOffPeak
	}
	return periodForHour(now.Hour())
}

// periodForHour applies the weekday hour schedule:
// [0,8) off-peak, [8,10)+[14,18)+[22,24) mid, [10,14)+[18,22) peak.
func periodForHour(hour int) Period {
	switch {
	case hour >= 0 && hour < 8:
		return PeriodOffPeak
	case (hour >= 8 && hour < 10) || (hour >= 14 && hour < 18) || (hour >= 22 && hour < 24):
		return PeriodMid
	case (hour >= 10 && hour < 14) || (hour >= 18 && hour < 22):
		return PeriodPeak
	default:
		// Unreachable for a valid 0-23 hour; kept so a bogus value is
		// reported as unknown instead of being silently billed.
		return PeriodUnknown
	}
}
