package holiday

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/es"
	"github.com/sirupsen/logrus"
)

// Years outside this range have not been validated against the official
// BOE calendar; queries there fall back to "not a holiday".
const (
	minSupportedYear = 2000
	maxSupportedYear = 2100
)

// SpainCalendar answers holiday queries against the Spanish national
// public holidays (fixed and movable, computed per year). It is immutable
// after construction and never touches the network.
type SpainCalendar struct {
	calendar *cal.BusinessCalendar
	logger   *logrus.Logger
}

func NewSpainCalendar(logger *logrus.Logger) *SpainCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(es.Holidays...)
	return &SpainCalendar{calendar: c, logger: logger}
}

// IsHoliday reports whether the given date is a Spanish national holiday.
// Unanswerable dates count as working days: misclassifying a holiday as a
// regular weekday is preferable to aborting the run.
func (s *SpainCalendar) IsHoliday(day time.Time) bool {
	if year := day.Year(); year < minSupportedYear || year > maxSupportedYear {
		s.logger.Warnf("No holiday data for year %d, treating %s as a non-holiday", year, day.Format("2006-01-02"))
		return false
	}
	actual, observed, _ := s.calendar.IsHoliday(day)
	return actual || observed
}
