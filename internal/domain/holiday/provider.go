package holiday

import "time"

// Provider answers whether a given calendar date is a public holiday.
// This decouples the tariff classification from the concrete calendar source.
type Provider interface {
	IsHoliday(day time.Time) bool
}
