// internal/domain/tariff/period.go
package tariff

// Period identifies one of the Spanish electricity tariff periods.
type Period string

const (
	PeriodOffPeak Period = "OFF_PEAK" // "Hora Valle", cheapest
	PeriodMid     Period = "MID"      // "Hora Llano", intermediate
	PeriodPeak    Period = "PEAK"     // "Hora Punta", most expensive
	PeriodUnknown Period = "UNKNOWN"  // defensive fallback, should not occur for valid hours
)
