// internal/domain/tariff/formatter.go
package tariff

// FormatMessage renders the user-facing Spanish sentence for a period.
// The message depends on the period alone, so equal periods always
// produce byte-identical text for the dedup comparison downstream.
func FormatMessage(p Period) string {
	switch p {
	case PeriodOffPeak:
		return "Estás en Hora Valle (la más barata)."
	case PeriodMid:
		return "Estás en Hora Llano (precio intermedio)."
	case PeriodPeak:
		return "Estás en Hora Punta (la más cara)."
	default:
		return "Periodo desconocido."
	}
}
