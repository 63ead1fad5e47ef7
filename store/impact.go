package store

import (
	"github.com/shopspring/decimal"

	"roadwatch/report"
)

// Impact weights per report kind. Quick reports additionally earn a severity
// bonus, so a severity-5 pothole outweighs a routine perception entry.
var (
	weightSafetyPerception = decimal.RequireFromString("1")
	weightQuick            = decimal.RequireFromString("1.5")
	weightIncident         = decimal.RequireFromString("2")
	weightAudit            = decimal.RequireFromString("2.5")
	severityBonus          = decimal.RequireFromString("0.25")
)

// ReportImpact scores a single report envelope.
func ReportImpact(e report.Envelope) decimal.Decimal {
	switch e.ReportType {
	case report.KindSafetyPerception:
		return weightSafetyPerception
	case report.KindQuick:
		bonus := severityBonus.Mul(decimal.NewFromInt(int64(e.SeverityLevel - report.SeverityMin)))
		return weightQuick.Add(bonus)
	case report.KindIncident:
		return weightIncident
	case report.KindAudit:
		return weightAudit
	}
	return decimal.Zero
}

// Impact totals the scores of every stored report.
func (s *Store) Impact() decimal.Decimal {
	total := decimal.Zero
	for _, r := range s.All() {
		total = total.Add(ReportImpact(r.Report))
	}
	return total
}
