package services

import (
	"fmt"
	"math"
)

const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Penalty weights and caps. The score is a transparent linear-penalty model;
// every term stays independently auditable, so keep these as named constants.
const (
	penaltyPerReport             = 5
	totalReportsCap              = 70
	penaltyPerReport30d          = 3
	reports30dCap                = 20
	unsafeRatioWeight            = 20
	cleanHistoryBonus            = 5
	cleanHistoryMinVerifications = 3
)

// ScoreRisk converts a signal set into a bounded score, a risk level and a
// human-readable rationale. Pure function, cannot fail.
func ScoreRisk(signals RiskSignals) (score int, level string, reason string) {
	score = 100
	score -= min(signals.TotalReports*penaltyPerReport, totalReportsCap)
	score -= min(signals.Reports30d*penaltyPerReport30d, reports30dCap)

	if signals.Verifications30d > 0 {
		unsafeRatio := float64(signals.UnsafeVotes30d) / float64(signals.Verifications30d)
		score -= int(math.Round(unsafeRatio * unsafeRatioWeight))
	}

	// Clean history earns a small bonus
	if signals.TotalReports == 0 && signals.Verifications30d >= cleanHistoryMinVerifications {
		score = min(score+cleanHistoryBonus, 100)
	}

	score = max(0, min(100, score))

	return score, RiskLevelFor(score), riskReason(signals)
}

// RiskLevelFor maps a score to its tier. Boundaries are inclusive on the lower
// bound of each band: 76 is low, 40 is medium.
func RiskLevelFor(score int) string {
	switch {
	case score >= 76:
		return RiskLow
	case score >= 40:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// riskReason picks the rationale by priority: clean history first, then the
// report summary, then the no-data fallback.
func riskReason(signals RiskSignals) string {
	if signals.TotalReports == 0 && signals.Verifications30d >= cleanHistoryMinVerifications {
		return "No reports, multiple verifications - low risk"
	}
	if signals.TotalReports > 0 {
		return fmt.Sprintf("%d total reports (%d in last 30 days)", signals.TotalReports, signals.Reports30d)
	}
	return "Insufficient data"
}
