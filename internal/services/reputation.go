package services

import (
	"errors"
	"log"
	"upishield/internal/db"
	"upishield/internal/models"

	"gorm.io/gorm"
)

// Contribution actions
const (
	ActionReport       = "fraud_report"
	ActionVerification = "verification"
	ActionVote         = "community_vote"
)

// Point weights. Shown to users on progress screens; keep them stable.
const (
	PointsPerReport       = 10
	PointsPerVerification = 5
	PointsPerVote         = 2
)

// Badge is one rank in the static catalog. Not stored per user; a user's badge
// is always derived from their point total.
type Badge struct {
	Level     string `json:"level"`
	Name      string `json:"name"`
	MinPoints int    `json:"min_points"`
}

// BadgeCatalog is ordered by ascending minimum threshold.
var BadgeCatalog = []Badge{
	{Level: "rookie", Name: "Rookie", MinPoints: 0},
	{Level: "helper", Name: "Helper", MinPoints: 10},
	{Level: "protector", Name: "Protector", MinPoints: 50},
	{Level: "guardian", Name: "Guardian", MinPoints: 100},
	{Level: "expert", Name: "Expert", MinPoints: 250},
	{Level: "legend", Name: "Legend", MinPoints: 500},
}

// ComputePoints derives the point total from lifetime action counts.
func ComputePoints(reports, verifications, votes int) int {
	return reports*PointsPerReport + verifications*PointsPerVerification + votes*PointsPerVote
}

// BadgeForPoints returns the highest badge whose threshold does not exceed
// points. Thresholds are inclusive: exactly 10 points is already Helper.
func BadgeForPoints(points int) Badge {
	current := BadgeCatalog[0]
	for _, badge := range BadgeCatalog {
		if points >= badge.MinPoints {
			current = badge
		}
	}
	return current
}

// NextBadge returns the lowest badge above points, or nil at the top tier.
func NextBadge(points int) *Badge {
	for i := range BadgeCatalog {
		if BadgeCatalog[i].MinPoints > points {
			badge := BadgeCatalog[i]
			return &badge
		}
	}
	return nil
}

// ProgressPct is the progress toward the next badge, clamped to [0,100].
// Defined as 100 when the user already holds the top tier.
func ProgressPct(points int) int {
	current := BadgeForPoints(points)
	next := NextBadge(points)
	if next == nil {
		return 100
	}
	pct := (points - current.MinPoints) * 100 / (next.MinPoints - current.MinPoints)
	return max(0, min(100, pct))
}

// AddContribution bumps the user's counter for one completed action and writes
// the audit log row, in a single transaction. Each action is credited exactly
// once, at the call site where it completes.
func AddContribution(userID uint, action string) error {
	var column string
	var points int
	switch action {
	case ActionReport:
		column, points = "reports_count", PointsPerReport
	case ActionVerification:
		column, points = "verifications_count", PointsPerVerification
	case ActionVote:
		column, points = "votes_count", PointsPerVote
	default:
		return invalid("action", "unknown contribution action")
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		// Ensure the reputation row exists before incrementing
		reputation := models.UserReputation{UserID: userID}
		if err := tx.Where("user_id = ?", userID).FirstOrCreate(&reputation).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.UserReputation{}).
			Where("user_id = ?", userID).
			UpdateColumn(column, gorm.Expr(column+" + 1")).Error; err != nil {
			return err
		}

		contribution := models.ContributionLog{
			UserID: userID,
			Action: action,
			Points: points,
		}
		return tx.Create(&contribution).Error
	})
}

// ReputationSummary is the derived view of a user's standing.
type ReputationSummary struct {
	Points             int    `json:"points"`
	Badge              Badge  `json:"badge"`
	NextBadge          *Badge `json:"next_badge"`
	ProgressPct        int    `json:"progress_pct"`
	ReportsCount       int    `json:"reports_count"`
	VerificationsCount int    `json:"verifications_count"`
	VotesCount         int    `json:"votes_count"`
}

// GetReputation recomputes points, badge and progress from the maintained
// counters. A user with no reputation row yet reads as zero everywhere.
func GetReputation(userID uint) (*ReputationSummary, error) {
	var reputation models.UserReputation
	err := db.DB.Where("user_id = ?", userID).First(&reputation).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	points := ComputePoints(reputation.ReportsCount, reputation.VerificationsCount, reputation.VotesCount)
	return &ReputationSummary{
		Points:             points,
		Badge:              BadgeForPoints(points),
		NextBadge:          NextBadge(points),
		ProgressPct:        ProgressPct(points),
		ReportsCount:       reputation.ReportsCount,
		VerificationsCount: reputation.VerificationsCount,
		VotesCount:         reputation.VotesCount,
	}, nil
}

// ReconcileReputation recounts one user's contributions from the raw tables
// and overwrites the maintained counters. Offline auditing only; the request
// path always reads the counters.
func ReconcileReputation(userID uint) error {
	var reports, verifications, votes int64
	if err := db.DB.Model(&models.Report{}).Where("user_id = ?", userID).Count(&reports).Error; err != nil {
		return err
	}
	if err := db.DB.Model(&models.Verification{}).Where("user_id = ?", userID).Count(&verifications).Error; err != nil {
		return err
	}
	if err := db.DB.Model(&models.VerificationVote{}).Where("user_id = ?", userID).Count(&votes).Error; err != nil {
		return err
	}

	var reputation models.UserReputation
	if err := db.DB.Where("user_id = ?", userID).First(&reputation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // nothing to reconcile
		}
		return err
	}

	if reputation.ReportsCount != int(reports) ||
		reputation.VerificationsCount != int(verifications) ||
		reputation.VotesCount != int(votes) {
		log.Printf("Reputation drift for user %d: counters (%d,%d,%d) vs tables (%d,%d,%d)",
			userID, reputation.ReportsCount, reputation.VerificationsCount, reputation.VotesCount,
			reports, verifications, votes)
	}

	return db.DB.Model(&models.UserReputation{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"reports_count":       reports,
			"verifications_count": verifications,
			"votes_count":         votes,
		}).Error
}
