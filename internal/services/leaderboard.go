package services

import (
	"fmt"
	"time"
	"upishield/internal/db"
	"upishield/internal/models"
	"upishield/internal/utils"
)

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	UserID      uint   `json:"user_id"`
	DisplayName string `json:"display_name"`
	Points      int    `json:"points"`
	Badge       Badge  `json:"badge"`
	Rank        int    `json:"rank"`
}

const (
	leaderboardDefaultLimit = 50
	leaderboardMaxLimit     = 100
	leaderboardCacheTTL     = 30 * time.Second
)

// Points descending, ties broken by earliest account creation so the ordering
// is stable across calls and pages.
const leaderboardOrder = "(user_reputations.reports_count * 10 + user_reputations.verifications_count * 5 + user_reputations.votes_count * 2) DESC, users.created_at ASC"

type leaderboardRow struct {
	UserID             uint
	DisplayName        string
	ReportsCount       int
	VerificationsCount int
	VotesCount         int
}

// Leaderboard returns the top contributors ordered by points. Results are
// cached briefly; the leaderboard tolerates 30 seconds of staleness.
func Leaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > leaderboardMaxLimit {
		limit = leaderboardDefaultLimit
	}

	cacheKey := fmt.Sprintf("leaderboard:%d", limit)
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		return cached.([]LeaderboardEntry), nil
	}

	rows, err := rankedRows(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		points := ComputePoints(row.ReportsCount, row.VerificationsCount, row.VotesCount)
		entries = append(entries, LeaderboardEntry{
			UserID:      row.UserID,
			DisplayName: row.DisplayName,
			Points:      points,
			Badge:       BadgeForPoints(points),
			Rank:        i + 1,
		})
	}

	utils.GetCache().Set(cacheKey, entries, leaderboardCacheTTL)
	return entries, nil
}

// UserRank returns the 1-based position in the full ordering, or 0 when the
// user has no reputation row yet (unranked).
func UserRank(userID uint) (int, error) {
	rows, err := rankedRows(0)
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		if row.UserID == userID {
			return i + 1, nil
		}
	}
	return 0, nil
}

func rankedRows(limit int) ([]leaderboardRow, error) {
	var rows []leaderboardRow
	query := db.DB.Model(&models.UserReputation{}).
		Select("user_reputations.user_id, users.display_name, user_reputations.reports_count, user_reputations.verifications_count, user_reputations.votes_count").
		Joins("JOIN users ON users.id = user_reputations.user_id").
		Order(leaderboardOrder)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
