package services

import (
	"errors"
	"testing"
)

func TestComputePoints(t *testing.T) {
	tests := []struct {
		reports, verifications, votes int
		want                          int
	}{
		{0, 0, 0, 0},
		{1, 0, 0, 10},
		{0, 1, 0, 5},
		{0, 0, 1, 2},
		{3, 4, 5, 60},
		{100, 100, 100, 1700},
	}
	for _, tt := range tests {
		if got := ComputePoints(tt.reports, tt.verifications, tt.votes); got != tt.want {
			t.Errorf("ComputePoints(%d, %d, %d) = %d, want %d",
				tt.reports, tt.verifications, tt.votes, got, tt.want)
		}
	}
}

func TestBadgeForPointsBoundaries(t *testing.T) {
	// A user at the exact minimum threshold belongs to that tier.
	tests := []struct {
		points int
		want   string
	}{
		{0, "rookie"},
		{9, "rookie"},
		{10, "helper"},
		{49, "helper"},
		{50, "protector"},
		{99, "protector"},
		{100, "guardian"},
		{250, "expert"},
		{499, "expert"},
		{500, "legend"},
		{100000, "legend"},
	}
	for _, tt := range tests {
		if got := BadgeForPoints(tt.points); got.Level != tt.want {
			t.Errorf("BadgeForPoints(%d) = %s, want %s", tt.points, got.Level, tt.want)
		}
	}
}

func TestNextBadge(t *testing.T) {
	if next := NextBadge(0); next == nil || next.Level != "helper" {
		t.Errorf("NextBadge(0) = %v, want helper", next)
	}
	if next := NextBadge(250); next == nil || next.Level != "legend" {
		t.Errorf("NextBadge(250) = %v, want legend", next)
	}
	if next := NextBadge(500); next != nil {
		t.Errorf("NextBadge(500) = %v, want nil at top tier", next)
	}
}

func TestProgressPct(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{0, 0},    // rookie at the bottom
		{5, 50},   // halfway from rookie(0) to helper(10)
		{9, 90},
		{10, 0},   // fresh helper
		{30, 50},  // halfway from helper(10) to protector(50)
		{500, 100}, // top tier
		{9999, 100},
	}
	for _, tt := range tests {
		if got := ProgressPct(tt.points); got != tt.want {
			t.Errorf("ProgressPct(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestBadgeCatalogOrdered(t *testing.T) {
	for i := 1; i < len(BadgeCatalog); i++ {
		if BadgeCatalog[i].MinPoints <= BadgeCatalog[i-1].MinPoints {
			t.Fatalf("catalog not strictly ascending at %s", BadgeCatalog[i].Level)
		}
	}
	if BadgeCatalog[0].MinPoints != 0 {
		t.Fatal("base tier must start at 0 points")
	}
}

func TestAddContributionRejectsUnknownAction(t *testing.T) {
	err := AddContribution(1, "bogus_action")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("AddContribution with unknown action = %v, want *ValidationError", err)
	}
}
