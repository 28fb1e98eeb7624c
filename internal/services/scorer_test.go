package services

import (
	"testing"
)

func TestScoreRiskVectors(t *testing.T) {
	tests := []struct {
		name       string
		signals    RiskSignals
		wantScore  int
		wantLevel  string
		wantReason string
	}{
		{
			name:       "no history",
			signals:    RiskSignals{},
			wantScore:  100,
			wantLevel:  RiskLow,
			wantReason: "Insufficient data",
		},
		{
			name:       "clean history bonus capped at 100",
			signals:    RiskSignals{Verifications30d: 3},
			wantScore:  100,
			wantLevel:  RiskLow,
			wantReason: "No reports, multiple verifications - low risk",
		},
		{
			name:       "heavily reported",
			signals:    RiskSignals{TotalReports: 20, Reports30d: 5, Verifications30d: 10, UnsafeVotes30d: 5},
			wantScore:  5, // 100 - min(100,70) - min(15,20) - round(0.5*20)
			wantLevel:  RiskHigh,
			wantReason: "20 total reports (5 in last 30 days)",
		},
		{
			name:       "single report",
			signals:    RiskSignals{TotalReports: 1, Reports30d: 1},
			wantScore:  92,
			wantLevel:  RiskLow,
			wantReason: "1 total reports (1 in last 30 days)",
		},
		{
			name:       "unsafe ratio without reports",
			signals:    RiskSignals{Verifications30d: 2, UnsafeVotes30d: 1},
			wantScore:  90, // 100 - round(0.5*20), no bonus below 3 verifications
			wantLevel:  RiskLow,
			wantReason: "Insufficient data",
		},
		{
			name:       "bonus applied mid-range",
			signals:    RiskSignals{Verifications30d: 4, UnsafeVotes30d: 4},
			wantScore:  85, // 100 - 20 + 5
			wantLevel:  RiskLow,
			wantReason: "No reports, multiple verifications - low risk",
		},
	}

	for _, tt := range tests {
		score, level, reason := ScoreRisk(tt.signals)
		if score != tt.wantScore {
			t.Errorf("%s: score = %d, want %d", tt.name, score, tt.wantScore)
		}
		if level != tt.wantLevel {
			t.Errorf("%s: level = %s, want %s", tt.name, level, tt.wantLevel)
		}
		if reason != tt.wantReason {
			t.Errorf("%s: reason = %q, want %q", tt.name, reason, tt.wantReason)
		}
	}
}

func TestScoreRiskBounds(t *testing.T) {
	// The clamp must hold for any combination, including adversarial counts.
	values := []int{0, 1, 2, 3, 7, 50, 1000, 1 << 20}
	for _, totalReports := range values {
		for _, reports30d := range values {
			for _, verifications := range values {
				for _, unsafeVotes := range values {
					score, level, reason := ScoreRisk(RiskSignals{
						TotalReports:     totalReports,
						Reports30d:       reports30d,
						Verifications30d: verifications,
						UnsafeVotes30d:   unsafeVotes,
					})
					if score < 0 || score > 100 {
						t.Fatalf("score %d out of [0,100] for (%d,%d,%d,%d)",
							score, totalReports, reports30d, verifications, unsafeVotes)
					}
					if level != RiskLevelFor(score) {
						t.Fatalf("level %s does not match score %d", level, score)
					}
					if reason == "" {
						t.Fatal("empty rationale")
					}
				}
			}
		}
	}
}

func TestRiskLevelBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, RiskLow},
		{76, RiskLow}, // inclusive lower bound
		{75, RiskMedium},
		{40, RiskMedium}, // inclusive lower bound
		{39, RiskHigh},
		{0, RiskHigh},
	}
	for _, tt := range tests {
		if got := RiskLevelFor(tt.score); got != tt.want {
			t.Errorf("RiskLevelFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestRiskReasonPriority(t *testing.T) {
	// Reports present and enough verifications: the report summary wins,
	// because the clean-history rationale requires zero reports.
	_, _, reason := ScoreRisk(RiskSignals{TotalReports: 2, Verifications30d: 5})
	if reason != "2 total reports (0 in last 30 days)" {
		t.Errorf("unexpected rationale: %q", reason)
	}
}
