package planner

import (
	"testing"

	"coachpilot/internal/model"
)

func TestResolveBudget(t *testing.T) {
	tests := []struct {
		tier   string
		weekly int
		daily  int
	}{
		{model.TierUnder2h, 90, 18},
		{model.Tier2to5h, 210, 42},
		{model.Tier5to10h, 450, 90},
		{model.TierOver10h, 720, 144},
		{"", 210, 42},
		{"bogus", 210, 42},
	}
	for _, tt := range tests {
		got := ResolveBudget(tt.tier)
		if got.Weekly != tt.weekly || got.Daily != tt.daily {
			t.Errorf("ResolveBudget(%q) = %+v, want weekly=%d daily=%d", tt.tier, got, tt.weekly, tt.daily)
		}
	}
}
