package planner

import "coachpilot/internal/model"

// Budget is the minute allowance derived from the member's weekly-time tier.
// Daily covers one of the five workdays.
type Budget struct {
	Weekly int
	Daily  int
}

// ResolveBudget maps a time-availability tier to its minute budget.
// Unknown or empty tiers fall back to the 2-5h tier.
func ResolveBudget(tier string) Budget {
	weekly := 210
	switch tier {
	case model.TierUnder2h:
		weekly = 90
	case model.Tier2to5h:
		weekly = 210
	case model.Tier5to10h:
		weekly = 450
	case model.TierOver10h:
		weekly = 720
	}
	return Budget{Weekly: weekly, Daily: weekly / 5}
}
