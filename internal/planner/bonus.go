package planner

import "coachpilot/internal/model"

type bonusEntry struct {
	title       string
	description string
	link        string
	label       string
	channel     string // empty = no channel requirement
}

// Catalog order is the pick order; the first eligible entry wins.
var bonusCatalog = []bonusEntry{
	{
		title:       "Spend 10 minutes engaging on Instagram",
		description: "Reply to comments and DMs, react to a few stories.",
		link:        "/contacts",
		label:       "Open contacts",
		channel:     model.ChannelInstagram,
	},
	{
		title:       "Comment on 3 LinkedIn posts",
		description: "Pick posts from your feed and leave a substantial comment.",
		link:        "/contacts",
		label:       "Open contacts",
		channel:     model.ChannelLinkedIn,
	},
	{
		title:       "Collect 3 content ideas",
		description: "Note three ideas in the workshop while they are fresh.",
		link:        "/studio/content",
		label:       "Content workshop",
	},
	{
		title:       "Refresh your profile bio",
		description: "Reread your bio and pinned content; tighten anything stale.",
	},
}

// fillLightDays appends at most one 10-minute bonus task to each day whose
// accumulated load sits below half the daily budget. A day never gets two
// tasks with the same title.
func (s *state) fillLightDays() {
	half := s.dailyBudget / 2
	for day := 1; day <= 5; day++ {
		if s.load[day] >= half {
			continue
		}
		for _, b := range bonusCatalog {
			if b.channel != "" && !s.channels[b.channel] {
				continue
			}
			if s.hasTitleOnDay(day, b.title) {
				continue
			}
			s.addTask(Task{
				Day:         day,
				Type:        model.TaskBonus,
				Title:       b.title,
				Description: b.description,
				Minutes:     10,
				Link:        b.link,
				LinkLabel:   b.label,
			})
			break
		}
	}
}
