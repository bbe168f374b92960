package planner

import (
	"fmt"
	"strings"
	"time"

	"coachpilot/internal/model"
)

const engagementSliceSize = 3

// Days eligible for cold-outreach batches.
var prospectionDays = []int{2, 4, 5}

// Input is the fully fetched context one generation run consumes. All pools
// arrive pre-sorted: network contacts oldest-interaction-first, followups by
// followup time, to-contact prospects by creation time.
type Input struct {
	WeekStart   time.Time
	Budget      Budget
	Channels    []string
	PrimaryGoal string
	Posts       []model.CalendarPost
	Network     []model.Contact
	Followups   []model.Contact
	ToContact   []model.Contact
}

// Task is one allocated unit of work, not yet persisted.
type Task struct {
	Day            int
	Type           string
	Title          string
	Description    string
	Minutes        int
	Link           string
	LinkLabel      string
	ContactIDs     []uint
	CalendarPostID *uint
	SortOrder      int
}

// state carries the per-day minute accumulator and the growing task list
// across passes. Every pass mutates it through addTask only, so the
// accumulator and the list never diverge.
type state struct {
	dailyBudget int
	load        map[int]int
	channels    map[string]bool
	tasks       []Task
	nextSort    int
}

func newState(in Input) *state {
	ch := make(map[string]bool, len(in.Channels))
	for _, c := range in.Channels {
		ch[c] = true
	}
	return &state{
		dailyBudget: in.Budget.Daily,
		load:        map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		channels:    ch,
	}
}

// Generate runs the five allocation passes in order, then tops up light days.
// Pass order matters: later passes place flexible tasks on the least-loaded
// day given what earlier passes already scheduled.
func Generate(in Input) []Task {
	st := newState(in)
	st.engagementPass(in)
	st.contentPass(in)
	st.prospectionPass(in)
	st.recurringPass(in)
	st.adminPass(in)
	st.fillLightDays()
	return st.tasks
}

// addTask is the sole mutation point. Days outside [1,5] are pulled to the
// nearest boundary, the sort index is strictly increasing in emission order
// and the day's minute accumulator grows by the task's duration.
func (s *state) addTask(t Task) {
	if t.Day < 1 {
		t.Day = 1
	}
	if t.Day > 5 {
		t.Day = 5
	}
	t.SortOrder = s.nextSort
	s.nextSort++
	s.load[t.Day] += t.Minutes
	s.tasks = append(s.tasks, t)
}

// leastLoadedDay returns the candidate with the smallest accumulated minutes,
// ties broken by position in the candidate list.
func (s *state) leastLoadedDay(candidates []int) int {
	best := candidates[0]
	for _, d := range candidates[1:] {
		if s.load[d] < s.load[best] {
			best = d
		}
	}
	return best
}

func (s *state) hasTitleOnDay(day int, title string) bool {
	for _, t := range s.tasks {
		if t.Day == day && t.Title == title {
			return true
		}
	}
	return false
}

// engagementPass emits one daily task naming a rotating 3-contact slice of
// the network pool, as long as the engagement channel is active.
func (s *state) engagementPass(in Input) {
	if !s.channels[model.ChannelInstagram] || len(in.Network) == 0 {
		return
	}
	for day := 1; day <= 5; day++ {
		slice := RotationSlice(in.Network, day, engagementSliceSize)
		names := make([]string, 0, len(slice))
		ids := make([]uint, 0, len(slice))
		for _, c := range slice {
			names = append(names, c.Name)
			ids = append(ids, c.ID)
		}
		desc := "Comment and react to recent posts from " + strings.Join(names, ", ") + "."
		if len(in.Network) < engagementSliceSize {
			desc += " Your network list is short; add more contacts to widen the rotation."
		}
		s.addTask(Task{
			Day:         day,
			Type:        model.TaskEngagement,
			Title:       "Engage with your network",
			Description: desc,
			Minutes:     10,
			Link:        "/contacts",
			LinkLabel:   "Open contacts",
			ContactIDs:  ids,
		})
	}
}

// contentPass covers every unpublished calendar post due this week on an
// active channel: drafted posts get a same-day publish task, bare ideas get
// a creation task the day before their slot.
func (s *state) contentPass(in Input) {
	for _, p := range in.Posts {
		if !s.channels[p.Channel] || p.Status == model.PostPublished {
			continue
		}
		day := isoWeekday(p.Date)
		postID := p.ID

		if p.Status == model.PostDraft || p.Status == model.PostReady {
			s.addTask(Task{
				Day:            day,
				Type:           model.TaskPublishPost,
				Title:          "Publish: " + p.Title,
				Description:    fmt.Sprintf("Your %s content is ready, put it online today.", p.Channel),
				Minutes:        5,
				Link:           fmt.Sprintf("/posts/%d", p.ID),
				LinkLabel:      "Open post",
				CalendarPostID: &postID,
			})
			continue
		}

		link, label := creationLink(p.Channel, p.Format)
		desc := fmt.Sprintf("Draft the %s content planned for %s.", p.Channel, p.Date.Format(DateFormat))
		if p.Objective != "" {
			desc += " Objective: " + p.Objective + "."
		}
		s.addTask(Task{
			Day:            day - 1,
			Type:           model.TaskCreatePost,
			Title:          "Create: " + p.Title,
			Description:    desc,
			Minutes:        20,
			Link:           link,
			LinkLabel:      label,
			CalendarPostID: &postID,
		})
	}
}

func creationLink(channel, format string) (string, string) {
	if channel == model.ChannelInstagram && format == "reel" {
		return "/studio/reels", "Reels editor"
	}
	return "/studio/content", "Content workshop"
}

// prospectionPass schedules due followups on their own day (weekend pulled to
// Friday), then spreads never-contacted prospects over Tue/Thu/Fri batches.
func (s *state) prospectionPass(in Input) {
	for _, p := range in.Followups {
		day := 5
		if p.NextFollowupAt != nil {
			if d := isoWeekday(*p.NextFollowupAt); d < 5 {
				day = d
			}
		}
		s.addTask(Task{
			Day:         day,
			Type:        model.TaskProspectionDM,
			Title:       "Follow up with " + p.Name,
			Description: "A reply is overdue, send a short check-in message.",
			Minutes:     10,
			Link:        fmt.Sprintf("/contacts/%d", p.ID),
			LinkLabel:   "Open contact",
			ContactIDs:  []uint{p.ID},
		})
	}

	n := len(in.ToContact)
	if n == 0 {
		return
	}
	batchSize := (n + len(prospectionDays) - 1) / len(prospectionDays)
	if batchSize < 2 {
		// A handful of prospects goes out in one sitting instead of being
		// spread one per day.
		batchSize = 2
	}
	for start := 0; start < n; start += batchSize {
		end := start + batchSize
		if end > n {
			end = n
		}
		batch := in.ToContact[start:end]
		names := make([]string, 0, len(batch))
		ids := make([]uint, 0, len(batch))
		for _, c := range batch {
			names = append(names, c.Name)
			ids = append(ids, c.ID)
		}
		title := fmt.Sprintf("Reach out to %d new prospects", len(batch))
		if len(batch) == 1 {
			title = "Reach out to 1 new prospect"
		}
		s.addTask(Task{
			Day:         s.leastLoadedDay(prospectionDays),
			Type:        model.TaskProspectionDM,
			Title:       title,
			Description: "Send a first message to: " + strings.Join(names, ", ") + ".",
			Minutes:     5 * len(batch),
			Link:        "/contacts?stage=to_contact",
			LinkLabel:   "Open prospects",
			ContactIDs:  ids,
		})
	}
}

// recurringPass emits the standing weekly duty of each active channel when
// the calendar does not already cover it.
func (s *state) recurringPass(in Input) {
	if s.channels[model.ChannelInstagram] && !hasPostWithFormat(in.Posts, model.ChannelInstagram, "story") {
		s.addTask(Task{
			Day:         s.leastLoadedDay([]int{1, 3}),
			Type:        model.TaskCreateStories,
			Title:       "Prepare 3 stories",
			Description: "Film or design three stories to spread over the week.",
			Minutes:     15,
			Link:        "/studio/stories",
			LinkLabel:   "Story ideas",
		})
	}
	if s.channels[model.ChannelLinkedIn] && !hasPostForChannel(in.Posts, model.ChannelLinkedIn) {
		desc := "Nothing is scheduled on LinkedIn this week, write one post to stay visible."
		if in.PrimaryGoal != "" {
			desc += " Tie it back to your " + in.PrimaryGoal + " goal."
		}
		s.addTask(Task{
			Day:         s.leastLoadedDay([]int{2, 3}),
			Type:        model.TaskCreateLinkedIn,
			Title:       "Write a LinkedIn post",
			Description: desc,
			Minutes:     20,
			Link:        "/studio/linkedin",
			LinkLabel:   "LinkedIn workshop",
		})
	}
}

func hasPostForChannel(posts []model.CalendarPost, channel string) bool {
	for _, p := range posts {
		if p.Channel == channel {
			return true
		}
	}
	return false
}

func hasPostWithFormat(posts []model.CalendarPost, channel, format string) bool {
	for _, p := range posts {
		if p.Channel == channel && p.Format == format {
			return true
		}
	}
	return false
}

// adminPass closes the week with a single stats review on Friday.
func (s *state) adminPass(in Input) {
	link, label := "/stats", "Dashboard"
	if len(in.Channels) > 0 && s.channels[in.Channels[0]] {
		link, label = "/stats/"+in.Channels[0], "Channel insights"
	}
	s.addTask(Task{
		Day:         5,
		Type:        model.TaskCheckStats,
		Title:       "Review this week's performance",
		Description: "Check reach, replies and saves; note what worked for next week.",
		Minutes:     5,
		Link:        link,
		LinkLabel:   label,
	})
}
