package planner

import (
	"strings"
	"testing"
	"time"

	"coachpilot/internal/model"
)

var monday = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func networkPool(n int) []model.Contact {
	pool := make([]model.Contact, n)
	for i := range pool {
		pool[i] = model.Contact{ID: uint(i + 1), Name: "contact", Type: model.ContactNetwork}
	}
	return pool
}

func prospects(stage string, n int) []model.Contact {
	pool := make([]model.Contact, n)
	for i := range pool {
		pool[i] = model.Contact{ID: uint(100 + i), Name: "prospect", Type: model.ContactProspect, Stage: stage}
	}
	return pool
}

func tasksOfType(tasks []Task, typ string) []Task {
	var out []Task
	for _, t := range tasks {
		if t.Type == typ {
			out = append(out, t)
		}
	}
	return out
}

func TestGenerateExampleScenario(t *testing.T) {
	// 2-5h tier (daily budget 42), five network contacts, two cold prospects,
	// empty calendar.
	in := Input{
		WeekStart: monday,
		Budget:    ResolveBudget(model.Tier2to5h),
		Channels:  []string{model.ChannelInstagram},
		Network:   networkPool(5),
		ToContact: prospects(model.StageToContact, 2),
	}
	tasks := Generate(in)

	engagement := tasksOfType(tasks, model.TaskEngagement)
	if len(engagement) != 5 {
		t.Fatalf("want 5 engagement tasks, got %d", len(engagement))
	}
	seenDay := map[int]bool{}
	for _, e := range engagement {
		if e.Minutes != 10 {
			t.Errorf("engagement task costs %d, want 10", e.Minutes)
		}
		if seenDay[e.Day] {
			t.Errorf("two engagement tasks on day %d", e.Day)
		}
		seenDay[e.Day] = true
	}

	prosp := tasksOfType(tasks, model.TaskProspectionDM)
	if len(prosp) != 1 {
		t.Fatalf("want exactly 1 prospection batch, got %d", len(prosp))
	}
	if prosp[0].Day != 2 {
		t.Errorf("batch placed on day %d, want Tuesday", prosp[0].Day)
	}
	if prosp[0].Minutes != 10 || len(prosp[0].ContactIDs) != 2 {
		t.Errorf("batch = %d min with %d prospects, want 10 min with 2", prosp[0].Minutes, len(prosp[0].ContactIDs))
	}

	admin := tasksOfType(tasks, model.TaskCheckStats)
	if len(admin) != 1 || admin[0].Day != 5 || admin[0].Minutes != 5 {
		t.Fatalf("admin task wrong: %+v", admin)
	}

	// Recompute day loads excluding bonuses; every day under half the daily
	// budget must have received exactly one bonus.
	load := map[int]int{}
	bonuses := map[int]int{}
	for _, task := range tasks {
		if task.Type == model.TaskBonus {
			bonuses[task.Day]++
			continue
		}
		load[task.Day] += task.Minutes
	}
	for day := 1; day <= 5; day++ {
		want := 0
		if load[day] < 21 {
			want = 1
		}
		if bonuses[day] != want {
			t.Errorf("day %d (load %d): %d bonus tasks, want %d", day, load[day], bonuses[day], want)
		}
	}
}

func TestGenerateDayBoundsAndSortOrder(t *testing.T) {
	sunday := monday.AddDate(0, 0, 6)
	in := Input{
		WeekStart: monday,
		Budget:    ResolveBudget(model.Tier5to10h),
		Channels:  []string{model.ChannelInstagram, model.ChannelLinkedIn},
		Posts: []model.CalendarPost{
			{ID: 1, Date: monday, Channel: model.ChannelInstagram, Status: model.PostIdea, Title: "Monday idea"},
			{ID: 2, Date: sunday, Channel: model.ChannelInstagram, Status: model.PostDraft, Title: "Sunday draft"},
		},
		Network:   networkPool(12),
		Followups: []model.Contact{{ID: 50, Name: "late", NextFollowupAt: &sunday}},
		ToContact: prospects(model.StageToContact, 7),
	}
	tasks := Generate(in)

	last := -1
	for _, task := range tasks {
		if task.Day < 1 || task.Day > 5 {
			t.Errorf("task %q on day %d, outside [1,5]", task.Title, task.Day)
		}
		if task.SortOrder <= last {
			t.Errorf("sort order not strictly increasing at %q (%d after %d)", task.Title, task.SortOrder, last)
		}
		last = task.SortOrder
	}
}

func TestContentPassCoverage(t *testing.T) {
	wednesday := monday.AddDate(0, 0, 2)
	thursday := monday.AddDate(0, 0, 3)
	tuesday := monday.AddDate(0, 0, 1)
	in := Input{
		WeekStart: monday,
		Budget:    ResolveBudget(model.Tier2to5h),
		Channels:  []string{model.ChannelInstagram, model.ChannelLinkedIn},
		Posts: []model.CalendarPost{
			{ID: 1, Date: wednesday, Channel: model.ChannelInstagram, Status: model.PostIdea, Format: "reel", Objective: "grow reach", Title: "Reel"},
			{ID: 2, Date: thursday, Channel: model.ChannelInstagram, Status: model.PostDraft, Title: "Carousel"},
			{ID: 3, Date: tuesday, Channel: model.ChannelLinkedIn, Status: model.PostReady, Title: "Article"},
			{ID: 4, Date: wednesday, Channel: model.ChannelTikTok, Status: model.PostIdea, Title: "Inactive channel"},
			{ID: 5, Date: thursday, Channel: model.ChannelInstagram, Status: model.PostPublished, Title: "Already out"},
		},
	}
	tasks := Generate(in)

	refs := map[uint][]Task{}
	for _, task := range tasks {
		if task.CalendarPostID != nil {
			refs[*task.CalendarPostID] = append(refs[*task.CalendarPostID], task)
		}
	}
	for _, id := range []uint{1, 2, 3} {
		if len(refs[id]) != 1 {
			t.Fatalf("post %d referenced by %d tasks, want 1", id, len(refs[id]))
		}
	}
	for _, id := range []uint{4, 5} {
		if len(refs[id]) != 0 {
			t.Errorf("post %d should produce no task", id)
		}
	}

	// Idea: created the day before its slot, with the reels deep link and
	// the objective copied over.
	create := refs[1][0]
	if create.Type != model.TaskCreatePost || create.Day != 2 || create.Minutes != 20 {
		t.Errorf("create task wrong: %+v", create)
	}
	if create.Link != "/studio/reels" {
		t.Errorf("reel idea should link to reels editor, got %q", create.Link)
	}
	if !strings.Contains(create.Description, "grow reach") {
		t.Errorf("objective not copied into description: %q", create.Description)
	}

	// Draft: published same day.
	publish := refs[2][0]
	if publish.Type != model.TaskPublishPost || publish.Day != 4 || publish.Minutes != 5 {
		t.Errorf("publish task wrong: %+v", publish)
	}
}

func TestCreateTaskMondayUnderflowClampsToDayOne(t *testing.T) {
	in := Input{
		WeekStart: monday,
		Budget:    ResolveBudget(model.Tier2to5h),
		Channels:  []string{model.ChannelInstagram},
		Posts: []model.CalendarPost{
			{ID: 9, Date: monday, Channel: model.ChannelInstagram, Status: model.PostIdea, Title: "Monday"},
		},
	}
	creates := tasksOfType(Generate(in), model.TaskCreatePost)
	if len(creates) != 1 || creates[0].Day != 1 {
		t.Fatalf("monday idea should clamp to day 1, got %+v", creates)
	}
}

func TestFollowupWeekendClampsToFriday(t *testing.T) {
	sunday := monday.AddDate(0, 0, 6)
	wednesday := monday.AddDate(0, 0, 2)
	in := Input{
		WeekStart: monday,
		Budget:    ResolveBudget(model.Tier2to5h),
		Followups: []model.Contact{
			{ID: 1, Name: "sunday", NextFollowupAt: &sunday},
			{ID: 2, Name: "wednesday", NextFollowupAt: &wednesday},
		},
	}
	followups := tasksOfType(Generate(in), model.TaskProspectionDM)
	if len(followups) != 2 {
		t.Fatalf("want 2 followup tasks, got %d", len(followups))
	}
	if followups[0].Day != 5 {
		t.Errorf("sunday followup on day %d, want 5", followups[0].Day)
	}
	if followups[1].Day != 3 {
		t.Errorf("wednesday followup on day %d, want 3", followups[1].Day)
	}
}

func TestEngagementRequiresChannelAndPool(t *testing.T) {
	base := Input{
		WeekStart: monday,
		Budget:    ResolveBudget(model.Tier2to5h),
		Channels:  []string{model.ChannelLinkedIn},
		Network:   networkPool(5),
	}
	if got := tasksOfType(Generate(base), model.TaskEngagement); len(got) != 0 {
		t.Errorf("engagement emitted without the engagement channel: %d tasks", len(got))
	}

	base.Channels = []string{model.ChannelInstagram}
	base.Network = nil
	if got := tasksOfType(Generate(base), model.TaskEngagement); len(got) != 0 {
		t.Errorf("engagement emitted with an empty pool: %d tasks", len(got))
	}
}

func TestEngagementHintOnSmallPool(t *testing.T) {
	in := Input{
		WeekStart: monday,
		Budget:    ResolveBudget(model.Tier2to5h),
		Channels:  []string{model.ChannelInstagram},
		Network:   networkPool(2),
	}
	engagement := tasksOfType(Generate(in), model.TaskEngagement)
	if len(engagement) != 5 {
		t.Fatalf("want 5 engagement tasks, got %d", len(engagement))
	}
	for _, e := range engagement {
		if len(e.ContactIDs) != 2 {
			t.Errorf("slice of %d contacts, want the whole pool of 2", len(e.ContactIDs))
		}
		if !strings.Contains(e.Description, "short") {
			t.Errorf("small pool hint missing from %q", e.Description)
		}
	}
}

func TestLinkedInRecurringSkippedWhenPostPlanned(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	in := Input{
		WeekStart: monday,
		Budget:    ResolveBudget(model.Tier2to5h),
		Channels:  []string{model.ChannelLinkedIn},
		Posts: []model.CalendarPost{
			{ID: 1, Date: tuesday, Channel: model.ChannelLinkedIn, Status: model.PostIdea, Title: "Planned"},
		},
	}
	if got := tasksOfType(Generate(in), model.TaskCreateLinkedIn); len(got) != 0 {
		t.Errorf("recurring LinkedIn task emitted despite a planned post")
	}

	in.Posts = nil
	if got := tasksOfType(Generate(in), model.TaskCreateLinkedIn); len(got) != 1 {
		t.Errorf("want 1 recurring LinkedIn task on an empty calendar, got %d", len(got))
	}
}

func TestAddTaskClampsAndAccumulates(t *testing.T) {
	st := newState(Input{Budget: Budget{Daily: 42}})
	st.addTask(Task{Day: 0, Minutes: 10})
	st.addTask(Task{Day: 9, Minutes: 20})
	st.addTask(Task{Day: 3, Minutes: 5})

	if st.tasks[0].Day != 1 || st.tasks[1].Day != 5 {
		t.Fatalf("day clamping failed: %d, %d", st.tasks[0].Day, st.tasks[1].Day)
	}
	if st.load[1] != 10 || st.load[5] != 20 || st.load[3] != 5 {
		t.Fatalf("accumulator desynced: %v", st.load)
	}
	for i, task := range st.tasks {
		if task.SortOrder != i {
			t.Fatalf("sort order %d at index %d", task.SortOrder, i)
		}
	}
}

func TestLeastLoadedDay(t *testing.T) {
	st := newState(Input{Budget: Budget{Daily: 42}})
	st.addTask(Task{Day: 2, Minutes: 30})
	st.addTask(Task{Day: 4, Minutes: 10})
	st.addTask(Task{Day: 5, Minutes: 10})

	candidates := []int{2, 4, 5}
	got := st.leastLoadedDay(candidates)
	for _, d := range candidates {
		if st.load[got] > st.load[d] {
			t.Fatalf("leastLoadedDay returned %d (load %d) but day %d has load %d", got, st.load[got], d, st.load[d])
		}
	}
	if got != 4 {
		t.Fatalf("tie should break to the first candidate in list order, got %d", got)
	}
}
