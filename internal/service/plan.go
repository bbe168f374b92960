package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"coachpilot/internal/logger"
	"coachpilot/internal/model"
	"coachpilot/internal/planner"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ErrConfigMissing means the member never finished onboarding; no plan can
// be generated and nothing is persisted.
var ErrConfigMissing = errors.New("plan configuration not set")

type PlanService struct {
	db *gorm.DB

	mu        sync.Mutex
	weekLocks map[string]*sync.Mutex
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{db: db, weekLocks: make(map[string]*sync.Mutex)}
}

// lockWeek serializes generation per (member, week) so concurrent requests
// cannot interleave a delete+insert sequence. The loser of the race observes
// the stored batch and returns it unchanged.
func (s *PlanService) lockWeek(memberID uint, week string) func() {
	key := fmt.Sprintf("%d/%s", memberID, week)
	s.mu.Lock()
	l, ok := s.weekLocks[key]
	if !ok {
		l = &sync.Mutex{}
		s.weekLocks[key] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// planContext is everything one generation run reads.
type planContext struct {
	cfg       model.PlanConfig
	posts     []model.CalendarPost
	network   []model.Contact
	followups []model.Contact
	toContact []model.Contact
}

// fetchContext loads the five input collections. The reads are independent
// and read-only, so they run concurrently; allocation starts only once all
// have returned.
func (s *PlanService) fetchContext(ctx context.Context, memberID uint, weekStart time.Time) (*planContext, error) {
	weekEnd := weekStart.AddDate(0, 0, 7)
	pc := &planContext{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Where("member_id = ?", memberID).
			First(&pc.cfg).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrConfigMissing
		}
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Where("member_id = ? AND date >= ? AND date < ? AND status <> ?",
				memberID, weekStart, weekEnd, model.PostPublished).
			Order("date").
			Find(&pc.posts).Error
		if err != nil {
			return fmt.Errorf("load posts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		// Never-interacted contacts sort first (NULLs lead an ascending sort),
		// which is exactly the staleness order the rotation wants.
		err := s.db.WithContext(gctx).
			Where("member_id = ? AND type = ?", memberID, model.ContactNetwork).
			Order("last_interaction_at").
			Find(&pc.network).Error
		if err != nil {
			return fmt.Errorf("load network: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Where("member_id = ? AND type = ? AND next_followup_at >= ? AND next_followup_at < ?",
				memberID, model.ContactProspect, weekStart, weekEnd).
			Order("next_followup_at").
			Find(&pc.followups).Error
		if err != nil {
			return fmt.Errorf("load followups: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Where("member_id = ? AND type = ? AND stage = ?",
				memberID, model.ContactProspect, model.StageToContact).
			Order("created_at").
			Find(&pc.toContact).Error
		if err != nil {
			return fmt.Errorf("load prospects: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pc, nil
}

// Generate produces the week's plan. With force=false it is idempotent: an
// existing batch for the week is returned untouched. With force=true the
// incomplete, non-custom tasks of the week are dropped and the allocator runs
// again; completed and custom tasks survive as-is.
func (s *PlanService) Generate(ctx context.Context, memberID uint, now time.Time, force bool) (*model.PlanResponse, error) {
	weekStart := planner.WeekStart(now)
	week := weekStart.Format(planner.DateFormat)

	unlock := s.lockWeek(memberID, week)
	defer unlock()

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.WeeklyTask{}).
		Where("member_id = ? AND week_start = ?", memberID, week).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count week tasks: %w", err)
	}
	if count > 0 && !force {
		return s.weekResponse(ctx, memberID, week)
	}

	pc, err := s.fetchContext(ctx, memberID, weekStart)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger.Info("plan.generate", "run_id", runID, "member_id", memberID, "week", week, "force", force)

	if force {
		if err := s.db.WithContext(ctx).
			Where("member_id = ? AND week_start = ? AND completed = ? AND is_custom = ?",
				memberID, week, false, false).
			Delete(&model.WeeklyTask{}).Error; err != nil {
			return nil, fmt.Errorf("clear week: %w", err)
		}
	}

	// Fresh tasks sort after any surviving completed or custom rows.
	var base int
	if err := s.db.WithContext(ctx).Model(&model.WeeklyTask{}).
		Where("member_id = ? AND week_start = ?", memberID, week).
		Select("COALESCE(MAX(sort_order)+1, 0)").
		Scan(&base).Error; err != nil {
		return nil, fmt.Errorf("max sort order: %w", err)
	}

	tasks := planner.Generate(planner.Input{
		WeekStart:   weekStart,
		Budget:      planner.ResolveBudget(pc.cfg.WeeklyTime),
		Channels:    pc.cfg.Channels,
		PrimaryGoal: pc.cfg.PrimaryGoal,
		Posts:       pc.posts,
		Network:     pc.network,
		Followups:   pc.followups,
		ToContact:   pc.toContact,
	})

	rows := make([]model.WeeklyTask, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, model.WeeklyTask{
			MemberID:       memberID,
			WeekStart:      week,
			DayOfWeek:      t.Day,
			Type:           t.Type,
			Title:          t.Title,
			Description:    t.Description,
			DurationMin:    t.Minutes,
			Link:           t.Link,
			LinkLabel:      t.LinkLabel,
			ContactIDs:     t.ContactIDs,
			CalendarPostID: t.CalendarPostID,
			SortOrder:      base + t.SortOrder,
		})
	}
	if len(rows) > 0 {
		if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
			return nil, fmt.Errorf("insert tasks: %w", err)
		}
	}

	logger.Info("plan.generated", "run_id", runID, "member_id", memberID, "week", week, "tasks", len(rows))
	return s.weekResponse(ctx, memberID, week)
}

// GetWeek returns the stored batch for the week containing now, without
// triggering generation.
func (s *PlanService) GetWeek(ctx context.Context, memberID uint, now time.Time) (*model.PlanResponse, error) {
	week := planner.WeekStart(now).Format(planner.DateFormat)
	return s.weekResponse(ctx, memberID, week)
}

func (s *PlanService) weekResponse(ctx context.Context, memberID uint, week string) (*model.PlanResponse, error) {
	var tasks []model.WeeklyTask
	if err := s.db.WithContext(ctx).
		Where("member_id = ? AND week_start = ?", memberID, week).
		Order("day_of_week, sort_order").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("load week tasks: %w", err)
	}
	if tasks == nil {
		tasks = []model.WeeklyTask{}
	}
	return &model.PlanResponse{WeekStart: week, Tasks: tasks}, nil
}
