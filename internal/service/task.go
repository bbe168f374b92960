package service

import (
	"context"
	"fmt"
	"time"

	"coachpilot/internal/model"
	"coachpilot/internal/planner"

	"gorm.io/gorm"
)

// TaskService covers the user-side mutations of a generated plan: custom
// tasks, completion, reordering and deletion. The generator never touches
// completed or custom rows, so these edits survive regeneration.
type TaskService struct{ db *gorm.DB }

func NewTaskService(db *gorm.DB) *TaskService { return &TaskService{db: db} }

func (s *TaskService) CreateCustom(ctx context.Context, memberID uint, now time.Time, req model.CustomTaskRequest) (*model.WeeklyTask, error) {
	week := planner.WeekStart(now).Format(planner.DateFormat)
	day := req.DayOfWeek
	if day < 1 {
		day = 1
	}
	if day > 7 {
		day = 7
	}

	var nextSort int
	if err := s.db.WithContext(ctx).Model(&model.WeeklyTask{}).
		Where("member_id = ? AND week_start = ?", memberID, week).
		Select("COALESCE(MAX(sort_order)+1, 0)").
		Scan(&nextSort).Error; err != nil {
		return nil, fmt.Errorf("max sort order: %w", err)
	}

	task := model.WeeklyTask{
		MemberID:    memberID,
		WeekStart:   week,
		DayOfWeek:   day,
		Type:        model.TaskCustom,
		Title:       req.Title,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Link:        req.Link,
		LinkLabel:   req.LinkLabel,
		IsCustom:    true,
		SortOrder:   nextSort,
	}
	if err := s.db.WithContext(ctx).Create(&task).Error; err != nil {
		return nil, fmt.Errorf("create custom task: %w", err)
	}
	return &task, nil
}

func (s *TaskService) Complete(ctx context.Context, memberID, taskID uint) (*model.WeeklyTask, error) {
	var task model.WeeklyTask
	if err := s.db.WithContext(ctx).
		Where("member_id = ? AND id = ?", memberID, taskID).
		First(&task).Error; err != nil {
		return nil, fmt.Errorf("task not found: %w", err)
	}
	now := time.Now()
	task.Completed = true
	task.CompletedAt = &now
	if err := s.db.WithContext(ctx).Save(&task).Error; err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}
	return &task, nil
}

func (s *TaskService) Reorder(ctx context.Context, memberID, taskID uint, sortOrder int) error {
	res := s.db.WithContext(ctx).Model(&model.WeeklyTask{}).
		Where("member_id = ? AND id = ?", memberID, taskID).
		Update("sort_order", sortOrder)
	if res.Error != nil {
		return fmt.Errorf("reorder task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("task not found")
	}
	return nil
}

func (s *TaskService) Delete(ctx context.Context, memberID, taskID uint) error {
	if err := s.db.WithContext(ctx).
		Where("member_id = ? AND id = ?", memberID, taskID).
		Delete(&model.WeeklyTask{}).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
