package service

import (
	"context"
	"fmt"

	"coachpilot/internal/model"

	"gorm.io/gorm"
)

// ContentService owns the calendar posts the plan generator reads.
type ContentService struct{ db *gorm.DB }

func NewContentService(db *gorm.DB) *ContentService { return &ContentService{db: db} }

func (s *ContentService) List(ctx context.Context, memberID uint) ([]model.CalendarPost, error) {
	var posts []model.CalendarPost
	if err := s.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("date").
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *ContentService) Create(ctx context.Context, post *model.CalendarPost) error {
	if post.Status == "" {
		post.Status = model.PostIdea
	}
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (s *ContentService) Update(ctx context.Context, memberID, postID uint, post *model.CalendarPost) error {
	var existing model.CalendarPost
	if err := s.db.WithContext(ctx).
		Where("member_id = ? AND id = ?", memberID, postID).
		First(&existing).Error; err != nil {
		return fmt.Errorf("post not found: %w", err)
	}
	updates := map[string]interface{}{
		"date":      post.Date,
		"channel":   post.Channel,
		"status":    post.Status,
		"format":    post.Format,
		"objective": post.Objective,
		"title":     post.Title,
	}
	if err := s.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	*post = existing
	return nil
}

func (s *ContentService) Delete(ctx context.Context, memberID, postID uint) error {
	if err := s.db.WithContext(ctx).
		Where("member_id = ? AND id = ?", memberID, postID).
		Delete(&model.CalendarPost{}).Error; err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
