package service

import (
	"context"
	"errors"
	"fmt"

	"coachpilot/internal/model"

	"gorm.io/gorm"
)

type SettingsService struct{ db *gorm.DB }

func NewSettingsService(db *gorm.DB) *SettingsService { return &SettingsService{db: db} }

func (s *SettingsService) Get(ctx context.Context, memberID uint) (*model.PlanConfig, error) {
	var cfg model.PlanConfig
	err := s.db.WithContext(ctx).Where("member_id = ?", memberID).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConfigMissing
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// Update upserts the member's plan settings; the first call finishes
// onboarding.
func (s *SettingsService) Update(ctx context.Context, memberID uint, req model.ConfigRequest) (*model.PlanConfig, error) {
	var cfg model.PlanConfig
	err := s.db.WithContext(ctx).Where("member_id = ?", memberID).First(&cfg).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.MemberID = memberID
	cfg.WeeklyTime = req.WeeklyTime
	cfg.Channels = req.Channels
	cfg.PrimaryGoal = req.PrimaryGoal
	if err := s.db.WithContext(ctx).Save(&cfg).Error; err != nil {
		return nil, fmt.Errorf("save config: %w", err)
	}
	return &cfg, nil
}
