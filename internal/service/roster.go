package service

import (
	"context"
	"fmt"
	"time"

	"coachpilot/internal/model"

	"gorm.io/gorm"
)

// RosterService owns the contact book: network contacts and prospects.
type RosterService struct{ db *gorm.DB }

func NewRosterService(db *gorm.DB) *RosterService { return &RosterService{db: db} }

func (s *RosterService) List(ctx context.Context, memberID uint, contactType, stage string) ([]model.Contact, error) {
	q := s.db.WithContext(ctx).Where("member_id = ?", memberID)
	if contactType != "" {
		q = q.Where("type = ?", contactType)
	}
	if stage != "" {
		q = q.Where("stage = ?", stage)
	}
	var contacts []model.Contact
	if err := q.Order("name").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (s *RosterService) Create(ctx context.Context, contact *model.Contact) error {
	if contact.Type == "" {
		contact.Type = model.ContactNetwork
	}
	if contact.Type == model.ContactProspect && contact.Stage == "" {
		contact.Stage = model.StageToContact
	}
	if err := s.db.WithContext(ctx).Create(contact).Error; err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

func (s *RosterService) Update(ctx context.Context, memberID, contactID uint, contact *model.Contact) error {
	var existing model.Contact
	if err := s.db.WithContext(ctx).
		Where("member_id = ? AND id = ?", memberID, contactID).
		First(&existing).Error; err != nil {
		return fmt.Errorf("contact not found: %w", err)
	}
	updates := map[string]interface{}{
		"name":                contact.Name,
		"type":                contact.Type,
		"channel":             contact.Channel,
		"last_interaction_at": contact.LastInteractionAt,
		"next_followup_at":    contact.NextFollowupAt,
		"stage":               contact.Stage,
	}
	if err := s.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	*contact = existing
	return nil
}

// Touch records an interaction with a network contact, which pushes it to the
// back of the engagement rotation.
func (s *RosterService) Touch(ctx context.Context, memberID, contactID uint) error {
	now := time.Now()
	res := s.db.WithContext(ctx).Model(&model.Contact{}).
		Where("member_id = ? AND id = ?", memberID, contactID).
		Update("last_interaction_at", &now)
	if res.Error != nil {
		return fmt.Errorf("touch contact: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("contact not found")
	}
	return nil
}

func (s *RosterService) Delete(ctx context.Context, memberID, contactID uint) error {
	if err := s.db.WithContext(ctx).
		Where("member_id = ? AND id = ?", memberID, contactID).
		Delete(&model.Contact{}).Error; err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
