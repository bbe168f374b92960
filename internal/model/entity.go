package model

import "time"

type Member struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
}

// PlanConfig holds the per-member settings the plan generator reads.
// Created during onboarding, edited from the settings page.
type PlanConfig struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	MemberID    uint     `gorm:"uniqueIndex" json:"member_id"`
	WeeklyTime  string   `json:"weekly_time"` // lt2h | 2to5h | 5to10h | gt10h
	Channels    []string `gorm:"serializer:json" json:"channels"`
	PrimaryGoal string   `json:"primary_goal"`
}

type CalendarPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MemberID  uint      `gorm:"index" json:"member_id"`
	Date      time.Time `gorm:"type:date" json:"date"`
	Channel   string    `json:"channel"`
	Status    string    `gorm:"default:idea" json:"status"` // idea | draft | ready | published
	Format    string    `json:"format"`                     // post | reel | story | carousel
	Objective string    `json:"objective"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Contact is a rolodex entry. Type "network" entries rotate through the
// engagement pass; type "prospect" entries feed the prospection pass.
type Contact struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	MemberID          uint       `gorm:"index" json:"member_id"`
	Name              string     `json:"name"`
	Type              string     `gorm:"default:network" json:"type"` // network | prospect
	Channel           string     `json:"channel"`
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	NextFollowupAt    *time.Time `json:"next_followup_at,omitempty"`
	Stage             string     `json:"stage"` // to_contact | contacted | discussing | client
	CreatedAt         time.Time  `json:"created_at"`
}

type WeeklyTask struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	MemberID       uint       `gorm:"index:idx_member_week" json:"member_id"`
	WeekStart      string     `gorm:"type:date;index:idx_member_week" json:"week_start"`
	DayOfWeek      int        `json:"day_of_week"` // 1=Monday .. 5=Friday for generated tasks
	Type           string     `json:"type"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	DurationMin    int        `json:"duration_min"`
	Link           string     `json:"link,omitempty"`
	LinkLabel      string     `json:"link_label,omitempty"`
	ContactIDs     []uint     `gorm:"serializer:json" json:"contact_ids,omitempty"`
	CalendarPostID *uint      `json:"calendar_post_id,omitempty"`
	Completed      bool       `gorm:"default:false" json:"completed"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	IsCustom       bool       `gorm:"default:false" json:"is_custom"`
	SortOrder      int        `json:"sort_order"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (Member) TableName() string       { return "members" }
func (PlanConfig) TableName() string   { return "plan_configs" }
func (CalendarPost) TableName() string { return "calendar_posts" }
func (Contact) TableName() string      { return "contacts" }
func (WeeklyTask) TableName() string   { return "weekly_tasks" }
