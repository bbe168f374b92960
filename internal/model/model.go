package model

const (
	ChannelInstagram = "instagram"
	ChannelLinkedIn  = "linkedin"
	ChannelTikTok    = "tiktok"
	ChannelFacebook  = "facebook"
)

const (
	PostIdea      = "idea"
	PostDraft     = "draft"
	PostReady     = "ready"
	PostPublished = "published"
)

const (
	ContactNetwork  = "network"
	ContactProspect = "prospect"

	StageToContact = "to_contact"
)

const (
	TaskEngagement     = "engagement"
	TaskPublishPost    = "publish_post"
	TaskCreatePost     = "create_post"
	TaskProspectionDM  = "prospection_dm"
	TaskCreateStories  = "create_stories"
	TaskCreateLinkedIn = "create_linkedin"
	TaskCheckStats     = "check_stats"
	TaskBonus          = "bonus"
	TaskCustom         = "custom"
)

// Weekly time-availability tiers, set during onboarding.
const (
	TierUnder2h = "lt2h"
	Tier2to5h   = "2to5h"
	Tier5to10h  = "5to10h"
	TierOver10h = "gt10h"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  Member `json:"user"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type GenerateRequest struct {
	Force bool `json:"force"`
}

type PlanResponse struct {
	WeekStart string       `json:"week_start"`
	Tasks     []WeeklyTask `json:"tasks"`
}

type ConfigRequest struct {
	WeeklyTime  string   `json:"weekly_time"`
	Channels    []string `json:"channels"`
	PrimaryGoal string   `json:"primary_goal"`
}

type CustomTaskRequest struct {
	DayOfWeek   int    `json:"day_of_week" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DurationMin int    `json:"duration_min"`
	Link        string `json:"link"`
	LinkLabel   string `json:"link_label"`
}

type ReorderRequest struct {
	SortOrder int `json:"sort_order"`
}
