// Command seed bootstraps a development database with a demo account,
// its plan settings, a few contacts and one scheduled post.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"coachpilot/internal/config"
	"coachpilot/internal/logger"
	"coachpilot/internal/model"
	"coachpilot/internal/planner"
	"coachpilot/internal/service"
)

func main() {
	configFile := flag.String("config", "etc/config-dev.yaml", "config file")
	flag.Parse()

	logger.Init(config.LogConfig{Level: "info", Console: true})

	cfg := config.Load(*configFile)
	db, err := cfg.OpenGormDB()
	if err != nil {
		log.Fatal("db connect failed: ", err)
	}
	if err := db.AutoMigrate(
		&model.Member{}, &model.PlanConfig{}, &model.CalendarPost{},
		&model.Contact{}, &model.WeeklyTask{},
	); err != nil {
		log.Fatal("db migrate failed: ", err)
	}

	ctx := context.Background()
	auth := service.NewAuthService(db)

	member, err := auth.Register(ctx, "demo", "demo1234", "Demo Coach")
	if err != nil {
		log.Fatal("seed member failed: ", err)
	}

	db.Create(&model.PlanConfig{
		MemberID:    member.ID,
		WeeklyTime:  model.Tier2to5h,
		Channels:    []string{model.ChannelInstagram, model.ChannelLinkedIn},
		PrimaryGoal: "visibility",
	})

	twoWeeksAgo := time.Now().AddDate(0, 0, -14)
	contacts := []model.Contact{
		{MemberID: member.ID, Name: "Alice Fontaine", Type: model.ContactNetwork, Channel: model.ChannelInstagram, LastInteractionAt: &twoWeeksAgo},
		{MemberID: member.ID, Name: "Bruno Keller", Type: model.ContactNetwork, Channel: model.ChannelInstagram},
		{MemberID: member.ID, Name: "Chloé Martin", Type: model.ContactNetwork, Channel: model.ChannelLinkedIn},
		{MemberID: member.ID, Name: "David Osei", Type: model.ContactProspect, Stage: model.StageToContact},
		{MemberID: member.ID, Name: "Emma Ricci", Type: model.ContactProspect, Stage: model.StageToContact},
	}
	db.Create(&contacts)

	wednesday := planner.WeekStart(time.Now()).AddDate(0, 0, 2)
	db.Create(&model.CalendarPost{
		MemberID:  member.ID,
		Date:      wednesday,
		Channel:   model.ChannelInstagram,
		Status:    model.PostIdea,
		Format:    "reel",
		Objective: "show behind the scenes",
		Title:     "Studio tour",
	})

	logger.Info("seed done", "member_id", member.ID)
}
