package main

import (
	"flag"
	"log/slog"
	"os"

	"coachpilot/internal/config"
	"coachpilot/internal/handler"
	"coachpilot/internal/logger"
	"coachpilot/internal/middleware"
	"coachpilot/internal/model"
	"coachpilot/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(
		&model.Member{}, &model.PlanConfig{}, &model.CalendarPost{},
		&model.Contact{}, &model.WeeklyTask{},
	); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	secret := []byte(cfg.Auth.JWTSecret)

	authH := handler.NewAuthHandler(service.NewAuthService(db), secret)
	planH := handler.NewPlanHandler(service.NewPlanService(db))
	settingsH := handler.NewSettingsHandler(service.NewSettingsService(db))
	contentH := handler.NewContentHandler(service.NewContentService(db))
	rosterH := handler.NewRosterHandler(service.NewRosterService(db))
	taskH := handler.NewTaskHandler(service.NewTaskService(db))

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/login", authH.Login)
	r.POST("/api/register", authH.Register)

	api := r.Group("/api", middleware.JWTAuth(secret))
	api.GET("/plan", planH.Get)
	api.POST("/plan/generate", planH.Generate)

	api.GET("/config", settingsH.Get)
	api.PUT("/config", settingsH.Update)

	api.GET("/posts", contentH.List)
	api.POST("/posts", contentH.Create)
	api.PUT("/posts/:id", contentH.Update)
	api.DELETE("/posts/:id", contentH.Delete)

	api.GET("/contacts", rosterH.List)
	api.POST("/contacts", rosterH.Create)
	api.PUT("/contacts/:id", rosterH.Update)
	api.POST("/contacts/:id/touch", rosterH.Touch)
	api.DELETE("/contacts/:id", rosterH.Delete)

	api.POST("/tasks", taskH.Create)
	api.PATCH("/tasks/:id/complete", taskH.Complete)
	api.PATCH("/tasks/:id/reorder", taskH.Reorder)
	api.DELETE("/tasks/:id", taskH.Delete)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
