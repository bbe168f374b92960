package handler

import (
	"errors"
	"net/http"
	"time"

	"coachpilot/internal/logger"
	"coachpilot/internal/middleware"
	"coachpilot/internal/model"
	"coachpilot/internal/planner"
	"coachpilot/internal/service"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	plan *service.PlanService
}

func NewPlanHandler(plan *service.PlanService) *PlanHandler {
	return &PlanHandler{plan: plan}
}

// POST /api/plan/generate  body: {"force": bool}
func (h *PlanHandler) Generate(c *gin.Context) {
	var req model.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	memberID := middleware.MemberID(c)
	resp, err := h.plan.Generate(c.Request.Context(), memberID, time.Now(), req.Force)
	if errors.Is(err, service.ErrConfigMissing) {
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": "configuration not set"})
		return
	}
	if err != nil {
		logger.Error("plan.generate.failed", "member_id", memberID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "plan generation failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /api/plan?week_start=2026-08-31
func (h *PlanHandler) Get(c *gin.Context) {
	at := time.Now()
	if raw := c.Query("week_start"); raw != "" {
		parsed, err := time.Parse(planner.DateFormat, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week_start"})
			return
		}
		at = parsed
	}

	memberID := middleware.MemberID(c)
	resp, err := h.plan.GetWeek(c.Request.Context(), memberID, at)
	if err != nil {
		logger.Error("plan.get.failed", "member_id", memberID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "plan lookup failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
