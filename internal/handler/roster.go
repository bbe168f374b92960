package handler

import (
	"net/http"
	"strconv"

	"coachpilot/internal/middleware"
	"coachpilot/internal/model"
	"coachpilot/internal/service"

	"github.com/gin-gonic/gin"
)

type RosterHandler struct {
	roster *service.RosterService
}

func NewRosterHandler(roster *service.RosterService) *RosterHandler {
	return &RosterHandler{roster: roster}
}

// GET /api/contacts?type=prospect&stage=to_contact
func (h *RosterHandler) List(c *gin.Context) {
	contacts, err := h.roster.List(c.Request.Context(), middleware.MemberID(c),
		c.Query("type"), c.Query("stage"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}
	c.JSON(http.StatusOK, contacts)
}

// POST /api/contacts
func (h *RosterHandler) Create(c *gin.Context) {
	var contact model.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	contact.ID = 0
	contact.MemberID = middleware.MemberID(c)
	if err := h.roster.Create(c.Request.Context(), &contact); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contact)
}

// PUT /api/contacts/:id
func (h *RosterHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var contact model.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.roster.Update(c.Request.Context(), middleware.MemberID(c), uint(id), &contact); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contact)
}

// POST /api/contacts/:id/touch
func (h *RosterHandler) Touch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.roster.Touch(c.Request.Context(), middleware.MemberID(c), uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/contacts/:id
func (h *RosterHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.roster.Delete(c.Request.Context(), middleware.MemberID(c), uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
