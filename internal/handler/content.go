package handler

import (
	"net/http"
	"strconv"

	"coachpilot/internal/middleware"
	"coachpilot/internal/model"
	"coachpilot/internal/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	content *service.ContentService
}

func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// GET /api/posts
func (h *ContentHandler) List(c *gin.Context) {
	posts, err := h.content.List(c.Request.Context(), middleware.MemberID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if posts == nil {
		posts = []model.CalendarPost{}
	}
	c.JSON(http.StatusOK, posts)
}

// POST /api/posts
func (h *ContentHandler) Create(c *gin.Context) {
	var post model.CalendarPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	post.ID = 0
	post.MemberID = middleware.MemberID(c)
	if err := h.content.Create(c.Request.Context(), &post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

// PUT /api/posts/:id
func (h *ContentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var post model.CalendarPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.content.Update(c.Request.Context(), middleware.MemberID(c), uint(id), &post); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

// DELETE /api/posts/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.content.Delete(c.Request.Context(), middleware.MemberID(c), uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
