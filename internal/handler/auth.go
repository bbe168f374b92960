package handler

import (
	"net/http"

	"coachpilot/internal/logger"
	"coachpilot/internal/middleware"
	"coachpilot/internal/model"
	"coachpilot/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth   *service.AuthService
	secret []byte
}

func NewAuthHandler(auth *service.AuthService, secret []byte) *AuthHandler {
	return &AuthHandler{auth: auth, secret: secret}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	m, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("login.failed", "username", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	logger.Info("login.ok", "uid", m.ID, "name", m.Name)

	token, err := middleware.NewToken(h.secret, m.ID, m.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token signing failed"})
		return
	}
	c.JSON(http.StatusOK, model.LoginResponse{Token: token, User: *m})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	m, err := h.auth.Register(c.Request.Context(), req.Username, req.Password, req.Name)
	if err != nil {
		logger.Warn("register.failed", "username", req.Username, "err", err)
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
		return
	}

	logger.Info("register.ok", "uid", m.ID, "name", m.Name)

	token, err := middleware.NewToken(h.secret, m.ID, m.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token signing failed"})
		return
	}
	c.JSON(http.StatusOK, model.LoginResponse{Token: token, User: *m})
}
