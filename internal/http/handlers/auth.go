package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipebox/recipebox-backend/internal/http/response"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
	"github.com/recipebox/recipebox-backend/internal/services"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		log:         log.With("handler", "AuthHandler"),
		authService: authService,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var payload services.RegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	user, err := h.authService.Register(c.Request.Context(), payload)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondCreated(c, user)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"auth_token": token, "user": user})
}
