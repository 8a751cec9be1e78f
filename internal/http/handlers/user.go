package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/recipebox/recipebox-backend/internal/http/response"
	"github.com/recipebox/recipebox-backend/internal/pkg/apperr"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
	"github.com/recipebox/recipebox-backend/internal/services"
)

type UserHandler struct {
	log                 *logger.Logger
	userService         services.UserService
	subscriptionService services.SubscriptionService
}

func NewUserHandler(log *logger.Logger, userService services.UserService, subscriptionService services.SubscriptionService) *UserHandler {
	return &UserHandler{
		log:                 log.With("handler", "UserHandler"),
		userService:         userService,
		subscriptionService: subscriptionService,
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.userService.GetMe(c.Request.Context())
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, user)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.MapError(c, apperr.ErrNotFound)
		return
	}
	view, err := h.userService.Get(c.Request.Context(), userID)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, view)
}

func (h *UserHandler) Subscribe(c *gin.Context) {
	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.MapError(c, apperr.ErrNotFound)
		return
	}
	view, err := h.subscriptionService.Subscribe(c.Request.Context(), authorID)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondCreated(c, view)
}

func (h *UserHandler) Unsubscribe(c *gin.Context) {
	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.MapError(c, apperr.ErrNotFound)
		return
	}
	if err := h.subscriptionService.Unsubscribe(c.Request.Context(), authorID); err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondNoContent(c)
}

func (h *UserHandler) ListSubscriptions(c *gin.Context) {
	views, err := h.subscriptionService.List(c.Request.Context())
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"results": views})
}
