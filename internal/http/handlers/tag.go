package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/recipebox/recipebox-backend/internal/http/response"
	"github.com/recipebox/recipebox-backend/internal/pkg/apperr"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
	"github.com/recipebox/recipebox-backend/internal/services"
)

type TagHandler struct {
	log        *logger.Logger
	tagService services.TagService
}

func NewTagHandler(log *logger.Logger, tagService services.TagService) *TagHandler {
	return &TagHandler{
		log:        log.With("handler", "TagHandler"),
		tagService: tagService,
	}
}

func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tagService.List(c.Request.Context())
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, tags)
}

func (h *TagHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.MapError(c, apperr.ErrNotFound)
		return
	}
	tag, err := h.tagService.Get(c.Request.Context(), id)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, tag)
}
