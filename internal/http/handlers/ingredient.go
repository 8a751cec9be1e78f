package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/recipebox/recipebox-backend/internal/http/response"
	"github.com/recipebox/recipebox-backend/internal/pkg/apperr"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
	"github.com/recipebox/recipebox-backend/internal/services"
)

type IngredientHandler struct {
	log               *logger.Logger
	ingredientService services.IngredientService
}

func NewIngredientHandler(log *logger.Logger, ingredientService services.IngredientService) *IngredientHandler {
	return &IngredientHandler{
		log:               log.With("handler", "IngredientHandler"),
		ingredientService: ingredientService,
	}
}

func (h *IngredientHandler) List(c *gin.Context) {
	ingredients, err := h.ingredientService.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, ingredients)
}

func (h *IngredientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.MapError(c, apperr.ErrNotFound)
		return
	}
	ingredient, err := h.ingredientService.Get(c.Request.Context(), id)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, ingredient)
}
