package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/recipebox/recipebox-backend/internal/http/response"
	"github.com/recipebox/recipebox-backend/internal/pkg/apperr"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
	"github.com/recipebox/recipebox-backend/internal/requestdata"
	"github.com/recipebox/recipebox-backend/internal/services"
)

const defaultPageSize = 6

type RecipeHandler struct {
	log                 *logger.Logger
	recipeService       services.RecipeService
	membershipService   services.MembershipService
	shoppingListService services.ShoppingListService
}

func NewRecipeHandler(
	log *logger.Logger,
	recipeService services.RecipeService,
	membershipService services.MembershipService,
	shoppingListService services.ShoppingListService,
) *RecipeHandler {
	return &RecipeHandler{
		log:                 log.With("handler", "RecipeHandler"),
		recipeService:       recipeService,
		membershipService:   membershipService,
		shoppingListService: shoppingListService,
	}
}

type recipeRequest struct {
	Name        *string                     `json:"name"`
	Text        *string                     `json:"text"`
	Image       *string                     `json:"image"`
	CookingTime *int                        `json:"cooking_time"`
	Ingredients []services.IngredientAmount `json:"ingredients"`
	Tags        []uuid.UUID                 `json:"tags"`
}

func (r recipeRequest) payload() services.RecipePayload {
	return services.RecipePayload{
		Name:        r.Name,
		Text:        r.Text,
		Image:       r.Image,
		CookingTime: r.CookingTime,
		Ingredients: r.Ingredients,
		TagIDs:      r.Tags,
	}
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	view, err := h.recipeService.Create(c.Request.Context(), req.payload())
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondCreated(c, view)
}

func (h *RecipeHandler) Update(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.MapError(c, apperr.ErrNotFound)
		return
	}
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	if err := h.requireAuthor(c, recipeID); err != nil {
		response.MapError(c, err)
		return
	}
	view, err := h.recipeService.Update(c.Request.Context(), recipeID, req.payload())
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, view)
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.MapError(c, apperr.ErrNotFound)
		return
	}
	if err := h.requireAuthor(c, recipeID); err != nil {
		response.MapError(c, err)
		return
	}
	if err := h.recipeService.Delete(c.Request.Context(), recipeID); err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// requireAuthor keeps ownership checks at the HTTP boundary; the mutation
// service itself trusts the caller.
func (h *RecipeHandler) requireAuthor(c *gin.Context, recipeID uuid.UUID) error {
	view, err := h.recipeService.Get(c.Request.Context(), recipeID)
	if err != nil {
		return err
	}
	if view.Author.ID != requestdata.UserID(c.Request.Context()) {
		return apperr.ErrForbidden
	}
	return nil
}

func (h *RecipeHandler) Get(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.MapError(c, apperr.ErrNotFound)
		return
	}
	view, err := h.recipeService.Get(c.Request.Context(), recipeID)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, view)
}

func (h *RecipeHandler) List(c *gin.Context) {
	filter := services.ListRecipesFilter{
		TagSlugs:      c.QueryArray("tags"),
		OnlyFavorited: boolQuery(c, "is_favorited"),
		OnlyInCart:    boolQuery(c, "is_in_shopping_cart"),
		Page:          intQuery(c, "page", 1),
		Limit:         intQuery(c, "limit", defaultPageSize),
	}
	if author := c.Query("author"); author != "" {
		authorID, err := uuid.Parse(author)
		if err != nil {
			response.MapError(c, apperr.ErrNotFound)
			return
		}
		filter.AuthorID = &authorID
	}

	page, err := h.recipeService.List(c.Request.Context(), filter)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, page)
}

func (h *RecipeHandler) AddFavorite(c *gin.Context) {
	h.addMembership(c, services.CollectionFavorites)
}

func (h *RecipeHandler) RemoveFavorite(c *gin.Context) {
	h.removeMembership(c, services.CollectionFavorites)
}

func (h *RecipeHandler) AddToCart(c *gin.Context) {
	h.addMembership(c, services.CollectionCart)
}

func (h *RecipeHandler) RemoveFromCart(c *gin.Context) {
	h.removeMembership(c, services.CollectionCart)
}

func (h *RecipeHandler) addMembership(c *gin.Context, collection services.Collection) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.MapError(c, apperr.ErrNotFound)
		return
	}
	summary, err := h.membershipService.Add(c.Request.Context(), collection, recipeID)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondCreated(c, summary)
}

func (h *RecipeHandler) removeMembership(c *gin.Context, collection services.Collection) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.MapError(c, apperr.ErrNotFound)
		return
	}
	if err := h.membershipService.Remove(c.Request.Context(), collection, recipeID); err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondNoContent(c)
}

func (h *RecipeHandler) DownloadShoppingCart(c *gin.Context) {
	report, err := h.shoppingListService.Generate(c.Request.Context())
	if err != nil {
		response.MapError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=shopping_list.txt")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report))
}

func boolQuery(c *gin.Context, key string) bool {
	switch c.Query(key) {
	case "1", "true", "True":
		return true
	default:
		return false
	}
}

func intQuery(c *gin.Context, key string, defaultVal int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 1 {
		return defaultVal
	}
	return val
}
