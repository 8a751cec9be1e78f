package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/recipebox/recipebox-backend/internal/http/handlers"
	httpMW "github.com/recipebox/recipebox-backend/internal/http/middleware"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthMiddleware *httpMW.AuthMiddleware

	AuthHandler       *httpH.AuthHandler
	UserHandler       *httpH.UserHandler
	IngredientHandler *httpH.IngredientHandler
	TagHandler        *httpH.TagHandler
	RecipeHandler     *httpH.RecipeHandler
	HealthHandler     *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}

		// Catalogs and recipe reads are public; a present token still
		// personalizes the booleans.
		public := api.Group("/")
		if cfg.AuthMiddleware != nil {
			public.Use(cfg.AuthMiddleware.OptionalAuth())
		}
		{
			if cfg.IngredientHandler != nil {
				public.GET("/ingredients", cfg.IngredientHandler.List)
				public.GET("/ingredients/:id", cfg.IngredientHandler.Get)
			}
			if cfg.TagHandler != nil {
				public.GET("/tags", cfg.TagHandler.List)
				public.GET("/tags/:id", cfg.TagHandler.Get)
			}
			if cfg.RecipeHandler != nil {
				public.GET("/recipes", cfg.RecipeHandler.List)
				public.GET("/recipes/:id", cfg.RecipeHandler.Get)
			}
		}

		protected := api.Group("/")
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}
		{
			if cfg.UserHandler != nil {
				protected.GET("/me", cfg.UserHandler.GetMe)
				protected.GET("/users/subscriptions", cfg.UserHandler.ListSubscriptions)
				protected.GET("/users/:id", cfg.UserHandler.GetUser)
				protected.POST("/users/:id/subscribe", cfg.UserHandler.Subscribe)
				protected.DELETE("/users/:id/subscribe", cfg.UserHandler.Unsubscribe)
			}
			if cfg.RecipeHandler != nil {
				protected.POST("/recipes", cfg.RecipeHandler.Create)
				protected.GET("/recipes/download_shopping_cart", cfg.RecipeHandler.DownloadShoppingCart)
				protected.PATCH("/recipes/:id", cfg.RecipeHandler.Update)
				protected.DELETE("/recipes/:id", cfg.RecipeHandler.Delete)
				protected.POST("/recipes/:id/favorite", cfg.RecipeHandler.AddFavorite)
				protected.DELETE("/recipes/:id/favorite", cfg.RecipeHandler.RemoveFavorite)
				protected.POST("/recipes/:id/shopping_cart", cfg.RecipeHandler.AddToCart)
				protected.DELETE("/recipes/:id/shopping_cart", cfg.RecipeHandler.RemoveFromCart)
			}
		}
	}

	return r
}
