package routes

import (
	"restaurant-api/handlers"
	"restaurant-api/middleware"
	"restaurant-api/policy"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Menu browsing (no auth needed)
		public.GET("/menu-items", handlers.ListMenuItems)
		public.GET("/menu-items/:id", handlers.GetMenuItem)
		public.GET("/categories", handlers.ListCategories)
		public.GET("/categories/:id", handlers.GetCategory)
	}

	// ── Catalog writes (model-permission gated) ────────────────────
	catalog := r.Group("/api")
	catalog.Use(middleware.AuthRequired())
	{
		menu := catalog.Group("", middleware.ModelPermissionRequired(policy.ResourceMenuItem))
		{
			menu.POST("/menu-items", handlers.CreateMenuItem)
			menu.PUT("/menu-items/:id", handlers.UpdateMenuItem)
			menu.PATCH("/menu-items/:id", handlers.UpdateMenuItem)
			menu.DELETE("/menu-items/:id", handlers.DeleteMenuItem)
		}
		categories := catalog.Group("", middleware.ModelPermissionRequired(policy.ResourceCategory))
		{
			categories.POST("/categories", handlers.CreateCategory)
			categories.PUT("/categories/:id", handlers.UpdateCategory)
			categories.DELETE("/categories/:id", handlers.DeleteCategory)
		}
	}

	// ── Group membership (user model-permission gated) ─────────────
	groups := r.Group("/api/groups")
	groups.Use(middleware.AuthRequired(), middleware.ModelPermissionRequired(policy.ResourceUser))
	{
		groups.GET("/:name/users", handlers.ListGroupUsers)
		groups.POST("/:name/users", handlers.AddGroupUser)
		groups.DELETE("/:name/users", handlers.RemoveGroupUser)
	}

	// ── Cart and orders (any authenticated user) ───────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)

		auth.GET("/cart/menu-items", handlers.GetCart)
		auth.POST("/cart/menu-items", handlers.AddToCart)
		auth.DELETE("/cart/menu-items", handlers.ClearCart)

		auth.GET("/orders", handlers.ListOrders)
		auth.POST("/orders", handlers.Checkout)
		auth.GET("/orders/:id", handlers.GetOrder)
		auth.PUT("/orders/:id", handlers.AssignOrder)
		auth.DELETE("/orders/:id",
			middleware.ModelPermissionRequired(policy.ResourceOrder), handlers.DeleteOrder)
	}
}
