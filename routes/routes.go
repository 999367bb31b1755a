package routes

import (
	"github.com/pcadcreative/foodexpress/configs"
	"github.com/pcadcreative/foodexpress/controllers"
	"github.com/pcadcreative/foodexpress/middlewares"
	"github.com/pcadcreative/foodexpress/pkg/metrics"
	"github.com/pcadcreative/foodexpress/repository"
	"github.com/pcadcreative/foodexpress/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", metrics.Handler())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	prefRepo := repository.NewPreferenceRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	notifier := services.NewPreferenceNotifier(cfg.RecommendationServiceURL, cfg.InternalAPISecret)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, notifier)
	recSvc := services.NewRecommendationService(prefRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	recCtrl := controllers.NewRecommendationController(recSvc)
	internalCtrl := controllers.NewInternalController(recSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Authenticated API
	api := r.Group("/api", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		api.GET("/cities", catalogCtrl.Cities)
		api.GET("/restaurants", catalogCtrl.Restaurants)
		api.GET("/restaurants/:id", catalogCtrl.RestaurantDetail)
		api.GET("/restaurants/:id/menu", catalogCtrl.Menu)

		api.POST("/cart/add", cartCtrl.Add)
		api.PUT("/cart/update", cartCtrl.Update)
		api.GET("/cart", cartCtrl.Get)
		api.DELETE("/cart/clear", cartCtrl.Clear)

		api.POST("/orders", orderCtrl.Create)
		api.GET("/orders/:id", orderCtrl.Detail)
		api.GET("/orders", orderCtrl.List)

		api.GET("/recommendations", recCtrl.Get)
	}

	// Service-to-service
	internal := r.Group("/internal", middlewares.InternalAuthMiddleware(cfg.InternalAPISecret))
	{
		internal.POST("/recommendation/update", internalCtrl.UpdatePreferences)
	}
}
