package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Isaacjdv/futbolapp-backend/configs"
	"github.com/Isaacjdv/futbolapp-backend/controllers"
	"github.com/Isaacjdv/futbolapp-backend/middlewares"
	"github.com/Isaacjdv/futbolapp-backend/oauth"
	"github.com/Isaacjdv/futbolapp-backend/queue"
	"github.com/Isaacjdv/futbolapp-backend/repository"
	"github.com/Isaacjdv/futbolapp-backend/services"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine. cache may be nil when no Redis is configured.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, events queue.Publisher, cache *redis.Client) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	savedRepo := repository.NewSavedItemRepository(db)
	prefRepo := repository.NewPreferenceRepository(db)
	dishRepo := repository.NewSavedDishRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(cartRepo)
	savedSvc := services.NewSavedItemService(savedRepo)
	prefSvc := services.NewPreferenceService(prefRepo)
	dishSvc := services.NewSavedDishService(dishRepo)
	catalogSvc := services.NewCatalogService(cfg.StoreAPIBase, cfg.UpstreamTimeout, cfg.CatalogLimit, cache)
	refSvc := services.NewReferenceService(cfg.CountriesAPIBase, cfg.UpstreamTimeout, teamRepo)

	google := oauth.NewGoogle(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, google, events)
	cartCtrl := controllers.NewCartController(cartSvc)
	savedCtrl := controllers.NewSavedItemController(savedSvc)
	prefCtrl := controllers.NewPreferenceController(prefSvc)
	dishCtrl := controllers.NewSavedDishController(dishSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc, productRepo)
	refCtrl := controllers.NewReferenceController(refSvc)

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/federated", authCtrl.Federated)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Everything under /api requires a bearer token
	api := r.Group("/api", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		api.GET("/products", catalogCtrl.List)
		api.GET("/products/export", catalogCtrl.Export)

		api.GET("/cart", cartCtrl.List)
		api.POST("/cart/add", cartCtrl.Add)
		api.DELETE("/cart/:id", cartCtrl.Remove)

		api.GET("/saved-items", savedCtrl.List)
		api.POST("/saved-items", savedCtrl.Save)
		api.DELETE("/saved-items/:id", savedCtrl.Remove)

		api.GET("/preference", prefCtrl.Get)
		api.POST("/preference", prefCtrl.Set)

		api.GET("/reference-entities", refCtrl.List)

		api.GET("/saved-dishes", dishCtrl.List)
		api.POST("/saved-dishes", dishCtrl.Save)
		api.DELETE("/saved-dishes/:id", dishCtrl.Remove)
	}
}
