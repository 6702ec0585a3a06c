package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/baerenfell/backend/internal/infrastructure/config"
	"github.com/baerenfell/backend/internal/infrastructure/logger"
	"github.com/baerenfell/backend/internal/interfaces/http/dto"
	"github.com/baerenfell/backend/internal/interfaces/http/handler"
	"github.com/baerenfell/backend/internal/interfaces/http/middleware"
)

// Handlers bundles the HTTP handlers the router wires up
type Handlers struct {
	System  *handler.SystemHandler
	Artist  *handler.ArtistHandler
	Product *handler.ProductHandler
	Order   *handler.OrderHandler
	Upload  *handler.UploadHandler
}

// Options configures router construction
type Options struct {
	Config    *config.Config
	Logger    *zap.Logger
	Validator middleware.TokenValidator
	Handlers  Handlers

	// StaticUploadsDir serves stored images from disk when the local
	// storage backend is active. Empty disables the route.
	StaticUploadsDir string
}

// New builds the gin engine with all routes and middleware attached
func New(opts Options) *gin.Engine {
	if opts.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	dto.RegisterCustomValidators()

	engine := gin.New()
	if len(opts.Config.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(opts.Config.HTTP.TrustedProxies)
	}

	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(opts.Config.HTTP))
	engine.Use(logger.GinMiddleware(opts.Logger))
	engine.Use(logger.Recovery(opts.Logger))
	engine.Use(middleware.BodyLimit(opts.Config.HTTP.MaxBodySize))

	engine.GET("/health", opts.Handlers.System.Health)

	if opts.StaticUploadsDir != "" {
		engine.Static("/uploads", opts.StaticUploadsDir)
	}

	requireAuth := middleware.JWTAuth(opts.Validator)
	requireAdmin := middleware.RequireAdmin()

	api := engine.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", opts.Handlers.Product.List)
			products.GET("/:id", opts.Handlers.Product.Get)
			products.POST("", requireAuth, requireAdmin, opts.Handlers.Product.Create)
			products.PUT("/:id", requireAuth, requireAdmin, opts.Handlers.Product.Update)
			products.PUT("/:id/stock", requireAuth, requireAdmin, opts.Handlers.Product.UpdateStock)
			products.DELETE("/:id", requireAuth, requireAdmin, opts.Handlers.Product.Delete)
		}

		artists := api.Group("/artists")
		{
			artists.GET("", opts.Handlers.Artist.List)
			artists.GET("/:id", opts.Handlers.Artist.Get)
			artists.POST("", requireAuth, requireAdmin, opts.Handlers.Artist.Create)
			artists.PUT("/:id", requireAuth, requireAdmin, opts.Handlers.Artist.Update)
			artists.DELETE("/:id", requireAuth, requireAdmin, opts.Handlers.Artist.Delete)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", middleware.OptionalJWTAuth(opts.Validator), opts.Handlers.Order.Place)
			orders.GET("", requireAuth, requireAdmin, opts.Handlers.Order.List)
			orders.GET("/my/orders", requireAuth, opts.Handlers.Order.MyOrders)
			orders.GET("/:id", middleware.OptionalJWTAuth(opts.Validator), opts.Handlers.Order.Get)
			orders.PUT("/:id/status", requireAuth, requireAdmin, opts.Handlers.Order.UpdateStatus)
		}

		uploads := api.Group("/upload", requireAuth, requireAdmin)
		{
			uploads.POST("/:kind", opts.Handlers.Upload.Upload)
			uploads.DELETE("/*path", opts.Handlers.Upload.Delete)
		}
	}

	return engine
}
