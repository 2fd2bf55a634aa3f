package handler

import (
	"net/http"

	"mebelstore/internal/app/admin/repository"
	"mebelstore/pkg/logger"
	"mebelstore/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers - набор хендлеров, который монтирует роутер
type Handlers struct {
	Product  *ProductHandler
	Taxonomy *TaxonomyHandler
	Store    *StoreHandler
	Auth     *AuthHandler
	Group    *GroupHandler
	Image    *ImageHandler
}

// SetupRoutes настраивает все маршруты приложения с использованием Gin.
// Картинки и вход/регистрация публичны, остальное за Bearer токеном.
func SetupRoutes(h Handlers, authMiddleware *AuthMiddleware, auditRepo repository.AuditRepository, allowOrigins []string) *gin.Engine {
	router := gin.New()

	// Recovery middleware для обработки panic
	router.Use(gin.Recovery())

	// JSON logging middleware для HTTP-запросов
	router.Use(logger.GinLoggerMiddleware())

	// Prometheus metrics middleware
	router.Use(metrics.GinPrometheusMiddleware("admin"))

	// CORS настройки
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "admin",
		})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	// Публичные эндпоинты: вход, регистрация и выдача картинок.
	// Картинки открыты, потому что Telegram забирает их по URL.
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/product/image/:filename", h.Image.Get)
	api.GET("/store/image/:filename", h.Image.Get)

	// Защищенные эндпоинты
	protected := api.Group("")
	protected.Use(authMiddleware.Authenticate())
	protected.Use(AuditMiddleware(auditRepo))
	{
		auth := protected.Group("/auth")
		{
			auth.GET("/admins", h.Auth.ListAdmins)
			auth.DELETE("/delete/:id", h.Auth.DeleteAdmin)
		}

		product := protected.Group("/product")
		{
			product.POST("", h.Product.Create)
			product.GET("", h.Product.List)
			product.GET("/:id", h.Product.Get)
			product.PUT("/:id", h.Product.Update)
			product.DELETE("/:id", h.Product.Delete)
			product.POST("/image", h.Product.AttachImages)

			product.POST("/catalog", h.Taxonomy.CreateCatalog)
			product.GET("/catalog", h.Taxonomy.ListCatalogs)
			product.GET("/catalog/:id", h.Taxonomy.GetCatalog)
			product.PUT("/catalog/:id", h.Taxonomy.UpdateCatalog)
			product.DELETE("/catalog/:id", h.Taxonomy.DeleteCatalog)

			product.POST("/category", h.Taxonomy.CreateCategory)
			product.GET("/category", h.Taxonomy.ListCategories)
			product.GET("/category/:id", h.Taxonomy.GetCategory)
			product.PUT("/category/:id", h.Taxonomy.UpdateCategory)
			product.DELETE("/category/:id", h.Taxonomy.DeleteCategory)

			product.POST("/manufacturer", h.Taxonomy.CreateManufacturer)
			product.GET("/manufacturer", h.Taxonomy.ListManufacturers)
			product.GET("/manufacturer/:id", h.Taxonomy.GetManufacturer)
			product.PUT("/manufacturer/:id", h.Taxonomy.UpdateManufacturer)
			product.DELETE("/manufacturer/:id", h.Taxonomy.DeleteManufacturer)
		}

		store := protected.Group("/store")
		{
			store.POST("/info", h.Store.CreateStore)
			store.GET("/info", h.Store.GetStore)
			store.PUT("/info", h.Store.UpdateStore)

			store.POST("/address", h.Store.CreateAddress)
			store.GET("/address", h.Store.ListAddresses)
			store.PUT("/address/:id", h.Store.UpdateAddress)
			store.DELETE("/address/:id", h.Store.DeleteAddress)

			store.POST("/phone", h.Store.CreatePhone)
			store.GET("/phone", h.Store.ListPhones)
			store.GET("/phone/:id", h.Store.GetPhone)
			store.PUT("/phone/:id", h.Store.UpdatePhone)
			store.DELETE("/phone/:id", h.Store.DeletePhone)

			store.POST("/email", h.Store.CreateEmail)
			store.GET("/email", h.Store.ListEmails)
			store.GET("/email/:id", h.Store.GetEmail)
			store.PUT("/email/:id", h.Store.UpdateEmail)
			store.DELETE("/email/:id", h.Store.DeleteEmail)

			store.POST("/image", h.Store.AddImages)
			store.DELETE("/image/:id", h.Store.DeleteImage)
		}

		telegram := protected.Group("/telegram")
		{
			telegram.POST("/group", h.Group.Create)
			telegram.GET("/group", h.Group.List)
			telegram.DELETE("/group/:id", h.Group.Delete)
		}
	}

	return router
}
