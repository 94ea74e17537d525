// Package router assembles the HTTP surface of the service.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"assetboard/internal/config"
	"assetboard/internal/handlers"
	"assetboard/internal/middleware"
	"assetboard/internal/services"

	_ "assetboard/internal/docs" // Import swagger docs
)

// Services groups the services the routes are served by.
type Services struct {
	Sessions  services.SessionServicer
	Datasets  services.DatasetServicer
	Analytics services.AnalyticsServicer
}

// New builds the Gin engine with middleware and every route registered.
func New(cfg *config.Config, svc Services) *gin.Engine {
	secret := []byte(cfg.SessionSecret)

	sessionHandler := handlers.NewSessionHandler(svc.Sessions, secret)
	datasetHandler := handlers.NewDatasetHandler(svc.Datasets, cfg.MaxUploadBytes)
	analyticsHandler := handlers.NewAnalyticsHandler(svc.Analytics, svc.Datasets, cfg.DisplayCurrency)

	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/sessions", sessionHandler.CreateSession)

	// Session routes
	protected := v1.Group("/")
	protected.Use(middleware.SessionMiddleware(secret, svc.Sessions))

	dataset := protected.Group("/dataset")
	dataset.POST("", datasetHandler.UploadDataset)
	dataset.POST("/sample", datasetHandler.LoadSample)
	dataset.GET("", datasetHandler.GetDataset)

	protected.GET("/investors", datasetHandler.ListInvestors)

	investor := protected.Group("/investors/:investor")
	investor.GET("/summary", analyticsHandler.GetSummary)
	investor.GET("/records", analyticsHandler.GetRecords)
	investor.GET("/rankings", analyticsHandler.GetRankings)
	investor.GET("/rankings/chart.png", analyticsHandler.GetRankingChart)
	investor.GET("/breakdowns", analyticsHandler.GetBreakdown)
	investor.GET("/breakdowns/chart.png", analyticsHandler.GetBreakdownChart)
	investor.GET("/dashboard", analyticsHandler.GetDashboard)
	investor.GET("/report", analyticsHandler.GetReport)

	return router
}

// corsConfig allows every origin when origins is "*" and the listed
// origins otherwise.
func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	c.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	c.AddAllowHeaders("Authorization", "X-Request-ID")
	c.ExposeHeaders = []string{"Content-Length", "X-Request-ID"}
	return c
}
