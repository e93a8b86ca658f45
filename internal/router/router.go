package router

import (
	"github.com/gin-gonic/gin"

	"contractiq/internal/domain"
	"contractiq/internal/handler"
	"contractiq/internal/middleware"
	"contractiq/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	corsOrigins []string,
	authH *handler.AuthHandler,
	contractH *handler.ContractHandler,
	analysisH *handler.AnalysisHandler,
	templateH *handler.TemplateHandler,
	chatH *handler.ChatHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Template catalogue
	protected.GET("/templates", templateH.List)

	// Contract routes
	contracts := protected.Group("/contracts")
	contracts.POST("", contractH.Upload)
	contracts.GET("", contractH.List)
	contracts.GET("/:id", contractH.GetByID)
	contracts.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), contractH.Delete)

	// Analysis
	contracts.POST("/:id/analyze", analysisH.Analyze)
	contracts.GET("/:id/analysis", analysisH.GetAnalysis)
	contracts.GET("/:id/audit", analysisH.Audit)

	// Template compatibility and population
	contracts.GET("/:id/templates", templateH.Compatible)
	contracts.POST("/:id/templates/:name/populate", templateH.Populate)
	contracts.GET("/:id/templates/:name/document", templateH.Document)

	// Reports
	contracts.GET("/:id/report/:format", reportH.Export)

	// Chat
	contracts.POST("/:id/chat", chatH.Ask)
	contracts.GET("/:id/chat", chatH.History)

	return r
}
