package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/in-nis/bogyul-back/docs"
	"github.com/in-nis/bogyul-back/internal/auth"
	"github.com/in-nis/bogyul-back/internal/config"
	"github.com/in-nis/bogyul-back/internal/logger"
)

// @title           Bogyul API
// @version         1.0
// @description     Substitute class planner: timetables, content auto-assignment and saved plans.
// @host            localhost:8000
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func SetupRouter(cfg *config.Config, h *Handler, log *zap.Logger) *gin.Engine {
	auth.InitGoogle(cfg)

	r := gin.New()
	r.Use(gin.Recovery(), logger.Gin(log))

	// Public routes
	r.GET("/health", h.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Google login
	r.GET("/auth/google/login", auth.GoogleLoginHandler())
	r.GET("/auth/google/callback", auth.GoogleCallbackHandler(cfg, h.users, log))
	r.POST("/auth/refresh", auth.RefreshHandler(cfg))

	r.GET("/catalog", h.GetCatalog)

	planner := r.Group("/schedule")
	{
		planner.GET("/template", h.GetTemplate)
		planner.POST("/toggle", h.ToggleStatus)
		planner.POST("/status", h.SetStatus)
		planner.POST("/auto-assign", h.AutoAssign)
		planner.POST("/art", h.AssignArt)
		planner.POST("/import", h.ImportTimetable)
	}

	r.GET("/records", h.ListRecords)
	r.GET("/records/export", h.ExportRecords)
	r.GET("/records/:id", h.GetRecord)
	r.GET("/records/:id/export", h.ExportRecord)

	// Protected
	authGroup := r.Group("/")
	authGroup.Use(auth.AuthMiddleware(cfg))
	{
		authGroup.POST("/records", h.CreateRecord)
		authGroup.PATCH("/records/:id", h.UpdateRecord)
		authGroup.DELETE("/records/:id", h.DeleteRecord)
		authGroup.GET("/me", h.GetMe)
	}

	return r
}
