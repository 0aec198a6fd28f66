// Package api builds the HTTP surface: middleware, route registration and
// the Prometheus scrape endpoint.
package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	iauth "github.com/empowerher/empowerher/internal/auth"
	"github.com/empowerher/empowerher/internal/handlers"
	"github.com/empowerher/empowerher/internal/matching"
	"github.com/empowerher/empowerher/internal/middleware"
	"github.com/empowerher/empowerher/internal/realtime"
	"github.com/empowerher/empowerher/internal/userstate"
)

// Deps carries everything the router needs.
type Deps struct {
	DB       *gorm.DB
	JWT      *iauth.JWTService
	Accounts *iauth.AccountService
	Registry *userstate.Registry
	Engine   *matching.Engine
	Hub      *realtime.Hub
}

// NewRouter builds the Gin engine, wires middleware and registers all routes.
func NewRouter(deps Deps) (*gin.Engine, error) {
	if deps.DB == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if deps.JWT == nil {
		return nil, fmt.Errorf("jwt service must be provided")
	}
	if deps.Registry == nil {
		return nil, fmt.Errorf("state registry must be provided")
	}
	if deps.Engine == nil {
		return nil, fmt.Errorf("matching engine must be provided")
	}

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.NoRoute(middleware.NotFoundHandler)

	healthHandler := handlers.NewHealthHandler(deps.DB)
	r.GET("/api/health", healthHandler.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := handlers.NewAuthHandler(deps.Accounts, deps.JWT, deps.Registry)

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	requireAuth := middleware.Auth(deps.JWT)
	api := r.Group("/api")
	api.Use(requireAuth)

	api.GET("/auth/me", authHandler.Me)
	api.POST("/auth/logout", authHandler.Logout)

	profileHandler := handlers.NewProfileHandler(deps.Registry)
	profile := api.Group("/profile")
	{
		profile.GET("", profileHandler.Get)
		profile.PATCH("", profileHandler.Update)
		profile.GET("/completion", profileHandler.Completion)
		profile.GET("/streak", profileHandler.Streak)
		profile.POST("/activity", profileHandler.RecordActivity)
	}

	scholarshipHandler := handlers.NewScholarshipHandler(deps.Registry, deps.Engine)
	scholarships := api.Group("/scholarships")
	{
		scholarships.GET("", scholarshipHandler.List)
		scholarships.GET("/recommendations", scholarshipHandler.Recommendations)
		scholarships.GET("/saved", scholarshipHandler.Saved)
		scholarships.GET("/:id", scholarshipHandler.Get)
		scholarships.POST("/:id/save", scholarshipHandler.Save)
		scholarships.DELETE("/:id/save", scholarshipHandler.Unsave)
	}

	applicationHandler := handlers.NewApplicationHandler(deps.Registry)
	applications := api.Group("/applications")
	{
		applications.GET("", applicationHandler.List)
		applications.POST("", applicationHandler.Start)
		applications.POST("/:id/submit", applicationHandler.Submit)
		applications.GET("/status/:id", applicationHandler.Status)
	}

	notificationHandler := handlers.NewNotificationHandler(deps.Registry)
	notifications := api.Group("/notifications")
	{
		notifications.GET("", notificationHandler.List)
		notifications.GET("/unread-count", notificationHandler.UnreadCount)
		notifications.POST("/read-all", notificationHandler.MarkAllRead)
		notifications.POST("/:id/read", notificationHandler.MarkRead)
	}

	mentorHandler := handlers.NewMentorHandler(deps.Registry)
	mentors := api.Group("/mentors")
	{
		mentors.GET("", mentorHandler.List)
		mentors.GET("/:id", mentorHandler.Get)
		mentors.POST("/:id/connect", mentorHandler.Connect)
	}

	premiumHandler := handlers.NewPremiumHandler(deps.Registry)
	premium := api.Group("/premium")
	{
		premium.GET("/plans", premiumHandler.Plans)
		premium.POST("/upgrade", premiumHandler.Upgrade)
	}

	if deps.Hub != nil {
		realtimeHandler := handlers.NewRealtimeHandler(deps.Hub)
		api.GET("/ws/notifications", realtimeHandler.Notifications)
	}

	return r, nil
}
