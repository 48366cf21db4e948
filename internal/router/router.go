// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wealthflow/wealthflow-backend/internal/ai"
	"github.com/wealthflow/wealthflow-backend/internal/config"
	"github.com/wealthflow/wealthflow-backend/internal/handlers"
	"github.com/wealthflow/wealthflow-backend/internal/middleware"
	"github.com/wealthflow/wealthflow-backend/internal/seed"
	"github.com/wealthflow/wealthflow-backend/internal/services"
	"github.com/wealthflow/wealthflow-backend/internal/state"
)

func Initialize(cfg *config.Config, generator ai.Generator) (*gin.Engine, error) {
	// Session state: one shell, seeded in memory
	shell := state.NewShell(
		seed.User(),
		seed.Courses(),
		seed.Posts(),
		state.WithToastTTL(time.Duration(cfg.App.ToastTTLms)*time.Millisecond),
	)

	// Initialize services
	clipboardService := services.NewClipboardService()
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	courseService := services.NewCourseService(shell, clipboardService, cfg)
	postService := services.NewPostService(shell)
	userService := services.NewUserService(shell, storageService)
	ideaService := services.NewIdeaService(shell, generator, seed.Ideas())
	coachService := services.NewCoachService(shell, generator)

	// Initialize handlers
	stateHandler := handlers.NewStateHandler(shell, ideaService, coachService)
	courseHandler := handlers.NewCourseHandler(courseService)
	postHandler := handlers.NewPostHandler(postService)
	ideaHandler := handlers.NewIdeaHandler(ideaService)
	coachHandler := handlers.NewCoachHandler(coachService)
	profileHandler := handlers.NewProfileHandler(userService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Navigation and shell state
		st := v1.Group("/state")
		{
			st.GET("", stateHandler.GetState)
			st.POST("/navigate", stateHandler.Navigate)
			st.POST("/theme", stateHandler.ToggleTheme)
			st.PUT("/language", stateHandler.SetLanguage)
			st.DELETE("/toast", stateHandler.DismissToast)
		}

		v1.GET("/dashboard", stateHandler.GetDashboard)

		// Marketplace
		courses := v1.Group("/courses")
		{
			courses.GET("", courseHandler.GetCourses)
			courses.GET("/:id", courseHandler.GetCourse)
			courses.POST("", courseHandler.PublishCourse)
			courses.POST("/share-link", courseHandler.ShareLink)
		}

		// Community feed
		posts := v1.Group("/posts")
		{
			posts.GET("", postHandler.GetPosts)
			posts.POST("", postHandler.PublishPost)
			posts.POST("/:id/like", postHandler.ToggleLike)
		}

		// Ideas
		ideas := v1.Group("/ideas")
		{
			ideas.GET("", ideaHandler.GetIdeas)
			ideas.GET("/suggestion", ideaHandler.GetSuggestion)
			ideas.GET("/:id", ideaHandler.GetIdea)
			ideas.POST("/generate", middleware.AIRateLimit(), ideaHandler.GenerateIdea)
		}

		// AI coach
		coach := v1.Group("/coach")
		{
			coach.GET("", coachHandler.GetTranscript)
			coach.POST("/messages", middleware.AIRateLimit(), coachHandler.SendMessage)
			coach.POST("/reset", coachHandler.ResetSession)
		}

		// Profile
		profile := v1.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
			profile.POST("/avatar", middleware.UploadRateLimit(), profileHandler.UploadAvatar)
		}
	}

	return r, nil
}
