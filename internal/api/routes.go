package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/core"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/middleware"
)

// Services bundles the core services the routes depend on, so main.go
// constructs everything once and hands it over explicitly.
type Services struct {
	User      core.UserService
	Interview core.InterviewService
	Report    core.ReportService
	Mock      core.MockInterviewService
	Community core.CommunityService
	Contact   core.ContactService
	Resource  core.ResourceService
}

// SetupRoutes configures all the application routes with their handlers and
// middleware. Global middleware (Logging, Recovery, CORS) is expected to be
// applied to the router before this function is called, typically in main.go.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	verifier middleware.TokenVerifier,
	services Services,
) {
	authMW := middleware.NewAuthMiddleware(verifier)

	authHandler := NewAuthHandler(services.User, logger)
	userHandler := NewUserHandler(services.User, logger)
	interviewHandler := NewInterviewHandler(services.Interview, logger)
	reportHandler := NewReportHandler(services.Report, logger)
	mockHandler := NewMockInterviewHandler(services.Mock, logger)
	communityHandler := NewCommunityHandler(services.Community, logger)
	contactHandler := NewContactHandler(services.Contact, logger)
	resourceHandler := NewResourceHandler(services.Resource)

	apiGroup := router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth", authMW.VerifyToken())
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", userHandler.Me)
			authGroup.PUT("/update-profile", userHandler.UpdateProfile)
			authGroup.DELETE("/delete", userHandler.DeleteAccount)
			authGroup.POST("/bookmarks", userHandler.AddBookmark)
			authGroup.DELETE("/bookmarks/:refId", userHandler.RemoveBookmark)
		}

		interviewGroup := apiGroup.Group("/interview", authMW.VerifyToken())
		{
			interviewGroup.POST("/setup", interviewHandler.Setup)
			interviewGroup.GET("", interviewHandler.List)
			interviewGroup.GET("/:id", interviewHandler.Get)
			interviewGroup.POST("/:id/answer", interviewHandler.SubmitAnswer)
		}

		reportGroup := apiGroup.Group("/report", authMW.VerifyToken())
		{
			reportGroup.GET("", reportHandler.List)
			reportGroup.GET("/:interviewId", reportHandler.Get)
		}

		mockGroup := apiGroup.Group("/mock-interview", authMW.VerifyToken())
		{
			mockGroup.GET("", mockHandler.List)
			mockGroup.POST("", mockHandler.Schedule)
		}

		communityGroup := apiGroup.Group("/community-qa", authMW.VerifyToken())
		{
			communityGroup.GET("", communityHandler.List)
			communityGroup.POST("", communityHandler.Post)
			communityGroup.POST("/:id/answers", communityHandler.Answer)
		}

		// Public endpoints: no bearer token needed.
		apiGroup.GET("/leaderboard", userHandler.Leaderboard)
		apiGroup.GET("/resources", resourceHandler.List)
		apiGroup.POST("/contact", contactHandler.Submit)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	logger.Info("API routes configured successfully under /api and /health.")
}
