package router

import (
	"upishield/internal/handlers"
	"upishield/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	verifyHandler := handlers.NewVerifyHandler()
	voteHandler := handlers.NewVoteHandler()
	reportHandler := handlers.NewReportHandler()
	userHandler := handlers.NewUserHandler()
	leaderboardHandler := handlers.NewLeaderboardHandler()

	// Public Routes
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.GET("/leaderboard", leaderboardHandler.List)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/resolve", verifyHandler.Resolve)
		authorized.POST("/verify", verifyHandler.Verify)
		authorized.GET("/identity/:handle", verifyHandler.Identity)
		authorized.POST("/vote", voteHandler.Cast)
		authorized.POST("/report", reportHandler.Create)
		authorized.GET("/me/reputation", userHandler.Reputation)
	}

	// Admin Routes (report review)
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/reports", reportHandler.List)
		admin.POST("/reports/:id", reportHandler.Resolve)
	}
}
