package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cinelog/cinelog-backend/config"
	"github.com/cinelog/cinelog-backend/internal/app/controller"
	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/middleware"
)

type Router struct {
	authController         *controller.AuthController
	categoryController     *controller.CategoryController
	movieController        *controller.MovieController
	personController       *controller.PersonController
	reviewController       *controller.ReviewController
	replyController        *controller.ReplyController
	likeController         *controller.LikeController
	notificationController *controller.NotificationController
	uploadController       *controller.UploadController
	exportController       *controller.ExportController
	authMiddleware         *middleware.AuthMiddleware
	config                 *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	movieController *controller.MovieController,
	personController *controller.PersonController,
	reviewController *controller.ReviewController,
	replyController *controller.ReplyController,
	likeController *controller.LikeController,
	notificationController *controller.NotificationController,
	uploadController *controller.UploadController,
	exportController *controller.ExportController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:         authController,
		categoryController:     categoryController,
		movieController:        movieController,
		personController:       personController,
		reviewController:       reviewController,
		replyController:        replyController,
		likeController:         likeController,
		notificationController: notificationController,
		uploadController:       uploadController,
		exportController:       exportController,
		authMiddleware:         authMiddleware,
		config:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "CineLog API is running",
		})
	})

	authed := r.authMiddleware.Authenticate()
	adminOnly := r.authMiddleware.RequireRole(model.RoleAdmin)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", authed, r.authController.Logout)
			auth.POST("/forgot-password", r.authController.ForgotPassword)
			auth.POST("/reset-password", r.authController.ResetPassword)
			auth.GET("/me", authed, r.authController.Me)
			auth.PUT("/me", authed, r.authController.UpdateMe)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.GET("/tree", r.categoryController.Tree)
			categories.GET("/:id", r.categoryController.Get)
			categories.POST("", authed, adminOnly, r.categoryController.Create)
			categories.PUT("/:id", authed, adminOnly, r.categoryController.Update)
			categories.DELETE("/:id", authed, adminOnly, r.categoryController.Delete)
		}

		movies := v1.Group("/movies")
		{
			movies.GET("", r.movieController.List)
			movies.GET("/by-url/:url", r.movieController.GetByURL)
			movies.GET("/:id", r.movieController.Get)
			movies.POST("", authed, adminOnly, r.movieController.Create)
			movies.PUT("/:id", authed, adminOnly, r.movieController.Update)
			movies.DELETE("/:id", authed, adminOnly, r.movieController.Delete)

			movies.POST("/:id/genres", authed, adminOnly, r.movieController.AttachGenre)
			movies.DELETE("/:id/genres/:genreID", authed, adminOnly, r.movieController.DetachGenre)
			movies.POST("/:id/keywords", authed, adminOnly, r.movieController.AttachKeyword)
			movies.DELETE("/:id/keywords/:keywordID", authed, adminOnly, r.movieController.DetachKeyword)
			movies.POST("/:id/companies", authed, adminOnly, r.movieController.AttachCompany)
			movies.DELETE("/:id/companies/:companyID", authed, adminOnly, r.movieController.DetachCompany)
			movies.POST("/:id/languages", authed, adminOnly, r.movieController.AttachLanguage)
			movies.DELETE("/:id/languages/:languageID", authed, adminOnly, r.movieController.DetachLanguage)
			movies.POST("/:id/countries", authed, adminOnly, r.movieController.AttachCountry)
			movies.DELETE("/:id/countries/:countryID", authed, adminOnly, r.movieController.DetachCountry)

			movies.GET("/:id/staff", r.movieController.ListStaff)
			movies.POST("/:id/staff", authed, adminOnly, r.movieController.AssignStaff)
			movies.DELETE("/:id/staff/:personID", authed, adminOnly, r.movieController.RemoveStaff)

			movies.GET("/:id/reviews", r.reviewController.ListForMovie)
			movies.POST("/:id/reviews", authed, r.reviewController.Create)
		}

		people := v1.Group("/people")
		{
			people.GET("", r.personController.List)
			people.GET("/by-url/:url", r.personController.GetByURL)
			people.GET("/:id", r.personController.Get)
			people.POST("", authed, adminOnly, r.personController.Create)
			people.PUT("/:id", authed, adminOnly, r.personController.Update)
			people.DELETE("/:id", authed, adminOnly, r.personController.Delete)

			people.POST("/:id/follow", authed, r.personController.Follow)
			people.DELETE("/:id/follow", authed, r.personController.Unfollow)
		}

		v1.GET("/me/followings", authed, r.personController.ListFollowings)

		reviews := v1.Group("/reviews")
		{
			reviews.GET("", r.reviewController.List)
			reviews.GET("/:id", r.reviewController.Get)
			reviews.PATCH("/:id", authed, r.reviewController.Update)
			reviews.DELETE("/:id", authed, r.reviewController.Delete)
			reviews.GET("/:id/replies", r.replyController.ListForReview)
		}

		replies := v1.Group("/replies")
		{
			replies.POST("", authed, r.replyController.Create)
			replies.GET("/:id", r.replyController.Get)
			replies.GET("/:id/replies", r.replyController.ListChildren)
			replies.PATCH("/:id", authed, r.replyController.Update)
			replies.DELETE("/:id", authed, r.replyController.Delete)
		}

		likes := v1.Group("/likes")
		{
			likes.POST("", authed, r.likeController.React)
			likes.GET("/:type/:id", r.likeController.Counts)
			likes.DELETE("/:type/:id", authed, r.likeController.Unreact)
		}

		notifications := v1.Group("/notifications")
		notifications.Use(authed)
		{
			notifications.GET("", r.notificationController.List)
			notifications.GET("/unread-count", r.notificationController.UnreadCount)
			notifications.GET("/stream", r.notificationController.Stream)
			notifications.POST("/read-all", r.notificationController.MarkAllRead)
			notifications.POST("/:id/read", r.notificationController.MarkRead)
			notifications.DELETE("/:id", r.notificationController.Delete)
		}

		uploads := v1.Group("/uploads")
		uploads.Use(authed)
		{
			uploads.POST("/presign", r.uploadController.Presign)
		}

		admin := v1.Group("/admin")
		admin.Use(authed, adminOnly)
		{
			admin.GET("/export/movies", r.exportController.ExportMovies)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
