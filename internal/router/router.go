package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/karzeg/ztp-project-blog/internal/handlers"
	"github.com/karzeg/ztp-project-blog/internal/middleware"
)

func NewRouter(h *handlers.Handler, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.POST("/logout", h.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), h.Me)
		}

		// Reading is public; every mutation goes through the auth middleware
		// and the policy layer.
		api.GET("/posts", h.ListPosts)
		api.GET("/posts/:id", h.GetPost)
		api.GET("/categories", h.ListCategories)
		api.GET("/categories/:id", h.GetCategory)
		api.GET("/tags", h.ListTags)
		api.GET("/tags/:id", h.GetTag)

		authorized := api.Group("", middleware.AuthMiddleware())
		{
			authorized.POST("/posts", h.CreatePost)
			authorized.PUT("/posts/:id", h.UpdatePost)
			authorized.DELETE("/posts/:id", h.DeletePost)

			authorized.POST("/posts/:id/comments", h.CreateComment)
			authorized.PUT("/comments/:id", h.UpdateComment)
			authorized.DELETE("/comments/:id", h.DeleteComment)

			authorized.POST("/categories", h.CreateCategory)
			authorized.PUT("/categories/:id", h.UpdateCategory)
			authorized.DELETE("/categories/:id", h.DeleteCategory)

			authorized.POST("/tags", h.CreateTag)
			authorized.PUT("/tags/:id", h.UpdateTag)
			authorized.DELETE("/tags/:id", h.DeleteTag)

			authorized.GET("/users", h.ListUsers)
			authorized.GET("/users/:id", h.GetUser)
			authorized.PUT("/users/:id/password", h.ChangePassword)
		}
	}

	return r
}
