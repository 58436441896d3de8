package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere/internal/handlers"
	"github.com/synergysphere/synergysphere/internal/middleware"
	"github.com/synergysphere/synergysphere/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", handlers.Liveness)
	r.GET("/health", handlers.HealthCheck)
	r.GET("/ws/:project_id", middleware.AuthMiddleware(), handlers.WebSocket)

	users := r.Group("/users")
	{
		users.POST("/register", handlers.RegisterUser)
		users.POST("/login", handlers.LoginUser)
		users.GET("/me", middleware.AuthMiddleware(), handlers.Me)
	}

	projects := r.Group("/projects", middleware.AuthMiddleware())
	{
		projects.POST("", handlers.CreateProject)
		projects.GET("", handlers.ListProjects)

		// Discussion threads scoped to a project
		projects.POST("/:project_id/discussions", handlers.CreateDiscussion)
		projects.GET("/:project_id/discussions", handlers.ListDiscussions)
	}

	tasks := r.Group("/tasks", middleware.AuthMiddleware())
	{
		tasks.POST("", handlers.CreateTask)
		tasks.GET("", handlers.ListTasks)
	}

	discussions := r.Group("/discussions", middleware.AuthMiddleware())
	{
		discussions.POST("/:discussion_id/comments", handlers.CreateComment)
		discussions.GET("/:discussion_id/comments", handlers.ListComments)
	}

	return r
}
