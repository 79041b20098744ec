package api

import (
	"task_tracker/internal/middleware" // Session middleware
	"task_tracker/internal/service"    // Auth and task services

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// NewRouter wires every route of the application. rdb may be nil, in
// which case the task-list cache is disabled.
func NewRouter(db *gorm.DB, rdb *redis.Client, secret, templatesGlob string) *gin.Engine {
	r := gin.Default()            // Gin router instance
	r.LoadHTMLGlob(templatesGlob) // Server-rendered views

	authSvc := service.NewAuthService(db) // Credential and identity operations
	taskSvc := service.NewTaskService(db) // Ownership-checked task operations

	r.GET("/health", HealthHandler) // Liveness probe

	// Public routes
	r.GET("/", IndexHandler(secret))
	r.GET("/register", RegisterPageHandler())
	r.POST("/register", RegisterHandler(authSvc))
	r.GET("/login", LoginPageHandler())
	r.POST("/login", LoginHandler(authSvc, secret))

	// Authenticated routes; anonymous requests redirect to /login
	authed := r.Group("/", middleware.SessionAuth(authSvc, secret))
	authed.GET("/logout", LogoutHandler())
	authed.GET("/dashboard", DashboardHandler(taskSvc, rdb))
	authed.POST("/add", AddTaskHandler(taskSvc, rdb))
	authed.GET("/update/:id", UpdateTaskPageHandler(taskSvc))
	authed.POST("/update/:id", UpdateTaskHandler(taskSvc, rdb))
	authed.GET("/toggle/:id", ToggleTaskHandler(taskSvc, rdb))
	authed.GET("/delete/:id", DeleteTaskHandler(taskSvc, rdb))
	authed.GET("/clear_all", ClearAllHandler(taskSvc, rdb))

	return r
}
