// Package server wires controllers and middleware into the HTTP route table.
package server

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"taskly-be/internal/controllers"
	"taskly-be/internal/middleware"
	"taskly-be/internal/service"
	"taskly-be/internal/session"
)

// RateLimits configures the per-IP limiters. Auth limits apply to login and
// register on top of the general limit.
type RateLimits struct {
	RPS       float64
	Burst     int
	AuthRPS   float64
	AuthBurst int
}

type Deps struct {
	Tasks      service.TaskService
	Categories service.CategoryService
	Auth       service.AuthService
	Users      middleware.UserFinder
	Sessions   *session.Manager
	Limits     RateLimits
	Logger     *log.Logger
}

// NewRouter builds the engine. ctx bounds the rate limiters' background sweeps.
func NewRouter(ctx context.Context, d Deps) *gin.Engine {
	taskController := controllers.NewTaskController(d.Tasks, d.Categories, d.Logger)
	categoryController := controllers.NewCategoryController(d.Categories, d.Logger)
	authController := controllers.NewAuthController(d.Auth, d.Sessions, d.Logger)
	profileController := controllers.NewProfileController(d.Auth, d.Sessions, d.Logger)
	dashboardController := controllers.NewDashboardController(d.Tasks, d.Logger)

	generalRateLimiter := middleware.NewRateLimiter(ctx, rate.Limit(d.Limits.RPS), d.Limits.Burst)
	authRateLimiter := middleware.NewRateLimiter(ctx, rate.Limit(d.Limits.AuthRPS), d.Limits.AuthBurst)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(d.Logger))

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	app := router.Group("/")
	app.Use(generalRateLimiter.LimitMiddleware())
	{
		auth := app.Group("/")
		auth.Use(authRateLimiter.LimitMiddleware())
		{
			auth.GET("/register/", authController.RegisterForm)
			auth.POST("/register/", authController.Register)
			auth.GET("/login/", authController.LoginForm)
			auth.POST("/login/", authController.Login)
		}
		app.POST("/logout/", authController.Logout)

		protected := app.Group("/")
		protected.Use(middleware.AuthMiddleware(d.Sessions, d.Users, d.Logger))
		{
			protected.GET("/", taskController.List)
			protected.GET("/create/", taskController.CreateForm)
			protected.POST("/create/", taskController.Create)
			protected.GET("/update/:id/", taskController.EditForm)
			protected.POST("/update/:id/", taskController.Update)
			protected.GET("/delete/:id/", taskController.ConfirmDelete)
			protected.POST("/delete/:id/", taskController.Delete)
			protected.POST("/toggle/:id/", taskController.ToggleComplete)
			protected.POST("/update-due-date/:id/", taskController.UpdateDueDate)
			protected.POST("/task/:id/clear-due-date/", taskController.ClearDueDate)

			protected.GET("/categories/", categoryController.List)
			protected.POST("/categories/", categoryController.Create)
			protected.GET("/categories/:id/edit/", categoryController.Show)
			protected.POST("/categories/:id/edit/", categoryController.Rename)
			protected.GET("/categories/:id/delete/", categoryController.Show)
			protected.POST("/categories/:id/delete/", categoryController.Delete)

			protected.GET("/profile/", profileController.Show)
			protected.POST("/profile/", profileController.ChangePassword)
			protected.GET("/delete-account/", profileController.ConfirmDeleteAccount)
			protected.POST("/delete-account/", profileController.DeleteAccount)
			protected.POST("/toggle-theme/", profileController.ToggleTheme)
			protected.GET("/dashboard/", dashboardController.Show)
		}
	}

	return router
}
