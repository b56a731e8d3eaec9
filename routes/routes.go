package routes

import (
	"net/http"

	"DocTrackerGo/controllers"
	"DocTrackerGo/middleware"
	"DocTrackerGo/services"
	"DocTrackerGo/utils"

	"github.com/gin-gonic/gin"
)

// Services are the dependencies the HTTP handlers are built from.
// Revoker may be nil.
type Services struct {
	Users        *services.UserService
	Entries      *services.EntryService
	Productivity *services.ProductivityService
	Dashboard    *services.DashboardService
	Export       *services.ExportService
	Revoker      utils.TokenRevoker
}

func RegisterRoutes(r *gin.Engine, s Services) {
	authController := controllers.NewAuthController(s.Users, s.Revoker)
	userController := controllers.NewUserController(s.Users)
	entryController := controllers.NewEntryController(s.Entries)
	productivityController := controllers.NewProductivityController(s.Productivity)
	dashboardController := controllers.NewDashboardController(s.Dashboard, s.Export)

	// public
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
	}

	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(s.Revoker), middleware.AttachUser(s.Users))
	{
		private.POST("/auth/logout", authController.Logout)

		private.GET("/user", userController.GetUser)
		private.PATCH("/user", userController.UpdateProfile)
		private.POST("/user/password", userController.ChangePassword)

		private.POST("/entry", entryController.Create)
		private.GET("/entry", entryController.List)
		private.GET("/entry/recent", entryController.Recent)
		private.GET("/entry/:id", entryController.Get)
		private.PATCH("/entry/:id", entryController.Update)
		private.DELETE("/entry/:id", entryController.Delete)

		private.GET("/productivity", productivityController.GetStats)
		private.GET("/productivity/comparison", productivityController.GetComparison)
		private.GET("/productivity/top-metrics", productivityController.GetTopMetrics)

		private.GET("/dashboard", dashboardController.GetDashboard)
		private.GET("/export", dashboardController.Export)
	}

	admin := private.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/entries", entryController.ListAll)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
