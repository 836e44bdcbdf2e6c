package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kaiwenliu/careconnect-go/internal/api/handlers"
	"github.com/kaiwenliu/careconnect-go/internal/api/middleware"
	"github.com/kaiwenliu/careconnect-go/internal/domain/user"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes wires the role-scoped route groups. Everything except
// login/logout sits behind JWT auth, and each group checks the role
// claimed in the token.
func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		// Any signed-in role can read the category list.
		categories := auth.Group("/categories")
		{
			categories.GET("", h.Category.ListCategories)
			categories.GET("/:id", h.Category.GetCategory)
		}

		admin := auth.Group("/admin", middleware.RequireRole(user.RoleUserAdmin))
		{
			admin.POST("/users", h.User.CreateUser)
			admin.GET("/users", h.User.SearchUsers)
			admin.GET("/users/:id", h.User.GetUser)
			admin.PUT("/users/:id", h.User.UpdateUser)
			admin.POST("/users/:id/suspend", h.User.SuspendUser)
			admin.POST("/users/:id/activate", h.User.ActivateUser)
			admin.GET("/audit-logs", h.Audit.GetAuditLogs)
		}

		pm := auth.Group("/pm", middleware.RequireRole(user.RolePlatformManager))
		{
			pm.POST("/categories", h.Category.CreateCategory)
			pm.PUT("/categories/:id", h.Category.UpdateCategory)
			pm.DELETE("/categories/:id", h.Category.DeleteCategory)
			pm.GET("/reports", h.Report.GenerateReport)
		}

		pin := auth.Group("/pin", middleware.RequireRole(user.RolePIN))
		{
			pin.POST("/requests", h.Request.CreateRequest)
			pin.GET("/requests", h.Request.ListOwnRequests)
			pin.GET("/requests/:id", h.Request.GetOwnRequest)
			pin.PUT("/requests/:id", h.Request.UpdateRequest)
			pin.POST("/requests/:id/complete", h.Request.CompleteRequest)
			pin.DELETE("/requests/:id", h.Request.DeleteRequest)
			pin.GET("/history", h.History.ListPinHistory)
		}

		csr := auth.Group("/csr", middleware.RequireRole(user.RoleCSR))
		{
			csr.GET("/requests", h.Request.BrowseOpenRequests)
			csr.GET("/requests/:id", h.Request.ViewOpenRequest)
			csr.POST("/requests/:id/accept", h.Request.AcceptRequest)
			csr.POST("/shortlist/:id", h.Shortlist.AddShortlist)
			csr.DELETE("/shortlist/:id", h.Shortlist.RemoveShortlist)
			csr.GET("/shortlist", h.Shortlist.ListShortlist)
			csr.GET("/shortlist/:id", h.Shortlist.CheckShortlist)
			csr.GET("/history", h.History.ListCsrHistory)
		}
	}
}
