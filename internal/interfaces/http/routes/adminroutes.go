package routes

import (
	"github.com/gin-gonic/gin"

	"modportal/internal/interfaces/http/handlers"
	"modportal/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	CatalogHandler    *handlers.CatalogHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// SetupAdminRoutes wires the catalog admin pages. They only require a portal
// session; each mutation carries the admin secret in its body.
func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(config.SessionMiddleware.RequireSession())
	{
		admin.GET("/types", config.CatalogHandler.ListTypes)
		admin.POST("/types", config.CatalogHandler.AddType)
		admin.POST("/types/delete/:id", config.CatalogHandler.DeleteType)

		admin.GET("/assignees", config.CatalogHandler.ListAssignees)
		admin.POST("/assignees", config.CatalogHandler.UpsertAssignee)
		admin.POST("/assignees/delete/:id", config.CatalogHandler.DeleteAssignee)
	}
}
