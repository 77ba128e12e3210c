package category

import (
	"culturefest-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, categoryService *CategoryService, logService LogServicePort) {
	categoryController := &CategoryController{CategoryService: categoryService, LogService: logService}

	r.GET("/api/categories", middlewares.AuthMiddleware(), categoryController.GetCategories)

	group := r.Group("/api/categories")
	group.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(middlewares.RoleOrganizer))
	{
		group.POST("", categoryController.CreateCategory)
		group.PUT("/:id", categoryController.UpdateCategory)
		group.DELETE("/:id", categoryController.DeleteCategory)
	}
}
