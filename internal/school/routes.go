package school

import (
	"culturefest-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, schoolService *SchoolService, logService LogServicePort) {
	schoolController := &SchoolController{SchoolService: schoolService, LogService: logService}

	r.GET("/api/tiers", schoolController.GetTiers)

	read := r.Group("/api/schools")
	read.Use(middlewares.AuthMiddleware())
	{
		read.GET("", schoolController.GetSchools)
		read.GET("/order", schoolController.GetPerformanceOrder)
		read.GET("/:id", schoolController.GetSchool)
	}

	write := r.Group("/api/schools")
	write.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(middlewares.RoleOrganizer))
	{
		write.GET("/export", schoolController.ExportPerformanceOrder)
		write.POST("", schoolController.CreateSchool)
		write.PUT("/:id", schoolController.UpdateSchool)
		write.DELETE("/:id", schoolController.DeleteSchool)
	}
}
