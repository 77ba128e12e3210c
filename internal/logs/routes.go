package logs

import (
	"culturefest-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, logService *LogService) {
	logController := &LogController{LogService: logService}

	logGroup := r.Group("/api/logs")
	logGroup.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(middlewares.RoleOrganizer))
	{
		logGroup.POST("", logController.GetLogs)
		logGroup.GET("/services", logController.Services)
	}
}
