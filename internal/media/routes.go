package media

import (
	"culturefest-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, mediaService *Service, logService LogServicePort, maxBytes int64) {
	mediaController := &MediaController{MediaService: mediaService, LogService: logService, MaxBytes: maxBytes}

	r.POST("/api/uploads", mediaController.Upload)

	mediaGroup := r.Group("/api/uploads")
	mediaGroup.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(middlewares.RoleOrganizer))
	{
		mediaGroup.DELETE("", mediaController.Delete)
	}
}
