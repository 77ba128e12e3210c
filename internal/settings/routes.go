package settings

import (
	"culturefest-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, settingsService *SettingsService, logService LogServicePort, maxBytes int64) {
	settingsController := &SettingsController{SettingsService: settingsService, LogService: logService, MaxBytes: maxBytes}

	r.GET("/api/settings", settingsController.GetSettings)

	group := r.Group("/api/settings")
	group.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(middlewares.RoleOrganizer))
	{
		group.PUT("", settingsController.UpdateSettings)
		group.DELETE("/circular", settingsController.RemoveCircular)
	}
}
