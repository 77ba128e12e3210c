package registration

import (
	"culturefest-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, registrationService *RegistrationService, logService LogServicePort) {
	registrationController := &RegistrationController{RegistrationService: registrationService, LogService: logService}

	// The registration id is the bearer credential for the public routes.
	public := r.Group("/api/registrations")
	{
		public.POST("", registrationController.CreateRegistration)
		public.GET("/:id", registrationController.GetRegistration)
		public.PUT("/:id", registrationController.UpdateRegistration)
	}

	organizer := r.Group("/api/registrations")
	organizer.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(middlewares.RoleOrganizer))
	{
		organizer.GET("", registrationController.GetRegistrations)
		organizer.GET("/export", registrationController.ExportRegistrations)
	}
}
