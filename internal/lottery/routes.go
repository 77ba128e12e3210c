package lottery

import (
	"culturefest-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, lotteryService *LotteryService, logService LogServicePort) {
	lotteryController := &LotteryController{LotteryService: lotteryService, LogService: logService}

	group := r.Group("/api/lottery")
	group.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(middlewares.RoleOrganizer))
	{
		group.POST("/draw", lotteryController.Draw)
		group.POST("/commit", lotteryController.Commit)
	}
}
