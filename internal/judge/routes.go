package judge

import (
	"culturefest-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, judgeService *JudgeService, logService LogServicePort) {
	judgeController := &JudgeController{JudgeService: judgeService, LogService: logService}

	group := r.Group("/api/judges")
	group.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(middlewares.RoleOrganizer))
	{
		group.GET("", judgeController.GetJudges)
		group.GET("/:id", judgeController.GetJudge)
		group.POST("", judgeController.CreateJudge)
		group.PUT("/:id", judgeController.UpdateJudge)
		group.DELETE("/:id", judgeController.DeleteJudge)
	}
}
