package score

import (
	"culturefest-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, scoreService *ScoreService, publisher BoardPublisher, logService LogServicePort) {
	scoreController := &ScoreController{ScoreService: scoreService, LogService: logService, Publisher: publisher}

	group := r.Group("/api/scores")
	group.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(middlewares.RoleOrganizer, middlewares.RoleJudge))
	{
		group.GET("", scoreController.GetScores)
		group.POST("", scoreController.SubmitScores)
	}
}
