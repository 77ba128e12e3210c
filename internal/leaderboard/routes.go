package leaderboard

import (
	"culturefest-api/internal/live"
	"culturefest-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, leaderboardService *LeaderboardService, hub *live.Hub) {
	leaderboardController := &LeaderboardController{LeaderboardService: leaderboardService}

	group := r.Group("/api/leaderboard")
	group.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(middlewares.RoleOrganizer))
	{
		group.GET("", leaderboardController.GetLeaderboard)
		group.GET("/export", leaderboardController.ExportLeaderboard)
		group.GET("/live", hub.ServeWS(Room, func() (*live.Message, error) {
			board, err := leaderboardService.Build()
			if err != nil {
				return nil, err
			}
			return &live.Message{Type: MessageUpdated, Payload: board}, nil
		}))
	}
}
