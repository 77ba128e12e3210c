package main

import (
	"culturefest-api/config"
	"culturefest-api/internal/category"
	"culturefest-api/internal/judge"
	"culturefest-api/internal/leaderboard"
	"culturefest-api/internal/live"
	"culturefest-api/internal/logs"
	"culturefest-api/internal/lottery"
	"culturefest-api/internal/media"
	"culturefest-api/internal/metrics"
	"culturefest-api/internal/registration"
	"culturefest-api/internal/school"
	"culturefest-api/internal/score"
	"culturefest-api/internal/settings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// models lists every table the server migrates at startup.
func models() []interface{} {
	return []interface{}{
		&school.School{},
		&judge.Judge{},
		&category.Category{},
		&score.Score{},
		&registration.Registration{},
		&registration.Participant{},
		&settings.Settings{},
		&logs.SystemLog{},
	}
}

// newRouter wires every feature onto one engine.
func newRouter(cfg config.Config, db *gorm.DB, mediaService *media.Service, hub *live.Hub) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition", "Last-Modified"},
		AllowCredentials: true,
	}))
	r.Use(metrics.Middleware())
	r.GET("/metrics", metrics.Handler())

	logService := &logs.LogService{DB: db}
	logs.RegisterRoutes(r, logService)

	media.RegisterRoutes(r, mediaService, logService, cfg.MaxUploadBytes)

	school.RegisterRoutes(r, &school.SchoolService{DB: db}, logService)
	judge.RegisterRoutes(r, &judge.JudgeService{DB: db}, logService)
	category.RegisterRoutes(r, &category.CategoryService{DB: db}, logService)

	leaderboardService := &leaderboard.LeaderboardService{DB: db, Hub: hub}
	leaderboard.RegisterRoutes(r, leaderboardService, hub)
	score.RegisterRoutes(r, &score.ScoreService{DB: db}, leaderboardService, logService)

	lottery.RegisterRoutes(r, &lottery.LotteryService{DB: db}, logService)

	registration.RegisterRoutes(r, &registration.RegistrationService{DB: db, Files: mediaService}, logService)
	settings.RegisterRoutes(r, &settings.SettingsService{DB: db, Files: mediaService}, logService, cfg.MaxUploadBytes)

	return r
}
