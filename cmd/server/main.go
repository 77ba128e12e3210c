package main

import (
	"context"
	"log"

	"culturefest-api/config"
	"culturefest-api/internal/live"
	"culturefest-api/internal/media"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := db.AutoMigrate(models()...); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	uploader, err := media.New(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to set up media backend:", err)
	}
	mediaService := media.NewService(uploader, cfg.MaxUploadBytes)

	hub := live.NewHub(cfg.AllowedOrigins)
	go hub.Run(ctx)

	r := newRouter(cfg, db, mediaService, hub)

	// --- Cloud Run expects plain HTTP, on $PORT, bind to 0.0.0.0 ---
	log.Printf("Starting server on 0.0.0.0:%s ...", cfg.Port)
	log.Fatal(r.Run("0.0.0.0:" + cfg.Port))
}
