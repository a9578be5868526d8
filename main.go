package main

import (
	"clothing-store/config"
	"clothing-store/controllers"
	db "clothing-store/database"
	"clothing-store/routes"
	"clothing-store/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db.InitDB(cfg)
	defer db.DisconnectDB()

	controllers.InitAuth(cfg.JWTSecret)

	services.StartReportCache(cfg.ReportRefresh, cfg.ReportCacheTTL)
	defer services.StopReportCache()

	r := gin.Default()
	routes.SetupRoutes(r, cfg)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
