package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/SallahBoussettah/portfolio-api/internal/config"
	"github.com/SallahBoussettah/portfolio-api/internal/database"
	"github.com/SallahBoussettah/portfolio-api/internal/handlers"
	"github.com/SallahBoussettah/portfolio-api/internal/repository"
	"github.com/SallahBoussettah/portfolio-api/internal/services"
)

func main() {
	cfg := config.Load()

	if cfg.IsProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	db := database.GetDB()
	mailer := services.NewMailer(cfg)

	svc := handlers.Services{
		Auth:       services.NewAuthService(repository.NewAdminRepository(db), mailer, cfg),
		Project:    services.NewProjectService(repository.NewProjectRepository(db)),
		Art:        services.NewArtService(repository.NewArtRepository(db)),
		Education:  services.NewEducationService(repository.NewEducationRepository(db)),
		Experience: services.NewExperienceService(repository.NewExperienceRepository(db)),
		TechStack:  services.NewTechStackService(repository.NewTechStackRepository(db)),
		Setting:    services.NewSettingService(repository.NewSettingRepository(db)),
		Contact:    services.NewContactService(repository.NewContactRepository(db), mailer),
		Upload:     services.NewUploadService(cfg),
	}

	if err := svc.Auth.Bootstrap(); err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap admin account")
	}

	router := handlers.NewRouter(cfg, svc)

	log.Info().Str("port", cfg.Port).Str("mode", cfg.GinMode).Msg("Starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server exited")
	}
}
