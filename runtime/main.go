package main

import (
	"github.com/ascend-learning/ascend_api/services"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// @title Ascend API
// @version 1.0
// @description Gamified learning backend: XP progression, streaks, quests and AI hints
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx, err := context.NewCtx(
		&services.PostgresService{},
		&services.RedisService{},
		&services.JWTService{},
		&services.MonitoringService{},
		&services.MinIOService{},

		&services.UserService{},
		&services.AuthService{},
		&services.ContentService{},
		&services.QuestService{},
		&services.ProgressService{},
		&services.HintService{},
		&services.MediaService{},
		&services.RateLimitService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
