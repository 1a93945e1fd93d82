// services/http.go
package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"github.com/ascend-learning/ascend_api/services/handlers"
	"github.com/ascend-learning/ascend_api/shared"
)

// HttpService is the API server. Handlers return errors; the fiber
// error handler maps AppErrors to the response envelope.
type HttpService struct {
	appContext.DefaultService

	authSvc      *AuthService
	userSvc      *UserService
	contentSvc   *ContentService
	progressSvc  *ProgressService
	questSvc     *QuestService
	hintSvc      *HintService
	mediaSvc     *MediaService
	rateLimitSvc *RateLimitService

	monitoringSvc *MonitoringService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *appContext.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.userSvc = svc.Service(USER_SVC).(*UserService)
	svc.contentSvc = svc.Service(CONTENT_SVC).(*ContentService)
	svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)
	svc.questSvc = svc.Service(QUEST_SVC).(*QuestService)
	svc.hintSvc = svc.Service(HINT_SVC).(*HintService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitoringSvc, _ = svc.Service(MONITORING_SVC).(*MonitoringService)

	app := fiber.New(fiber.Config{
		AppName:      "Ascend",
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	if svc.monitoringSvc != nil {
		app.Use(MonitoringMiddleware(svc.monitoringSvc))
	}

	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	svc.registerRoutes(app)

	svc.server = app
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler(svc.authSvc, svc.rateLimitSvc)
	userHandler := handlers.NewUserHandler(svc.userSvc)
	contentHandler := handlers.NewContentHandler(svc.contentSvc, svc.questSvc)
	progressHandler := handlers.NewProgressHandler(svc.progressSvc, svc.rateLimitSvc)
	hintHandler := handlers.NewHintHandler(svc.hintSvc, svc.rateLimitSvc)
	mediaHandler := handlers.NewMediaHandler(svc.mediaSvc)

	v1 := app.Group("/api/v1")

	v1.Get("/ping", svc.ping)
	v1.Post("/register", authHandler.Register)
	v1.Post("/login", authHandler.Login)

	protected := v1.Use(svc.authSvc.RequiredAuth())

	protected.Get("/me", userHandler.GetProfile)
	protected.Put("/me", userHandler.UpdateProfile)
	protected.Get("/me/progress", userHandler.GetProgress)
	protected.Post("/me/streak", userHandler.UpdateStreak)
	protected.Post("/me/avatar", mediaHandler.UploadAvatar)

	protected.Get("/leaderboard", userHandler.GetLeaderboard)

	protected.Get("/domains", contentHandler.GetDomains)
	protected.Get("/domains/:domainId", contentHandler.GetDomain)
	protected.Get("/domains/:domainId/topics", contentHandler.GetTopics)
	protected.Get("/topics/:topicId", contentHandler.GetTopic)
	protected.Get("/topics/:topicId/challenges", contentHandler.GetChallenges)
	protected.Get("/topics/:topicId/quests", contentHandler.GetQuests)
	protected.Get("/quests/:questId", contentHandler.GetQuest)

	protected.Get("/challenges/:challengeId", contentHandler.GetChallenge)
	protected.Post("/challenges/:challengeId/submit", progressHandler.SubmitAnswer)
	protected.Get("/challenges/:challengeId/attempt", progressHandler.GetAttempt)
	protected.Post("/challenges/:challengeId/hint", hintHandler.GetHint)
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")
	return shared.ResponseOK(c, "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return shared.ResponseInternalError(c, err)
}
