package services

import (
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	log "github.com/sirupsen/logrus"

	docs "github.com/gopherpath/gopherpath_api/docs"
	"github.com/gopherpath/gopherpath_api/services/handlers"
	"github.com/gopherpath/gopherpath_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc        *AuthService
	rateLimitSvc   *RateLimitService
	monitoringSvc  *MonitoringService
	progressSvc    *ProgressService
	achievementSvc *AchievementService
	dashboardSvc   *DashboardService
	catalogSvc     *CatalogService
	executeSvc     *ExecuteService
	webhookSvc     *WebhookService
	mediaSvc       *MediaService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
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

// Start wires the route tree and blocks in Listen. This service must be
// registered last.
func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)
	svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)
	svc.achievementSvc = svc.Service(ACHIEVEMENT_SVC).(*AchievementService)
	svc.dashboardSvc = svc.Service(DASHBOARD_SVC).(*DashboardService)
	svc.catalogSvc = svc.Service(CATALOG_SVC).(*CatalogService)
	svc.executeSvc = svc.Service(EXECUTE_SVC).(*ExecuteService)
	svc.webhookSvc = svc.Service(WEBHOOK_SVC).(*WebhookService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)

	docs.SwaggerInfo.BasePath = ""

	svc.server = fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: svc.handleError,
	})

	svc.server.Use(recover.New())
	if os.Getenv("LOG_LEVEL") == "TRACE" {
		svc.server.Use(logger.New())
	}
	svc.server.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))
	svc.server.Use(MonitoringMiddleware(svc.monitoringSvc))
	svc.server.Use(svc.rateLimitSvc.IPRateLimit())

	progressHandler := handlers.NewProgressHandler(svc.progressSvc, svc.dashboardSvc)
	achievementHandler := handlers.NewAchievementHandler(svc.achievementSvc, svc.dashboardSvc)
	dashboardHandler := handlers.NewDashboardHandler(svc.dashboardSvc)
	catalogHandler := handlers.NewCatalogHandler(svc.catalogSvc)
	executeHandler := handlers.NewExecuteHandler(svc.executeSvc)
	webhookHandler := handlers.NewWebhookHandler(svc.webhookSvc)
	mediaHandler := handlers.NewMediaHandler(svc.mediaSvc)

	svc.server.Get("/ping", svc.ping)
	svc.server.Get("/swagger/*", swagger.HandlerDefault)

	v1 := svc.server.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	// Public catalog
	v1.Get("/curriculum", catalogHandler.GetCurriculum)
	v1.Get("/challenges", catalogHandler.GetChallenges)
	v1.Get("/challenges/:challengeId", catalogHandler.GetChallenge)

	// Identity provider callbacks, signature-verified rather than bearer-authed
	v1.Post("/webhooks/identity", webhookHandler.HandleIdentityEvent)

	auth := svc.authSvc.RequiredAuth()

	v1.Get("/dashboard", auth, dashboardHandler.GetDashboard)

	v1.Get("/achievements", auth, achievementHandler.GetAchievements)
	v1.Post("/achievements/check", auth, svc.rateLimitSvc.RateLimit("achievement_check"), achievementHandler.CheckAchievements)

	progress := v1.Group("/progress", auth)
	progress.Get("/lessons", progressHandler.GetLessonProgress)
	progress.Post("/lessons", svc.rateLimitSvc.RateLimit("progress_write"), progressHandler.RecordLessonProgress)
	progress.Get("/challenges", progressHandler.GetChallengeProgress)
	progress.Post("/challenges", svc.rateLimitSvc.RateLimit("progress_write"), progressHandler.RecordChallengeProgress)

	v1.Post("/execute", auth, svc.rateLimitSvc.RateLimit("execute"), executeHandler.Execute)

	media := v1.Group("/media/lessons/:moduleId/:lessonId")
	media.Get("/", mediaHandler.GetLessonMedia)
	media.Post("/video", auth, svc.rateLimitSvc.RateLimit("media_upload"), mediaHandler.UploadLessonVideo)
	media.Post("/thumbnail", auth, svc.rateLimitSvc.RateLimit("media_upload"), mediaHandler.UploadLessonThumbnail)

	log.Printf("HTTP server listening on :%d", svc.port)
	return svc.server.Listen(":" + strconv.Itoa(svc.port))
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

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	if fiberErr, ok := err.(*fiber.Error); ok {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.Errorf("Unhandled error: %v", err)
	return shared.ResponseInternalError(c)
}
