package httpEngine

import (
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/labstack/echo/v4"

	"saturn-server/configs"
	"saturn-server/internal/catalog"
	"saturn-server/internal/controllers"
	"saturn-server/internal/logics"
	"saturn-server/internal/logics/answer_engine"
	"saturn-server/internal/middlewares"
	"saturn-server/internal/repositories"
)

// RegisterRoutes wires repositories, services and controllers, and registers
// every route of the server.
func RegisterRoutes(e *echo.Echo, cat *catalog.Catalog) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Repositories over the shared storage clients.
	sessionRepo := repositories.NewSessionRepository(repositories.DBS.Postgres)
	attemptRepo := repositories.NewAttemptRepository(repositories.DBS.Postgres)

	// Services.
	sessionDuration := time.Duration(configs.Configs.Game.SessionDurationHours) * time.Hour
	presignTTL := time.Duration(configs.Configs.S3.PresignTTLSeconds) * time.Second
	mediaService := logics.NewMediaService(
		s3.NewPresignClient(repositories.DBS.S3),
		configs.Configs.S3.BucketName,
		presignTTL,
	)
	sessionService := logics.NewSessionService(sessionRepo, cat.TotalStages(), sessionDuration, configs.Logger)
	puzzleService := logics.NewPuzzleService(cat, answer_engine.New(), sessionRepo, attemptRepo, mediaService, configs.Logger)
	adminService := logics.NewAdminService(sessionRepo, attemptRepo)

	// Controllers.
	sessionController := controllers.NewSessionController(sessionService)
	puzzleController := controllers.NewPuzzleController(puzzleService, sessionService)
	photoController := controllers.NewPhotoController(mediaService)
	challengeController := controllers.NewChallengeController(sessionService)
	adminController := controllers.NewAdminController(adminService, sessionService)

	api := e.Group("/api")

	// Session endpoints.
	api.POST("/session/start", sessionController.StartSession)
	api.GET("/session/status", sessionController.SessionStatus)

	// Puzzle endpoints.
	api.GET("/puzzle/:stage", puzzleController.GetPuzzle)
	api.POST("/puzzle/check", puzzleController.CheckAnswer)
	api.POST("/puzzle/advance", puzzleController.AdvanceStage)
	api.GET("/puzzle/:stage/captcha", puzzleController.GetCaptcha)

	// Media endpoints.
	api.GET("/photos/:key", photoController.GetPhotoURL)

	// Trolling-phase persistence.
	api.POST("/trolling/phase", sessionController.SetTrollingPhase)

	// Challenge endpoints.
	api.POST("/challenge/submit", challengeController.Submit)
	api.GET("/challenge/status", challengeController.Status)

	// Admin endpoints, gated by the shared passphrase.
	admin := api.Group("/admin", middlewares.AdminAuthMiddleware(configs.Configs.Secrets.AdminPassword))
	admin.POST("/login", adminController.Login)
	admin.GET("/sessions", adminController.ListSessions)
	admin.GET("/session/:id", adminController.SessionDetail)
	admin.POST("/approve/:id", adminController.ApproveChallenge)
}
