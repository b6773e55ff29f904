package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/walkin-drive-api/internal/middleware"
	"github.com/noah-isme/walkin-drive-api/internal/models"
	"github.com/noah-isme/walkin-drive-api/internal/realtime"
	"github.com/noah-isme/walkin-drive-api/internal/service"
	"github.com/noah-isme/walkin-drive-api/pkg/config"
	corsmiddleware "github.com/noah-isme/walkin-drive-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/walkin-drive-api/pkg/middleware/requestid"
)

type accountDirectory interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// Deps carries everything the route table wires together.
type Deps struct {
	Env            string
	APIPrefix      string
	AllowedOrigins []string
	WebhookSecret  string
	Logger         *zap.Logger

	Auth        *service.AuthService
	Candidates  *service.CandidateService
	Panels      *service.PanelService
	Rooms       *service.RoomService
	Feedback    *service.FeedbackService
	Surveys     *service.CandidateFeedbackService
	Users       *service.UserService
	Permissions *service.PermissionService
	Queue       *service.QueueService
	Exports     *service.ExportService
	Metrics     *service.MetricsService

	Hub *realtime.Hub

	// Accounts resolves the acting user for capability checks. Backed by
	// the users store or the sql repository depending on configuration.
	Accounts accountDirectory
}

// NewRouter builds the gin engine with the full route table. Health,
// metrics, docs and the websocket endpoint sit outside the API prefix;
// everything else is versioned under it.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.New())
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(corsmiddleware.New(d.AllowedOrigins))
	r.Use(middleware.Metrics(d.Metrics))
	r.Use(middleware.WithResponseMeta())

	authH := NewAuthHandler(d.Auth, d.Permissions)
	candidateH := NewCandidateHandler(d.Candidates)
	webhookH := NewWebhookHandler(d.Candidates, d.WebhookSecret)
	panelH := NewPanelHandler(d.Panels)
	roomH := NewRoomHandler(d.Rooms)
	feedbackH := NewFeedbackHandler(d.Feedback)
	surveyH := NewCandidateFeedbackHandler(d.Surveys)
	userH := NewUserHandler(d.Users)
	permissionH := NewPermissionHandler(d.Permissions)
	roundH := NewRoundHandler()
	queueH := NewQueueHandler(d.Queue)
	exportH := NewExportHandler(d.Exports)
	realtimeH := NewRealtimeHandler(d.Hub, d.Logger)
	metricsH := NewMetricsHandler(d.Metrics)

	r.GET("/health", metricsH.Health)
	r.GET("/ready", metricsH.Ready)
	r.GET("/metrics", metricsH.Prometheus)
	r.GET("/ws", realtimeH.Serve)
	if d.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	prefix := d.APIPrefix
	if prefix == "" {
		prefix = "/api/v1"
	}
	api := r.Group(prefix)

	api.POST("/auth/login", authH.Login)
	api.POST("/webhooks/google-sheets", webhookH.GoogleSheets)
	api.POST("/candidate-feedback", surveyH.Submit)

	authed := api.Group("")
	authed.Use(middleware.JWT(d.Auth))

	requires := func(capability string) gin.HandlerFunc {
		return middleware.RequireCapability(d.Permissions, d.Accounts, capability)
	}

	authed.GET("/auth/me", authH.Me)
	authed.POST("/auth/change-password", authH.ChangePassword)
	authed.GET("/rounds", roundH.Progression)

	candidates := authed.Group("/candidates")
	{
		candidates.GET("", requires(models.CapViewCandidates), candidateH.List)
		candidates.GET("/:id", requires(models.CapViewCandidates), candidateH.Get)
		candidates.GET("/serial/:serial", requires(models.CapViewCandidates), candidateH.GetBySerial)
		candidates.POST("", requires(models.CapEditCandidates), candidateH.Register)
		candidates.POST("/manual", requires(models.CapEditCandidates), candidateH.Register)
		candidates.PATCH("/:id", requires(models.CapEditCandidates), candidateH.Update)
	}

	panels := authed.Group("/panels")
	{
		panels.GET("", requires(models.CapViewCandidates), panelH.List)
		panels.GET("/:id", requires(models.CapViewCandidates), panelH.Get)
		panels.POST("", requires(models.CapManagePanels), panelH.Create)
		panels.PATCH("/:id", requires(models.CapManagePanels), panelH.Update)
		panels.POST("/:id/assign-candidate/:candidateId", requires(models.CapAssignCandidates), panelH.AssignCandidate)
		panels.POST("/:id/release-candidate", requires(models.CapAssignCandidates), panelH.ReleaseCandidate)
	}

	rooms := authed.Group("/rooms")
	{
		rooms.GET("", requires(models.CapViewCandidates), roomH.List)
		rooms.GET("/:id", requires(models.CapViewCandidates), roomH.Get)
		rooms.POST("", requires(models.CapManageRooms), roomH.Create)
		rooms.PATCH("/:id", requires(models.CapManageRooms), roomH.Update)
		rooms.POST("/:id/assign-panel/:panelId", requires(models.CapManageRooms), roomH.AssignPanel)
		rooms.POST("/:id/remove-panel/:panelId", requires(models.CapManageRooms), roomH.RemovePanel)
	}

	authed.POST("/feedback", requires(models.CapSubmitFeedback), feedbackH.Submit)
	authed.GET("/feedback", requires(models.CapViewFeedback), feedbackH.List)
	authed.GET("/candidate-feedback", requires(models.CapViewFeedback), surveyH.List)

	users := authed.Group("/users")
	users.Use(requires(models.CapManageUsers))
	{
		users.GET("", userH.List)
		users.GET("/:id", userH.Get)
		users.POST("", userH.Create)
		users.PATCH("/:id", userH.Update)
		users.DELETE("/:id", userH.Delete)
	}

	rolePermissions := authed.Group("/role-permissions")
	rolePermissions.Use(requires(models.CapManageRoles))
	{
		rolePermissions.GET("", permissionH.List)
		rolePermissions.GET("/:id", permissionH.Get)
		rolePermissions.POST("", permissionH.Create)
		rolePermissions.PATCH("/:id", permissionH.Update)
		rolePermissions.DELETE("/:id", permissionH.Delete)
	}

	queue := authed.Group("/queue")
	{
		queue.GET("/position/:candidateId", requires(models.CapViewCandidates), queueH.Position)
		queue.GET("/board", requires(models.CapViewCandidates), queueH.Board)
	}

	authed.GET("/exports/candidates", requires(models.CapExportData), exportH.Candidates)
	authed.GET("/system/metrics", requires(models.CapManageSettings), metricsH.System)

	return r
}
