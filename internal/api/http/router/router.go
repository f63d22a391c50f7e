package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/hongik-triple/acnelog_backend/config"
	"github.com/hongik-triple/acnelog_backend/internal/api/http/handler"
	"github.com/hongik-triple/acnelog_backend/internal/api/http/middleware"
	"github.com/hongik-triple/acnelog_backend/internal/service/board"
	"github.com/hongik-triple/acnelog_backend/internal/service/diagnosis"
	"github.com/hongik-triple/acnelog_backend/internal/service/member"
	"github.com/hongik-triple/acnelog_backend/internal/service/survey"
	pasetotoken "github.com/hongik-triple/acnelog_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg          *config.Config
	Redis        *redis.Client
	MemberSvc    member.Service
	DiagnosisSvc diagnosis.Service
	SurveySvc    survey.Service
	BoardSvc     board.Service
	PasetoMgr    *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	authOptional := middleware.AuthOptional(r.p.PasetoMgr, r.p.Redis)

	// 3. Initialize Handlers
	memberH := handler.NewMemberHandler(r.p.MemberSvc)
	diagnosisH := handler.NewDiagnosisHandler(r.p.DiagnosisSvc)
	surveyH := handler.NewSurveyHandler(r.p.SurveySvc)
	boardH := handler.NewBoardHandler(r.p.BoardSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerMemberRoutes(api, memberH, authRequired)
	r.registerDiagnosisRoutes(api, diagnosisH, authRequired, authOptional)
	r.registerSurveyRoutes(api, surveyH, authRequired, authOptional)
	r.registerBoardRoutes(api, boardH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
