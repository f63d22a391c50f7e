package app

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/hongik-triple/acnelog_backend/config"
	"github.com/hongik-triple/acnelog_backend/internal/repo"
	"github.com/hongik-triple/acnelog_backend/internal/service/board"
	"github.com/hongik-triple/acnelog_backend/internal/service/diagnosis"
	"github.com/hongik-triple/acnelog_backend/internal/service/member"
	"github.com/hongik-triple/acnelog_backend/internal/service/survey"
	"github.com/hongik-triple/acnelog_backend/pkg/inference"
	"github.com/hongik-triple/acnelog_backend/pkg/naver"
	"github.com/hongik-triple/acnelog_backend/pkg/oauth"
	pasetotoken "github.com/hongik-triple/acnelog_backend/pkg/paseto"
	s3pkg "github.com/hongik-triple/acnelog_backend/pkg/s3"
	"github.com/hongik-triple/acnelog_backend/pkg/youtube"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideDiagnosisService,
		ProvideSurveyService,
		ProvideMemberService,
		ProvideBoardService,
		ProvidePasetoManager,
	),
)

func ProvideDiagnosisService(
	db *repo.Client,
	rdb *redis.Client,
	s3 *s3pkg.Client,
	ai *inference.Client,
	yt *youtube.Client,
	nv *naver.Client,
) diagnosis.Service {
	return diagnosis.New(db, rdb, s3, ai, yt, nv, slog.Default())
}

func ProvideSurveyService(db *repo.Client) survey.Service {
	return survey.New(db, slog.Default())
}

func ProvideMemberService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	providers map[string]oauth.Provider,
	cfg *config.Config,
) member.Service {
	ttl := time.Duration(cfg.Authentication.SessionTTLMinutes) * time.Minute
	return member.New(db, rdb, paseto, providers, ttl, slog.Default())
}

func ProvideBoardService(db *repo.Client) board.Service {
	return board.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
