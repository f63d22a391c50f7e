package app

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/hongik-triple/acnelog_backend/config"
	"github.com/hongik-triple/acnelog_backend/internal/repo"
	"github.com/hongik-triple/acnelog_backend/pkg/database"
	"github.com/hongik-triple/acnelog_backend/pkg/inference"
	"github.com/hongik-triple/acnelog_backend/pkg/naver"
	"github.com/hongik-triple/acnelog_backend/pkg/oauth"
	"github.com/hongik-triple/acnelog_backend/pkg/observability"
	redispkg "github.com/hongik-triple/acnelog_backend/pkg/redis"
	s3pkg "github.com/hongik-triple/acnelog_backend/pkg/s3"
	"github.com/hongik-triple/acnelog_backend/pkg/youtube"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideEntClient),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideS3Client),
	fx.Provide(ProvideInferenceClient),
	fx.Provide(ProvideYoutubeClient),
	fx.Provide(ProvideNaverClient),
	fx.Provide(ProvideOAuthProviders),
	fx.Provide(ProvideOTel),
)

func ProvideEntClient(lc fx.Lifecycle, cfg *config.Config) (*repo.Client, error) {
	client, err := database.NewEntClient(cfg.Database)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing main database connection")
			return client.Close()
		},
	})
	return client, nil
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideS3Client(cfg *config.Config) (*s3pkg.Client, error) {
	return s3pkg.New(cfg.S3)
}

func ProvideInferenceClient(cfg *config.Config) *inference.Client {
	return inference.New(cfg.AI)
}

func ProvideYoutubeClient(cfg *config.Config) *youtube.Client {
	return youtube.New(cfg.Youtube)
}

func ProvideNaverClient(cfg *config.Config) *naver.Client {
	return naver.New(cfg.Naver)
}

func ProvideOAuthProviders(cfg *config.Config) map[string]oauth.Provider {
	return map[string]oauth.Provider{
		"kakao":  oauth.NewKakao(cfg.OAuth.Kakao),
		"google": oauth.NewGoogle(cfg.OAuth.Google),
	}
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
