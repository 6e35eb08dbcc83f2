package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/camposys/fieldops/pkg/application"
	"github.com/camposys/fieldops/pkg/configuration"
	"github.com/camposys/fieldops/pkg/constants"
	"github.com/camposys/fieldops/pkg/middleware"
	"github.com/camposys/fieldops/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          *pgxpool.Pool
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application
	conf := options.Configuration

	defaultTenant, err := uuid.Parse(conf.DefaultTenantID)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_TENANT_ID: %w", err)
	}

	middlewares := []mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger),
		middleware.Provide(constants.AppKey, app),
		middleware.Provide(constants.PoolKey, options.Pool),
		middleware.WithTenant(conf.TenantIDHeader, defaultTenant),
		middleware.Cors(conf.Origin),
	}

	if conf.RateLimit.Enabled {
		middlewares = append(middlewares, middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerPeriod: conf.RateLimit.GlobalRPS,
			Store:             middleware.NewMemoryStore(),
		}))
	}

	app.RegisterMiddleware(middlewares...)

	return server.NewHTTPServer(app, notFound(), methodNotAllowed()), nil
}

func notFound() http.Handler {
	return jsonError(http.StatusNotFound, "NOT_FOUND", "resource not found")
}

func methodNotAllowed() http.Handler {
	return jsonError(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
}

func jsonError(status int, code, message string) http.Handler {
	body := fmt.Sprintf(`{"error":{"code":%q,"message":%q}}`, code, message)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}
