package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brpaz/echozap"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	oapiMiddleware "github.com/oapi-codegen/echo-middleware"
	"go.elastic.co/apm/module/apmechov4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"

	appointmentsRepository "github.com/wellspring-health/clinic/appointments/repository"
	"github.com/wellspring-health/clinic/assessments"
	assessmentsRepository "github.com/wellspring-health/clinic/assessments/repository"
	"github.com/wellspring-health/clinic/auth"
	"github.com/wellspring-health/clinic/config"
	"github.com/wellspring-health/clinic/dashboard"
	"github.com/wellspring-health/clinic/errors"
	"github.com/wellspring-health/clinic/logger"
	"github.com/wellspring-health/clinic/outbox"
	"github.com/wellspring-health/clinic/predictions"
	predictionsRepository "github.com/wellspring-health/clinic/predictions/repository"
	"github.com/wellspring-health/clinic/risk"
	"github.com/wellspring-health/clinic/store"
	"github.com/wellspring-health/clinic/testresults"
	testresultsRepository "github.com/wellspring-health/clinic/testresults/repository"
	"github.com/wellspring-health/clinic/users"
	usersRepository "github.com/wellspring-health/clinic/users/repository"
	"github.com/wellspring-health/clinic/vitals"
	vitalsRepository "github.com/wellspring-health/clinic/vitals/repository"
)

func Start(e *echo.Echo, cfg *config.Config, log *zap.SugaredLogger, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(fmt.Sprintf(":%d", cfg.HttpPort)); err != nil && err != http.ErrServerClosed {
					log.Errorw("http server stopped unexpectedly", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			defer logger.FlushAPM()
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := store.Ping(ctx, db.Client()); err != nil {
				return err
			}

			// It's important this is set after mongo is initialized, which is ensured
			// by taking a dependency on mongo in the constructor, because lifecycle hooks
			// are executed in topological order
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

func NewServer(handler *Handler, healthCheck *HealthCheck, authorizer auth.RequestAuthorizer, authenticator auth.Authenticator, zapLogger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	// Do not validate servers in the open api document
	swagger.Servers = nil

	// Skip auth, validation and logging for readiness probe and metrics routes
	skipper := RouteSkipper([]string{"/ready", "/metrics"})
	authMiddleware := auth.NewAuthMiddleware(authenticator, auth.AuthMiddlewareOpts{
		Skipper: skipper,
	})
	requestValidator := oapiMiddleware.OapiRequestValidatorWithOptions(swagger, &oapiMiddleware.Options{
		Options: openapi3filter.Options{
			AuthenticationFunc: authorizer.Authorize,
		},
		Skipper: skipper,
	})

	e.Use(middleware.Recover())
	if logger.APMActive() {
		e.Use(apmechov4.Middleware())
	}
	e.Use(WithSkipper(echozap.ZapLogger(zapLogger), skipper))
	e.Use(authMiddleware)
	e.Use(requestValidator)

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	RegisterHandlers(e, handler)

	return e, nil
}

// Dependencies returns the providers shared by the server and the command line tools
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			logger.NewProductionLogger,
			logger.Suggar,
			config.NewConfig,
			store.NewConfig,
			store.NewManagedClient,
			store.NewDatabase,
			vitalsRepository.NewRepository,
			vitals.NewService,
			predictionsRepository.NewRepository,
			predictions.NewService,
			appointmentsRepository.NewRepository,
			testresultsRepository.NewRepository,
			testresults.NewService,
			usersRepository.NewRepository,
			users.NewDirectoryConfig,
			users.NewDirectory,
			outbox.NewRepository,
			risk.NewThresholds,
			risk.NewDeriver,
			assessments.NewClassifierConfig,
			assessments.NewClassifier,
			assessmentsRepository.NewRepository,
			assessments.NewService,
			dashboard.NewService,
		),
	}
}

func MainLoop() {
	opts := append(Dependencies(),
		fx.Provide(
			auth.NewConfig,
			auth.NewAuthenticator,
			auth.NewRequestAuthorizer,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	)
	fx.New(opts...).Run()
}
