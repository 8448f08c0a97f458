package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/barfigueiras/reservas/docs"
	"github.com/barfigueiras/reservas/internal/api/handler"
	"github.com/barfigueiras/reservas/internal/api/middleware"
	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/core/ports"
)

// Dependencies are the services the HTTP layer is built on.
type Dependencies struct {
	JWTSecret    string
	Log          zerolog.Logger
	Auth         ports.AuthService
	Reservations ports.ReservationService
	Pending      ports.PendingService
	Suggestions  ports.SuggestionService
	Navigation   ports.NavigationService
	// Probes are pinged by the readiness endpoint, keyed by dependency name.
	Probes map[string]ports.Pinger
	// Registerer receives the HTTP metrics. Defaults to the global registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "reservas",
		Registerer: deps.Registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	reservationHandler := handler.NewReservationHandler(deps.Reservations, deps.Pending, deps.Suggestions, deps.Log)
	pendingHandler := handler.NewPendingHandler(deps.Pending, deps.Suggestions, deps.Log)
	suggestionHandler := handler.NewSuggestionHandler(deps.Reservations, deps.Suggestions)
	contractHandler := handler.NewContractHandler(deps.Reservations)
	navigationHandler := handler.NewNavigationHandler(deps.Navigation)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Probes, deps.Auth.Degraded, deps.Reservations.Degraded)

	authMiddleware := middleware.Auth(deps.JWTSecret, deps.Auth)

	// --- Health probes and tooling (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	// --- Public routes ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/occasions", reservationHandler.Catalogue)
	v1.GET("/navigation", navigationHandler.Resolve, middleware.OptionalAuth(deps.JWTSecret, deps.Auth))

	// --- Authenticated routes ---
	app := v1.Group("", authMiddleware)
	app.POST("/auth/logout", authHandler.Logout)
	app.GET("/me", authHandler.Me)

	app.POST("/reservations", reservationHandler.Create)
	app.GET("/reservations", reservationHandler.List)
	app.GET("/reservations/:id", reservationHandler.Get)
	app.PUT("/reservations/:id", reservationHandler.Update)
	app.DELETE("/reservations/:id", reservationHandler.Delete)
	app.POST("/reservations/:id/edit", pendingHandler.EditReservation)
	app.GET("/reservations/:id/suggestion", suggestionHandler.Get)
	app.POST("/reservations/:id/suggestion", suggestionHandler.Request)

	app.GET("/pending", pendingHandler.Get)
	app.PUT("/pending", pendingHandler.Save)
	app.DELETE("/pending", pendingHandler.Reset)
	app.POST("/pending/confirm", pendingHandler.Confirm)
	app.POST("/pending/edit", pendingHandler.Edit)
	app.POST("/pending/cancel", pendingHandler.Cancel)

	app.GET("/contracts", contractHandler.List)
	app.GET("/contracts/export", contractHandler.Export)
	app.GET("/contracts/:id", contractHandler.Get)

	// --- Administrator routes ---
	admin := app.Group("/admin", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", authHandler.Users)

	return e
}

// requestLogger emits one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
