package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/propelrent/rentwise/docs"
	"github.com/propelrent/rentwise/internal/api/handler"
	"github.com/propelrent/rentwise/internal/api/middleware"
	"github.com/propelrent/rentwise/internal/core/domain"
	"github.com/propelrent/rentwise/internal/core/ports"
	"github.com/propelrent/rentwise/internal/infrastructure/http/handlers"
)

// Dependencies are the services the HTTP layer is wired to.
type Dependencies struct {
	Log       zerolog.Logger
	JWTSecret string

	SessionStore  ports.SessionStore
	Sessions      ports.SessionService
	Properties    ports.PropertyService
	Tenants       ports.TenantService
	History       ports.PaymentHistoryService
	Payments      ports.PaymentService
	Dashboards    ports.DashboardService
	Notifications handler.NotificationDrainer
	Owners        ports.OwnerDirectory

	// Readiness lists the external dependencies checked by /health/ready.
	Readiness map[string]handlers.Pinger
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
	e.Use(echoprometheus.NewMiddleware("rentwise"))

	// --- Health checks, metrics and docs (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboards)
	propertyHandler := handler.NewPropertyHandler(deps.Properties)
	tenantHandler := handler.NewTenantHandler(deps.Tenants)
	paymentHandler := handler.NewPaymentHandler(deps.History, deps.Payments, deps.Dashboards)
	notificationHandler := handler.NewNotificationHandler(deps.Notifications)
	ownerHandler := handler.NewOwnerHandler(deps.Owners)

	auth := middleware.Auth(deps.JWTSecret, deps.SessionStore)
	onDashboard := middleware.Stage(domain.StageDashboard)

	v1 := e.Group("/v1")

	// --- Session lifecycle ---
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/session", authHandler.Session, auth)
	v1.POST("/auth/continue", authHandler.Continue, auth)
	v1.POST("/auth/logout", authHandler.Logout, auth)

	v1.GET("/welcome", dashboardHandler.Welcome, auth)
	v1.GET("/notifications", notificationHandler.Drain, auth)

	// --- Admin dashboard ---
	admin := v1.Group("/admin", auth, middleware.RBAC(domain.UserAdmin), onDashboard)
	admin.GET("/dashboard", dashboardHandler.Admin)

	admin.GET("/properties", propertyHandler.List)
	admin.POST("/properties", propertyHandler.Create)
	admin.GET("/properties/new", propertyHandler.New)
	admin.GET("/properties/:id", propertyHandler.Get)
	admin.PUT("/properties/:id", propertyHandler.Update)
	admin.DELETE("/properties/:id", propertyHandler.Delete)

	admin.GET("/tenants", tenantHandler.List)
	admin.POST("/tenants", tenantHandler.Create)
	admin.GET("/tenants/new", tenantHandler.New)
	admin.GET("/tenants/:id", tenantHandler.Get)
	admin.PUT("/tenants/:id", tenantHandler.Update)
	admin.DELETE("/tenants/:id", tenantHandler.Delete)

	admin.GET("/payments", paymentHandler.History)
	admin.GET("/owners", ownerHandler.List)

	// --- Tenant portal ---
	tenant := v1.Group("/tenant", auth, middleware.RBAC(domain.UserTenant), onDashboard)
	tenant.GET("/dashboard", dashboardHandler.Tenant)
	tenant.GET("/payments", paymentHandler.TenantHistory)
	tenant.POST("/payments", paymentHandler.Submit)

	return e
}

// requestLogger logs one structured line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
