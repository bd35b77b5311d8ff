package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/propelrent/rentwise/internal/api"
	"github.com/propelrent/rentwise/internal/api/metrics"
	"github.com/propelrent/rentwise/internal/core/ports"
	"github.com/propelrent/rentwise/internal/core/service"
	"github.com/propelrent/rentwise/internal/infrastructure/db/memory"
	mongostore "github.com/propelrent/rentwise/internal/infrastructure/db/mongo"
	redisstore "github.com/propelrent/rentwise/internal/infrastructure/db/redis"
	"github.com/propelrent/rentwise/internal/infrastructure/http/handlers"
	"github.com/propelrent/rentwise/internal/infrastructure/owners"
	"github.com/propelrent/rentwise/internal/infrastructure/payment"
	"github.com/propelrent/rentwise/internal/infrastructure/queue"
	"github.com/propelrent/rentwise/internal/pkg/config"
	"github.com/propelrent/rentwise/pkg/logger"
)

const sessionGaugeInterval = 15 * time.Second

// app holds the wired object graph for one server process.
type app struct {
	router     *echo.Echo
	dispatcher *queue.Dispatcher
	sessions   ports.SessionStore
	log        zerolog.Logger
	closers    []func(context.Context) error
}

type stores struct {
	properties ports.PropertyRepository
	tenants    ports.TenantRepository
	payments   ports.PaymentRepository
	sessions   ports.SessionStore
	receipts   ports.ReceiptStore
	inbox      ports.NotificationInbox
}

func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	a := &app{log: log}
	readiness := map[string]handlers.Pinger{}

	st, err := a.openStores(ctx, cfg, readiness)
	if err != nil {
		a.close()
		return nil, err
	}
	a.sessions = st.sessions

	notifications := service.NewNotificationService(st.inbox, logger.Component("notifications"))
	a.dispatcher = queue.NewDispatcher(cfg.NotifyWorkers, notifications, logger.Component("dispatcher"))

	propertySvc, tenantSvc := service.NewListingServices(st.properties, st.tenants, logger.Component("listings"))

	sessionOpts := []service.SessionOption{service.WithNotifier(a.dispatcher)}
	if cfg.AdminPasswordHash != "" {
		sessionOpts = append(sessionOpts, service.WithAdminPasswordHash(cfg.AdminPasswordHash))
	}
	sessionSvc := service.NewSessionService(st.sessions, cfg.JWTSecret, cfg.SessionTTL, logger.Component("sessions"), sessionOpts...)

	paymentSvc := service.NewPaymentService(
		payment.NewSimulatedProcessor(cfg.Payment.Delay),
		st.payments,
		st.tenants,
		st.properties,
		st.receipts,
		a.dispatcher,
		cfg.Payment.Timeout,
		logger.Component("payments"),
	)

	if cfg.SeedData {
		if err := service.Seed(ctx, propertySvc, tenantSvc, st.payments); err != nil {
			a.close()
			return nil, err
		}
	}

	a.router = api.NewRouter(api.Dependencies{
		Log:           log,
		JWTSecret:     cfg.JWTSecret,
		SessionStore:  st.sessions,
		Sessions:      sessionSvc,
		Properties:    propertySvc,
		Tenants:       tenantSvc,
		History:       service.NewPaymentHistoryService(st.payments),
		Payments:      paymentSvc,
		Dashboards:    service.NewDashboardService(st.properties, st.tenants, st.payments, logger.Component("dashboards")),
		Notifications: notifications,
		Owners:        owners.New(cfg.OwnersURL, logger.Component("owners")),
		Readiness:     readiness,
	})
	return a, nil
}

// openStores connects the configured backends and registers their readiness checks.
func (a *app) openStores(ctx context.Context, cfg *config.Config, readiness map[string]handlers.Pinger) (*stores, error) {
	st := &stores{}

	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Disconnect)
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		st.properties = mongostore.NewPropertyRepository(db)
		st.tenants = mongostore.NewTenantRepository(db)
		st.payments = mongostore.NewPaymentRepository(db)
		readiness["mongodb"] = handlers.MongoPinger(db)
	default:
		st.properties = memory.NewPropertyRepository()
		st.tenants = memory.NewTenantRepository()
		st.payments = memory.NewPaymentRepository()
	}

	switch cfg.SessionDriver {
	case config.DriverRedis:
		rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return rdb.Close() })
		st.sessions = redisstore.NewSessionStore(rdb, cfg.SessionTTL)
		st.receipts = redisstore.NewReceiptStore(rdb)
		st.inbox = redisstore.NewInbox(rdb)
		readiness["redis"] = handlers.RedisPinger(rdb)
	default:
		st.sessions = memory.NewSessionStore()
		st.receipts = memory.NewReceiptStore()
		st.inbox = memory.NewInbox()
	}

	return st, nil
}

// start launches the background workers. They stop with ctx.
func (a *app) start(ctx context.Context) {
	a.dispatcher.Start(ctx)
	go a.trackSessions(ctx)
}

// trackSessions keeps the live sessions gauge current, including expiries.
func (a *app) trackSessions(ctx context.Context) {
	ticker := time.NewTicker(sessionGaugeInterval)
	defer ticker.Stop()

	for {
		n, err := a.sessions.Count(ctx)
		if err != nil {
			a.log.Warn().Err(err).Msg("count sessions")
		} else {
			metrics.SessionsActive.Set(float64(n))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.log.Error().Err(err).Msg("closing backend")
		}
	}
}
