package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/storefront/internal/cfg"
	v1Grpc "github.com/DRSN-tech/storefront/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/storefront/internal/delivery/v1/http"
	"github.com/DRSN-tech/storefront/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/storefront/internal/infrastructure/minio"
	"github.com/DRSN-tech/storefront/internal/infrastructure/password"
	s3Repo "github.com/DRSN-tech/storefront/internal/repository/minio"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/internal/repository/redis"
	redisConv "github.com/DRSN-tech/storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/closer"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/DRSN-tech/storefront/pkg/metrics"
	"github.com/DRSN-tech/storefront/pkg/postgres"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"golang.org/x/crypto/bcrypt"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

// App — собранное приложение: HTTP и gRPC серверы, outbox-воркер и их зависимости.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
	worker  *kafka.OutboxWorker
}

// NewApp подключается к внешним сервисам и собирает граф зависимостей.
// При ошибке уже открытые ресурсы закрываются.
func NewApp(cfg *config.Config, log logger.Logger) (_ *App, err error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(0),
	}
	defer func() {
		if err != nil {
			if closeErr := a.closer.Close(context.Background()); closeErr != nil {
				log.Warnf("cleanup after failed start: %v", closeErr)
			}
		}
	}()

	db, err := initPGDB(log, cfg.Db)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.AddFunc("postgres", db.Close)

	trManager := manager.Must(trmpgx.NewDefaultFactory(db.Pool))

	categoryRepo := pgdb.NewCategoryRepo(db.Pool, pgdbConv.CategoryConverterImpl{})
	productRepo := pgdb.NewProductRepo(db.Pool, pgdbConv.ProductConverterImpl{})
	statusRepo := pgdb.NewStatusRepo(db.Pool, pgdbConv.StatusConverterImpl{})
	orderRepo := pgdb.NewOrderRepo(db.Pool, pgdbConv.OrderConverterImpl{})
	wishlistRepo := pgdb.NewWishlistRepo(db.Pool, pgdbConv.WishlistConverterImpl{})
	userRepo := pgdb.NewUserRepo(db.Pool, pgdbConv.UserConverterImpl{})
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, pgdbConv.OutboxEventConverterImpl{})

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), startupTimeout)
	err = clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName)
	minioCancel()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	imagesInfra := minioInfra.NewMinioInfrastructure(s3Repo.NewImageRepo(minioClient, cfg.Minio), cfg.Minio, log, cleanupCtx)
	a.closer.Add("minio cleanup", func(ctx context.Context) error {
		defer cleanupCancel()
		return imagesInfra.WaitForCleanup(ctx)
	})

	redisClient := clients.NewRedisClient(cfg.Redis)
	a.closer.Add("redis", func(context.Context) error { return redisClient.Close() })

	redisCtx, redisCancel := context.WithTimeout(context.Background(), startupTimeout)
	err = redisClient.Ping(redisCtx)
	redisCancel()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cacheRepo := redis.NewCacheRepo(redisClient, redisConv.ProductConverterImpl{}, cfg.Redis, log)
	sessionRepo := redis.NewSessionRepo(redisClient)

	producer := kafka.NewProducer(log, cfg.Kafka)
	a.closer.Add("kafka producer", func(context.Context) error { return producer.Close() })
	if err := producer.EnsureTopic(startupTimeout); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	appMetrics := metrics.New()

	catalogUC := usecase.NewCatalogUC(categoryRepo, productRepo, trManager, imagesInfra, cacheRepo, log)
	wishlistUC := usecase.NewWishlistUC(wishlistRepo, userRepo, productRepo, trManager, log)
	orderUC := usecase.NewOrderUC(
		orderRepo,
		wishlistRepo,
		statusRepo,
		userRepo,
		outboxRepo,
		kafka.NewProtoEncoder(),
		trManager,
		appMetrics,
		log,
	)
	authUC := usecase.NewAuthUC(userRepo, sessionRepo, password.NewBcryptHasher(bcrypt.DefaultCost), cfg.Session.TTL, log)

	a.worker = kafka.NewOutboxWorker(outboxRepo, log, producer, cfg.Outbox, db.Dsn)

	a.grpcSrv = v1Grpc.NewGRPCServer(cfg.Grpc, log)
	a.grpcSrv.RegisterServices()

	r := chi.NewRouter()
	v1Http.NewRouter(r, log).Init(v1Http.UseCases{
		Catalog:  catalogUC,
		Wishlist: wishlistUC,
		Order:    orderUC,
		Auth:     authUC,
	}, cfg.Http, cfg.Session, appMetrics)

	a.httpSrv = v1Http.NewServer(r, cfg.Http)

	return a, nil
}

// Run запускает серверы и воркер и блокируется до сигнала остановки или падения сервера.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.worker.Start(ctx)
	a.closer.AddFunc("outbox worker", a.worker.Stop)

	errCh := make(chan error, 2)

	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			errCh <- e.Wrap("gRPC server", err)
		}
	}()
	a.closer.Add("grpc server", a.grpcSrv.Stop)

	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- e.Wrap("HTTP server", err)
		}
	}()
	a.closer.Add("http server", a.httpSrv.Stop)

	a.grpcSrv.SetServing(true)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "server fatal error")
	case <-ctx.Done():
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	a.grpcSrv.SetServing(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

// Migrate применяет миграции без запуска сервиса.
func Migrate(cfg *config.PGDBCfg, log logger.Logger) error {
	return postgres.RunMigrations(postgres.DSN(cfg), log)
}

// CreateSuperuser заводит администратора. Сессии и кэш для этого не нужны.
func CreateSuperuser(ctx context.Context, cfg *config.PGDBCfg, log logger.Logger, username, email, pass string) (int64, error) {
	db, err := initPGDB(log, cfg)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer db.Close()

	userRepo := pgdb.NewUserRepo(db.Pool, pgdbConv.UserConverterImpl{})
	authUC := usecase.NewAuthUC(userRepo, nil, password.NewBcryptHasher(bcrypt.DefaultCost), 0, log)

	user, err := authUC.CreateSuperuser(ctx, username, email, pass)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return user.ID, nil
}

func initPGDB(logger logger.Logger, cfg *config.PGDBCfg) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		db.Close()
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
