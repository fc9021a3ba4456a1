package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	mediagallery "github.com/jxjxx71718/mediaGallery"
	"github.com/jxjxx71718/mediaGallery/config"
	"github.com/jxjxx71718/mediaGallery/internal/application/usecase"
	brokerRepository "github.com/jxjxx71718/mediaGallery/internal/domain/repository/broker"
	"github.com/jxjxx71718/mediaGallery/internal/domain/repository/store"
	"github.com/jxjxx71718/mediaGallery/internal/infrastructure/broker"
	"github.com/jxjxx71718/mediaGallery/internal/infrastructure/database"
	"github.com/jxjxx71718/mediaGallery/internal/infrastructure/filestore"
	"github.com/jxjxx71718/mediaGallery/internal/infrastructure/grpcserver"
	"github.com/jxjxx71718/mediaGallery/internal/infrastructure/minio"
	"github.com/jxjxx71718/mediaGallery/internal/presentation"
	"github.com/jxjxx71718/mediaGallery/internal/presentation/handler"
	"github.com/jxjxx71718/mediaGallery/internal/presentation/middleware"
	"github.com/jxjxx71718/mediaGallery/pkg/logger"
)

type catalogStore interface {
	store.Loader
	store.Saver
}

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running media gallery", "version", mediagallery.StringVersion(), "storage", cfg.Storage.Driver)

	mediaStore, closeStore, err := openStore(cfg)
	if err != nil {
		ExitOnError(err)
	}
	defer closeStore()

	var publisher brokerRepository.Publisher
	if cfg.BrokerConfig.Enabled {
		brokerClient, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer brokerClient.Close()

		publisher = broker.NewPublisher(brokerClient, cfg.PublisherConfig)
	}

	catalog := usecase.NewCatalog(mediaStore, mediaStore, publisher)
	metrics := middleware.NewMetrics()

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(middleware.RequestLogger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.HTTP.BodyLimit))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.HTTP.RateLimit))))
	e.Use(metrics.Middleware())

	e.GET(presentation.HealthPath, func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET(presentation.MetricsPath, echo.WrapHandler(metrics.Handler()))

	handler.Register(e, catalog)

	if cfg.HTTP.UploadsDir != "" {
		e.Static(presentation.UploadsPrefix, cfg.HTTP.UploadsDir)
	}

	if cfg.HTTP.StaticDir != "" {
		e.Static("/", cfg.HTTP.StaticDir)
	}

	var grpcServer *grpcserver.Server
	if cfg.GRPCServer.Enabled {
		grpcServer = grpcserver.New(cfg.GRPCServer)

		go func() {
			if err := grpcServer.Start(); err != nil {
				ExitOnError(fmt.Errorf("grpc server: %w", err))
			}
		}()

		grpcServer.SetServing(true)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTP.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	if grpcServer != nil {
		grpcServer.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}
}

// openStore builds the catalog backend selected by storage.driver.
func openStore(cfg *config.Config) (catalogStore, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.DriverMinIO:
		client, err := minio.New(&cfg.MinIOClient)
		if err != nil {
			return nil, noop, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := client.EnsureBucket(ctx, cfg.Storage.MinIO.Bucket); err != nil {
			return nil, noop, err
		}

		return minio.NewStore(client.MinioClient, &cfg.Storage.MinIO), noop, nil

	case config.DriverMongo:
		db, err := database.Connect(cfg.DBConfig)
		if err != nil {
			return nil, noop, err
		}

		return database.NewMediaStore(db), func() {
			if err := db.Stop(); err != nil {
				logger.Error("couldn't stop db instance", "err", err)
			}
		}, nil

	default:
		s, err := filestore.New(cfg.Storage.File)
		if err != nil {
			return nil, noop, err
		}

		return s, noop, nil
	}
}
