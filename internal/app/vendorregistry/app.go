package vendorregistry

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/vendor-registry/internal/cache"
	"github.com/magabrotheeeer/vendor-registry/internal/config"
	"github.com/magabrotheeeer/vendor-registry/internal/lib/jwt"
	"github.com/magabrotheeeer/vendor-registry/internal/migrations"
	"github.com/magabrotheeeer/vendor-registry/internal/obs"
	authservice "github.com/magabrotheeeer/vendor-registry/internal/services/auth"
	firmservice "github.com/magabrotheeeer/vendor-registry/internal/services/firm"
	productservice "github.com/magabrotheeeer/vendor-registry/internal/services/product"
	uploadservice "github.com/magabrotheeeer/vendor-registry/internal/services/upload"
	vendorservice "github.com/magabrotheeeer/vendor-registry/internal/services/vendor"
	"github.com/magabrotheeeer/vendor-registry/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker)
	vendorService := vendorservice.NewVendorService(db, cacheRedis, logger)
	firmService := firmservice.NewFirmService(db, cacheRedis, logger)
	productService := productservice.NewProductService(db, logger)
	uploadService, err := uploadservice.NewUploadService(cfg.UploadsDir, logger)
	if err != nil {
		return nil, err
	}

	obs.Init()

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, &Services{
		Auth:    authService,
		Vendor:  vendorService,
		Firm:    firmService,
		Product: productService,
		Upload:  uploadService,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
