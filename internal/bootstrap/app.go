package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"seotext-backend/internal/readability"
	"seotext-backend/internal/services/health"
	"seotext-backend/internal/shared/config"
	"seotext-backend/internal/shared/server"
	"seotext-backend/internal/shared/storage/db"
	"seotext-backend/internal/shared/storage/object"
	localstore "seotext-backend/internal/shared/storage/object/local"
	s3store "seotext-backend/internal/shared/storage/object/s3"
	"seotext-backend/internal/shared/telemetry"
	"seotext-backend/internal/texts"
	"seotext-backend/internal/uploads"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	DB                 *sql.DB
	Store              object.ObjectStore
	Presigner          uploads.Presigner
	TextRepo           texts.Repo
	TextService        *texts.Service
	ReadabilityService *readability.Service
	UploadService      *uploads.Service

	closers []func() error
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	if strings.TrimSpace(cfg.TextStore) == "" {
		cfg.TextStore = config.TextStoreMemory
	}
	ctx := context.Background()

	app := &App{Config: cfg}

	if err := buildTextRepo(ctx, app); err != nil {
		app.Close()
		return nil, err
	}
	if err := buildStore(ctx, app); err != nil {
		app.Close()
		return nil, err
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		HealthHandler:      health.NewHandler(health.NewService(app.DB, app.Config.TextStore)),
		TextHandler:        texts.NewHandler(app.TextService),
		ReadabilityHandler: readability.NewHandler(app.ReadabilityService),
		UploadHandler:      uploads.NewHandler(app.UploadService),
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":          app.Config.Env,
		"text_store":   app.Config.TextStore,
		"object_store": app.Config.ObjectStoreType,
		"presign":      app.Presigner != nil,
	})
	return app, nil
}

// Close releases the text repository and database handles.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func buildTextRepo(ctx context.Context, app *App) error {
	cfg := app.Config
	switch cfg.TextStore {
	case config.TextStoreMemory:
		app.TextRepo = texts.NewMemoryRepo()
		return nil

	case config.TextStoreBolt:
		if dir := filepath.Dir(cfg.BoltPath); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create bolt dir: %w", err)
			}
		}
		repo, err := texts.OpenBoltRepo(cfg.BoltPath)
		if err != nil {
			return err
		}
		app.TextRepo = repo
		app.closers = append(app.closers, repo.Close)
		return nil

	case config.TextStorePostgres:
		sqlDB, err := buildDB(ctx, cfg)
		if err != nil {
			return err
		}
		if sqlDB == nil {
			app.Config.TextStore = config.TextStoreMemory
			app.TextRepo = texts.NewMemoryRepo()
			return nil
		}
		app.DB = sqlDB
		app.TextRepo = &texts.PGRepo{DB: sqlDB}
		app.closers = append(app.closers, sqlDB.Close)
		return nil

	default:
		return fmt.Errorf("unknown text store %q", cfg.TextStore)
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.db_fallback", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err == nil {
		if err = db.RunMigrations(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Error("bootstrap.db_fallback", map[string]any{"err": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, app *App) error {
	cfg := app.Config
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return err
		}
		app.Store = store
		app.Presigner = store
	default:
		app.Store = localstore.New(cfg.LocalStoreDir)
	}
	return nil
}

func buildServices(app *App) {
	app.TextService = &texts.Service{
		Repo:         app.TextRepo,
		MaxTextBytes: app.Config.MaxTextBytes,
	}
	app.ReadabilityService = &readability.Service{
		MaxTextBytes: app.Config.MaxTextBytes,
		Texts:        app.TextService,
	}
	app.UploadService = &uploads.Service{
		Store:          app.Store,
		Presigner:      app.Presigner,
		Texts:          app.TextService,
		Readability:    app.ReadabilityService,
		MaxUploadBytes: app.Config.MaxUploadBytes,
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
