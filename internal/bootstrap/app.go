package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resumeforge-backend/internal/ai"
	"resumeforge-backend/internal/drafts"
	"resumeforge-backend/internal/extract"
	"resumeforge-backend/internal/pages"
	"resumeforge-backend/internal/render"
	"resumeforge-backend/internal/shared/config"
	"resumeforge-backend/internal/shared/server"
	"resumeforge-backend/internal/shared/storage/db"
)

// App holds shared dependencies wired once at startup.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	DraftsRepo    drafts.Repo
	DraftsService *drafts.Service
	AIClient      *ai.Client
	DraftsHandler *drafts.Handler
	AIHandler     *ai.Handler
	RenderHandler *render.Handler
	PagesHandler  *pages.Handler
	ImportHandler *extract.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var draftsRepo drafts.Repo
	if sqlDB != nil {
		draftsRepo = &drafts.PGRepo{DB: sqlDB}
	} else {
		draftsRepo = drafts.NewMemoryRepo()
	}

	draftsSvc := drafts.NewService(draftsRepo)
	aiClient := ai.NewClient(cfg)

	app := &App{
		Config:        cfg,
		DB:            sqlDB,
		DraftsRepo:    draftsRepo,
		DraftsService: draftsSvc,
		AIClient:      aiClient,
		DraftsHandler: drafts.NewHandler(draftsSvc),
		AIHandler:     ai.NewHandler(aiClient),
		RenderHandler: render.NewHandler(),
		PagesHandler:  pages.NewHandler(),
		ImportHandler: extract.NewHandler(),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		AIHandler:     app.AIHandler,
		DraftsHandler: app.DraftsHandler,
		RenderHandler: app.RenderHandler,
		PagesHandler:  app.PagesHandler,
		ImportHandler: app.ImportHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory draft store")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory draft store: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory draft store: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
