package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "recruit-backend/internal/auth"
	"recruit-backend/internal/extract"
	"recruit-backend/internal/llm"
	openai "recruit-backend/internal/llm/openai"
	"recruit-backend/internal/matching"
	"recruit-backend/internal/queue"
	"recruit-backend/internal/requirements"
	"recruit-backend/internal/shared/config"
	"recruit-backend/internal/shared/server"
	"recruit-backend/internal/shared/storage/db"
	"recruit-backend/internal/shared/storage/object"
	localstore "recruit-backend/internal/shared/storage/object/local"
	s3store "recruit-backend/internal/shared/storage/object/s3"
	"recruit-backend/internal/submissions"
	"recruit-backend/internal/users"
)

// App holds shared dependencies for the API server and the worker.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Queue  queue.Client

	UsersRepo        users.UsersRepo
	RequirementsRepo requirements.RequirementsRepo
	SubmissionsRepo  submissions.SubmissionsRepo
	MatchRepo        matching.MatchRepo

	UsersService        *users.Service
	RequirementsService *requirements.Service
	SubmissionsService  *submissions.Service
	MatchingService     *matching.Service

	UsersHandler        *users.Handler
	RequirementsHandler *requirements.Handler
	SubmissionsHandler  *submissions.Handler
	MatchingHandler     *matching.Handler
	GoogleAuth          *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	queueClient, err := buildQueue(ctx)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Queue:  queueClient,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:              app.Config,
		UsersHandler:        app.UsersHandler,
		RequirementsHandler: app.RequirementsHandler,
		SubmissionsHandler:  app.SubmissionsHandler,
		MatchingHandler:     app.MatchingHandler,
		GoogleAuth:          app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildQueue(ctx context.Context) (queue.Client, error) {
	if strings.TrimSpace(os.Getenv("MATCH_SQS_QUEUE_URL")) == "" {
		return nil, nil
	}
	return queue.NewSQSClient(ctx)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.RequirementsRepo = &requirements.PGRepo{DB: app.DB}
		app.SubmissionsRepo = &submissions.PGRepo{DB: app.DB}
		app.MatchRepo = &matching.PGRepo{DB: app.DB}
	} else {
		app.UsersRepo = users.NewMemoryRepo()
		app.RequirementsRepo = requirements.NewMemoryRepo()
		app.SubmissionsRepo = submissions.NewMemoryRepo()
		app.MatchRepo = matching.NewMemoryRepo()
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "openai" {
		openaiClient, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), app.Config.LLMModel)
		if err != nil {
			return err
		}
		llmClient = openaiClient
	}

	app.UsersService = &users.Service{Repo: app.UsersRepo}
	app.RequirementsService = &requirements.Service{Repo: app.RequirementsRepo}
	app.SubmissionsService = &submissions.Service{
		Repo:         app.SubmissionsRepo,
		Requirements: app.RequirementsRepo,
		Store:        app.Store,
	}
	app.MatchingService = &matching.Service{
		Repo:         app.MatchRepo,
		Submissions:  app.SubmissionsRepo,
		Requirements: app.RequirementsRepo,
		Store:        app.Store,
		Fetcher:      extract.NewFetcher(),
		LLM:          llmClient,
		Limiter:      llm.NewMinuteLimiter(nil),
		JobQueue:     app.Queue,
	}

	app.UsersHandler = users.NewHandler(app.UsersService)
	app.RequirementsHandler = requirements.NewHandler(app.RequirementsService)
	app.SubmissionsHandler = submissions.NewHandler(app.SubmissionsService)
	app.MatchingHandler = matching.NewHandler(app.MatchingService)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.UsersService,
	)

	return nil
}
