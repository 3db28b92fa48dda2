package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abecedary/abecedary/internal/config"
	"github.com/abecedary/abecedary/internal/database"
	"github.com/abecedary/abecedary/internal/database/catalog"
	"github.com/abecedary/abecedary/internal/database/practice"
	http_controllers "github.com/abecedary/abecedary/internal/http"
	"github.com/abecedary/abecedary/internal/sampler"
	"github.com/abecedary/abecedary/internal/scheduler"
	"github.com/abecedary/abecedary/internal/seed"
	"github.com/abecedary/abecedary/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Abecedary v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	catalogRepo := catalog.NewRepository(db.DB)
	practiceRepo := practice.NewRepository(db.DB)
	letterSampler := sampler.NewSampler(catalogRepo)

	if cfg.Seed.OnStartup {
		result, err := seed.Run(catalogRepo)
		if err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		if result.CreatedAlphabets > 0 || result.CreatedLetters > 0 {
			log.Printf("Seeded %d alphabets and %d letters", result.CreatedAlphabets, result.CreatedLetters)
		}
	}

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewCleanupSessionsQueue(practiceRepo),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Periodic cleanup of old completed sessions runs through the task
	// queue, so both need to be enabled.
	var housekeeping *scheduler.HousekeepingScheduler
	if cfg.Housekeeping.Enabled && taskClient != nil {
		housekeeping = scheduler.NewHousekeepingScheduler(taskClient, cfg.Housekeeping.Schedule, cfg.Housekeeping.Retention)
		if err := housekeeping.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start housekeeping scheduler: %v", err)
		}
	} else if cfg.Housekeeping.Enabled {
		log.Printf("WARNING: housekeeping is enabled but the task queue is disabled; skipping session cleanup")
	}

	routerCfg := http_controllers.RouterConfig{
		Database:      db,
		CatalogStore:  catalogRepo,
		PracticeStore: practiceRepo,
		Sampler:       letterSampler,
		Version:       version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if housekeeping != nil {
			housekeeping.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
