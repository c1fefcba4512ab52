package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"routine-planner/config"
	_ "routine-planner/docs" // Swagger docs
	"routine-planner/internal/httpserver"
	"routine-planner/internal/middleware"
	"routine-planner/internal/observability"
	plannerHTTP "routine-planner/internal/planner/delivery/http"
	"routine-planner/internal/planner/repository"
	firebaseRepo "routine-planner/internal/planner/repository/firebase"
	memoryRepo "routine-planner/internal/planner/repository/memory"
	"routine-planner/internal/planner/usecase"
	pkgFirebase "routine-planner/pkg/firebase"
	"routine-planner/pkg/gcalendar"
	"routine-planner/pkg/log"
)

// @title       Routine Planner API
// @description Personal slot allocation engine: half-hour calendar grid, deadline-bounded automatic allocation, priority eviction and manual slot selection.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Routine Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Stores
	var (
		slotRepo repository.SlotRepository
		taskRepo repository.TaskRepository
	)
	if cfg.Firebase.DatabaseURL != "" {
		client := pkgFirebase.NewClient(cfg.Firebase.DatabaseURL, cfg.Firebase.AuthToken)
		slotRepo = firebaseRepo.NewSlotRepository(client, logger)
		taskRepo = firebaseRepo.NewTaskRepository(client, logger)
		logger.Infof(ctx, "Store: Firebase RTDB at %s", cfg.Firebase.DatabaseURL)
	} else {
		slotRepo = memoryRepo.NewSlotRepository()
		taskRepo = memoryRepo.NewTaskRepository()
		logger.Warn(ctx, "Store: in-memory (no firebase.database_url configured, data is not persisted)")
	}

	// 4. Google Calendar mirror (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-check/main.go` to verify credentials.")
		} else {
			logger.Info(ctx, "Google Calendar mirror initialized")
		}
	}

	// 5. Metrics
	metrics := observability.NewMetrics("routine_planner")

	// 6. Engine
	shortfallPolicy, err := usecase.PolicyByName(cfg.Engine.ShortfallPolicy)
	if err != nil {
		logger.Error(ctx, "Invalid engine config: ", err)
		return
	}
	placement, err := usecase.PlacementByName(cfg.Engine.EvictionPlacement)
	if err != nil {
		logger.Error(ctx, "Invalid engine config: ", err)
		return
	}

	engineCfg := usecase.Config{
		HorizonDays:       cfg.Engine.HorizonDays,
		MaxBlocksPerDay:   cfg.Engine.MaxBlocksPerDay,
		SleepStart:        cfg.Engine.SleepStart,
		SleepEnd:          cfg.Engine.SleepEnd,
		Lectures:          buildLectures(ctx, logger, cfg.Engine.Lectures),
		ShortfallPolicy:   shortfallPolicy,
		EvictionPlacement: placement,
		SessionTTL:        cfg.Engine.SessionTTL,
		CalendarID:        cfg.GoogleCalendar.CalendarID,
		Timezone:          cfg.Engine.Timezone,
	}
	plannerUC := usecase.New(logger, slotRepo, taskRepo, calendarClient, metrics, engineCfg)

	// 7. Delivery + middleware
	plannerHandler := plannerHTTP.New(logger, plannerUC)
	mw := middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimit.PerMin})

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		PlannerHandler: plannerHandler,
		Middleware:     mw,
		Metrics:        metrics,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// buildLectures converts the configured lecture table, skipping entries
// with an unknown weekday. An empty table falls back to the engine default.
func buildLectures(ctx context.Context, logger log.Logger, lectures []config.LectureConfig) []usecase.LectureBlock {
	if len(lectures) == 0 {
		return nil
	}

	out := make([]usecase.LectureBlock, 0, len(lectures))
	for _, lc := range lectures {
		weekday, err := config.ParseWeekday(lc.Weekday)
		if err != nil {
			logger.Warnf(ctx, "Skipping lecture %q: %v", lc.Label, err)
			continue
		}
		out = append(out, usecase.LectureBlock{
			Weekday: weekday,
			Times:   lc.Times,
			Label:   lc.Label,
		})
	}
	return out
}
