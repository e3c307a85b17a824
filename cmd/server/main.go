package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/govassure/delivery-tracker/internal/config"
	"github.com/govassure/delivery-tracker/internal/domain/assessment"
	"github.com/govassure/delivery-tracker/internal/domain/history"
	"github.com/govassure/delivery-tracker/internal/domain/insight"
	"github.com/govassure/delivery-tracker/internal/domain/project"
	"github.com/govassure/delivery-tracker/internal/sqlite"
	"github.com/govassure/delivery-tracker/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	projectRepo := sqlite.NewProjectRepository(db)
	assessmentRepo := sqlite.NewAssessmentRepository(db)
	summaryRepo := sqlite.NewSummaryRepository(db)
	historyRepo := sqlite.NewHistoryRepository(db)
	standardRepo := sqlite.NewStandardRepository(db)

	historySvc := history.NewService(historyRepo, logger)
	assessmentSvc := assessment.NewService(assessmentRepo, summaryRepo, standardRepo, historySvc, logger)
	projectSvc := project.NewService(projectRepo, historySvc, assessmentSvc, logger)
	insightSvc := insight.NewService(projectSvc, historyRepo, assessmentSvc, standardRepo, logger)

	var authMiddleware func(http.Handler) http.Handler
	if cfg.Auth.Enabled {
		authMiddleware = transport.AuthMiddleware(&apiKeyResolver{db: db})
	}

	router := transport.NewRouter(transport.Services{
		Projects:    projectSvc,
		Assessments: assessmentSvc,
		History:     historySvc,
		Standards:   standardRepo,
		Insights:    insightSvc,
	}, authMiddleware, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr, "auth", cfg.Auth.Enabled)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type apiKeyResolver struct {
	db *sqlite.DB
}

// ResolveActor maps a bearer token onto the key's description, which names
// the caller in ledger entries.
func (r *apiKeyResolver) ResolveActor(ctx context.Context, token string) (string, error) {
	hash := hashToken(token)
	var description string
	err := r.db.QueryRowContext(ctx, `SELECT description FROM api_keys WHERE key_hash = ?`, hash).Scan(&description)
	if err != nil || description == "" {
		return "", fmt.Errorf("unauthorized: invalid token")
	}
	_, _ = r.db.ExecContext(ctx, `UPDATE api_keys SET last_used = ? WHERE key_hash = ?`, time.Now(), hash)
	return description, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
