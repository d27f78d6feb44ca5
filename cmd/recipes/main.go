package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	_ "github.com/lib/pq"
	"github.com/mwhite7112/woodpantry-recipes/internal/api"
	"github.com/mwhite7112/woodpantry-recipes/internal/cache"
	"github.com/mwhite7112/woodpantry-recipes/internal/clients"
	"github.com/mwhite7112/woodpantry-recipes/internal/db"
	"github.com/mwhite7112/woodpantry-recipes/internal/events"
	"github.com/mwhite7112/woodpantry-recipes/internal/service"
)

func main() {
	setupLogging(envOrDefault("LOG_LEVEL", "info"))

	port := envOrDefault("PORT", "8080")

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("DB_URL is required")
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}

	extractModel := envOrDefault("EXTRACT_MODEL", "gpt-4o-2024-08-06")
	openaiBaseURL := envOrDefault("OPENAI_BASE_URL", clients.DefaultOpenAIBaseURL)
	extractTimeout := durationOrDefault("EXTRACT_TIMEOUT", 60*time.Second)
	cacheTTL := durationOrDefault("CACHE_TTL", 0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queries, closeDB, err := openDatabase(dbURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer closeDB()

	extractionCache, closeCache, err := openCache(ctx, envOrDefault("CACHE_BACKEND", "file"), cacheTTL)
	if err != nil {
		log.Fatalf("extraction cache: %v", err)
	}
	defer closeCache()

	var publisher service.EventPublisher
	if rabbitURL := os.Getenv("RABBITMQ_URL"); rabbitURL != "" {
		pub, err := events.NewRecipeCreatedPublisher(rabbitURL)
		if err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		defer pub.Close() //nolint:errcheck
		publisher = pub
	} else {
		slog.Info("RABBITMQ_URL not set, recipe.created events disabled")
	}

	fetchClient := clients.NewPublicHTTPClient(30 * time.Second)
	llmClient := &http.Client{Timeout: extractTimeout + 5*time.Second}

	store := service.NewRecipeStore(queries)
	llm := clients.NewOpenAIClient(openaiBaseURL, openaiKey, extractModel, llmClient)
	extractor := service.NewRecipeExtractor(extractionCache, llm, extractTimeout)
	pipeline := service.NewPipeline(clients.NewCaptionClient(fetchClient), extractor, store, publisher)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           api.NewRouter(pipeline, store),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      extractTimeout + 45*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		slog.Info("recipes service listening", "addr", srv.Addr, "model", llm.Model())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

// openDatabase accepts postgres:// URLs and sqlite://path.
func openDatabase(dbURL string) (db.Querier, func(), error) {
	if path, ok := strings.CutPrefix(dbURL, "sqlite://"); ok {
		store, err := db.OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("using sqlite store", "path", path)
		return store, func() { _ = store.Close() }, nil
	}

	sqlDB, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.Migrate(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}
	return db.New(sqlDB), func() { _ = sqlDB.Close() }, nil
}

func openCache(ctx context.Context, backend string, ttl time.Duration) (cache.Cache, func(), error) {
	switch backend {
	case "memory":
		return cache.NewMemory(ttl), func() {}, nil
	case "file":
		dir := envOrDefault("CACHE_DIR", "./extraction_cache")
		c, err := cache.NewFile(dir, ttl)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("using file extraction cache", "dir", dir)
		return c, func() {}, nil
	case "redis":
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			return nil, nil, errors.New("REDIS_URL is required for the redis cache backend")
		}
		client, err := cache.DialRedis(ctx, redisURL)
		if err != nil {
			return nil, nil, err
		}
		return cache.NewRedis(client, ttl), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown CACHE_BACKEND %q", backend)
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	return d
}
