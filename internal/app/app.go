package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voice-intent/config"
	"voice-intent/internal/assistant"
	assistantUC "voice-intent/internal/assistant/usecase"
	"voice-intent/internal/function"
	"voice-intent/internal/intent"
	intentUC "voice-intent/internal/intent/usecase"
	"voice-intent/internal/music"
	"voice-intent/internal/session"
	"voice-intent/pkg/cache"
	"voice-intent/pkg/llmprovider"
	"voice-intent/pkg/log"
	"voice-intent/pkg/mcp"
)

// App is the wired service shared by the API server and the CLI.
type App struct {
	Intent    intent.UseCase
	Assistant assistant.UseCase
	Sessions  *session.Manager
	Registry  *function.Registry
	Catalog   *music.Catalog
	LLM       *llmprovider.Completer

	redis *cache.RedisStore
}

// New builds every component from cfg.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	completer, err := newCompleter(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	store, err := cache.New(cache.Config{
		Backend: cfg.Cache.Backend,
		Size:    cfg.Cache.Size,
		TTL:     cfg.Cache.TTL,
	}, cache.RedisOptions{
		Address:  cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("app: cache: %w", err)
	}
	l.Infof(ctx, "Intent cache backend: %s", cfg.Cache.Backend)

	catalog := music.New(ctx, l, music.Config{Dir: cfg.Music.Dir, Extensions: cfg.Music.Extensions})
	l.Infof(ctx, "Music catalog: %d song(s) in %s", len(catalog.Names()), cfg.Music.Dir)

	registry, err := function.NewDefaultRegistry(l, catalog)
	if err != nil {
		return nil, fmt.Errorf("app: functions: %w", err)
	}

	var tools session.ToolSource
	if len(cfg.MCP.Endpoints) > 0 {
		client, err := mcp.New(mcp.Config{Endpoints: cfg.MCP.Endpoints, Timeout: cfg.MCP.Timeout})
		if err != nil {
			return nil, fmt.Errorf("app: mcp: %w", err)
		}
		tools = session.NewMCPTools(client)
		l.Infof(ctx, "MCP tool endpoints: %v", cfg.MCP.Endpoints)
	}

	sessions := session.NewManager(session.Config{
		MaxSessions:   cfg.Session.MaxSessions,
		TTL:           cfg.Session.TTL,
		Prompt:        cfg.Session.Prompt,
		AssistantName: cfg.Session.AssistantName,
	}, registry, tools)

	intentUseCase := intentUC.New(l, completer, store, catalog, intentUC.Config{HistoryCount: cfg.Intent.HistoryCount})
	assistantUseCase := assistantUC.New(l, intentUseCase, sessions, assistantUC.Config{
		SmartHomeDevices: cfg.Plugins.HomeAssistant.Devices,
		Timezone:         cfg.Assistant.Timezone,
		City:             cfg.Assistant.City,
	})

	a := &App{
		Intent:    intentUseCase,
		Assistant: assistantUseCase,
		Sessions:  sessions,
		Registry:  registry,
		Catalog:   catalog,
		LLM:       completer,
	}
	if rs, ok := store.(*cache.RedisStore); ok {
		a.redis = rs
	}

	return a, nil
}

func newCompleter(ctx context.Context, cfg *config.Config, l log.Logger) (*llmprovider.Completer, error) {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, fmt.Errorf("app: llm providers: %w", err)
	}

	retryDelay, err := parseDuration(cfg.LLM.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("app: llm.retry_delay: %w", err)
	}
	maxTotal, err := parseDuration(cfg.LLM.MaxTotalTimeout)
	if err != nil {
		return nil, fmt.Errorf("app: llm.max_total_timeout: %w", err)
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, l)
	l.Infof(ctx, "Intent model: %s (%d provider(s))", manager.Label(), len(providers))

	return llmprovider.NewCompleter(manager, llmprovider.CompleterOptions{
		Temperature: cfg.Intent.Temperature,
		MaxTokens:   cfg.Intent.MaxTokens,
	}), nil
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

// CachePing checks the shared cache. The in-memory backend is always ready.
func (a *App) CachePing(ctx context.Context) error {
	if a.redis == nil {
		return nil
	}
	return a.redis.Ping(ctx)
}

// Stats summarizes the live state for the health endpoint.
func (a *App) Stats() map[string]any {
	return map[string]any{
		"model":    a.LLM.Label(),
		"sessions": a.Sessions.Len(),
		"songs":    len(a.Catalog.Names()),
		"cache":    a.cacheBackend(),
	}
}

func (a *App) cacheBackend() string {
	if a.redis != nil {
		return "redis"
	}
	return "memory"
}

// Close releases external connections.
func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	return errors.Join(errs...)
}
