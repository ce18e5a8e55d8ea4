package usecase

import (
	"sync"

	"voice-intent/internal/intent"
	"voice-intent/pkg/cache"
	pkgLog "voice-intent/pkg/log"
)

// Config tunes the classifier.
type Config struct {
	HistoryCount int
}

type implUseCase struct {
	l            pkgLog.Logger
	llm          intent.LLM
	cache        cache.Store
	music        intent.MusicSource
	historyCount int

	promptMu    sync.Mutex
	promptBuilt bool
	prompt      string
}

// New creates a new intent UseCase instance. music may be nil.
func New(l pkgLog.Logger, llm intent.LLM, store cache.Store, music intent.MusicSource, cfg Config) intent.UseCase {
	if cfg.HistoryCount <= 0 {
		cfg.HistoryCount = DefaultHistoryCount
	}
	return &implUseCase{
		l:            l,
		llm:          llm,
		cache:        store,
		music:        music,
		historyCount: cfg.HistoryCount,
	}
}
