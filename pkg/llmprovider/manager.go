package llmprovider

import (
	"context"
	"fmt"
	"time"

	"voice-intent/pkg/log"
	"voice-intent/pkg/metrics"
)

// Manager walks providers in priority order, retrying each before falling back.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config tunes retry and fallback.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	// MaxTotalTimeout bounds the whole chain, retries included. Zero means no bound.
	MaxTotalTimeout time.Duration
}

func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Label identifies the primary provider as "name/model".
func (m *Manager) Label() string {
	if len(m.providers) == 0 {
		return "none"
	}
	p := m.providers[0]
	return p.Name() + "/" + p.Model()
}

// GenerateContent returns the first successful response. When every provider fails the
// error wraps ErrAllProvidersFailed and the last *ProviderError.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for _, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("llmprovider.Manager: gave up before %s: %w", provider.Name(), err)
		}

		resp, attempts, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp, attempts)
			return resp, nil
		}

		m.logFailure(ctx, provider, attempts, err)
		lastErr = &ProviderError{Provider: provider.Name(), Attempts: attempts, Err: err}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry backs off linearly and stops early on errors a retry cannot fix.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, int, error) {
	var lastErr error
	attempt := 0

	for attempt < m.config.RetryAttempts {
		if attempt > 0 {
			timer := time.NewTimer(time.Duration(attempt) * m.config.RetryDelay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil, attempt, ctx.Err()
			}
		}
		attempt++

		resp, err := provider.GenerateContent(ctx, req)
		metrics.LLMProviderRequests.WithLabelValues(provider.Name(), outcomeLabel(err)).Inc()
		if err == nil {
			return resp, attempt, nil
		}

		lastErr = err
		if !retryable(err) {
			break
		}
	}

	return nil, attempt, lastErr
}

func outcomeLabel(err error) string {
	if err == nil {
		return outcomeOK
	}
	if o := outcomeOf(err); o != outcomeUnclassified {
		return o
	}
	return outcomeError
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response, attempts int) {
	in, out := 0, 0
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "llmprovider.Manager: generation ok provider=%s model=%s attempts=%d input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), attempts, in, out)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, attempts int, err error) {
	m.logger.Warnf(ctx, "llmprovider.Manager: generation failed provider=%s model=%s attempts=%d: %v",
		provider.Name(), provider.Model(), attempts, err)
}
