package usecase

import (
	"context"
	"fmt"
	"time"

	"voice-intent/internal/intent"
	"voice-intent/internal/model"
	"voice-intent/pkg/cache"
	pkgLog "voice-intent/pkg/log"
	"voice-intent/pkg/metrics"
)

// Detect classifies input.Text for sess.
//
// A session without a function handler always gets continue_chat without
// touching the cache or the LLM. Otherwise a cached result is returned
// verbatim; on a miss the LLM is asked, the output is parsed and, unless it
// fell back, written to the cache. Nothing is written when the LLM fails or
// ctx is cancelled.
func (uc *implUseCase) Detect(ctx context.Context, sess intent.Session, input intent.DetectInput) (intent.DetectOutput, error) {
	if uc.llm == nil {
		return intent.DetectOutput{}, intent.ErrLLMNotConfigured
	}

	if !sess.HasFunctionHandler() {
		metrics.IntentDetections.WithLabelValues(intent.KindContinueChat.String()).Inc()
		return intent.DetectOutput{Result: intent.ContinueChatResult, Intent: intent.ContinueChat()}, nil
	}

	ctx = pkgLog.WithDeviceID(ctx, sess.DeviceID())
	start := time.Now()
	key := CacheKey(sess.DeviceID(), input.Text)

	if cached, ok := uc.lookup(ctx, key); ok {
		uc.l.Debugf(ctx, "%s: cache hit key=%s result=%s elapsed=%s", LogPrefixDetect, key, cached, time.Since(start))
		out := intent.DetectOutput{Result: cached, Intent: Decode(cached), Cached: true}
		metrics.IntentDetections.WithLabelValues(out.Intent.Kind.String()).Inc()
		return out, nil
	}

	systemPrompt := uc.systemPrompt(ctx, sess) + ambientBlock(uc.musicNames(), input.SmartHome)
	userPrompt := userPromptPrefix + BuildTranscript(input.History, uc.historyCount, input.Text)

	label := uc.llm.Label()
	llmStart := time.Now()
	raw, err := uc.llm.Complete(ctx, systemPrompt, userPrompt)
	llmElapsed := time.Since(llmStart)
	metrics.IntentLLMDuration.WithLabelValues(label).Observe(llmElapsed.Seconds())
	if err != nil {
		uc.l.Errorf(ctx, "%s: llm %s failed after %s: %v", LogPrefixDetect, label, llmElapsed, err)
		return intent.DetectOutput{}, fmt.Errorf("%s: %w", LogPrefixDetect, err)
	}
	if err := ctx.Err(); err != nil {
		return intent.DetectOutput{}, err
	}

	parsed := ParseResponse(raw)
	if parsed.Fallback {
		metrics.IntentParseFallbacks.Inc()
		metrics.IntentDetections.WithLabelValues(intent.KindContinueChat.String()).Inc()
		uc.l.Warnf(ctx, "%s: unparseable model output, falling back to continue_chat: %q", LogPrefixDetect, raw)
		return intent.DetectOutput{Result: parsed.Result, Intent: parsed.Intent}, nil
	}

	uc.l.Infof(ctx, "%s: model=%s intent=%s args=%v llm=%s total=%s",
		LogPrefixDetect, label, parsed.Intent.Name, parsed.Intent.Arguments, llmElapsed, time.Since(start))

	switch parsed.Intent.Kind {
	case intent.KindContextAnswer:
		uc.l.Debugf(ctx, "%s: answering from context", LogPrefixDetect)
	case intent.KindContinueChat:
		sess.PruneDialogue(model.RoleTool, model.RoleFunction)
	case intent.KindFunctionCall:
		uc.l.Debugf(ctx, "%s: function call %s", LogPrefixDetect, parsed.Intent.Name)
	}

	uc.store(ctx, key, parsed.Result)
	metrics.IntentDetections.WithLabelValues(parsed.Intent.Kind.String()).Inc()

	return intent.DetectOutput{Result: parsed.Result, Intent: parsed.Intent}, nil
}

// systemPrompt builds the catalog prompt once per instance. Later callers wait
// for the first build and reuse it. A failed remote tool lookup yields a
// local-only prompt for that call and leaves the memo unset.
func (uc *implUseCase) systemPrompt(ctx context.Context, sess intent.Session) string {
	uc.promptMu.Lock()
	defer uc.promptMu.Unlock()

	if uc.promptBuilt {
		return uc.prompt
	}

	functions := append([]model.FunctionDescriptor(nil), sess.Functions()...)
	remote, err := sess.RemoteTools(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "%s: remote tools unavailable, using local functions only: %v", LogPrefixDetect, err)
		return BuildSystemPrompt(functions)
	}
	functions = append(functions, remote...)

	uc.prompt = BuildSystemPrompt(functions)
	uc.promptBuilt = true
	uc.l.Debugf(ctx, "%s: system prompt built with %d function(s)", LogPrefixDetect, len(functions))

	return uc.prompt
}

func (uc *implUseCase) musicNames() []string {
	if uc.music == nil {
		return nil
	}
	return uc.music.Names()
}

// lookup treats a failing cache as a miss.
func (uc *implUseCase) lookup(ctx context.Context, key string) (string, bool) {
	if uc.cache == nil {
		return "", false
	}

	v, ok, err := uc.cache.Get(ctx, cache.NamespaceIntent, key)
	if err != nil {
		metrics.IntentCacheLookups.WithLabelValues(metrics.CacheError).Inc()
		uc.l.Warnf(ctx, "%s: cache get failed: %v", LogPrefixDetect, err)
		return "", false
	}
	if !ok {
		metrics.IntentCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
		return "", false
	}

	metrics.IntentCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
	return v, true
}

func (uc *implUseCase) store(ctx context.Context, key, value string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Set(ctx, cache.NamespaceIntent, key, value); err != nil {
		uc.l.Warnf(ctx, "%s: cache set failed: %v", LogPrefixDetect, err)
	}
}
