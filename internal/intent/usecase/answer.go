package usecase

import (
	"context"
	"fmt"
	"strings"

	"voice-intent/internal/intent"
)

// Answer asks the LLM to reply to input.Text using only input.Context.
func (uc *implUseCase) Answer(ctx context.Context, input intent.AnswerInput) (string, error) {
	if uc.llm == nil {
		return "", intent.ErrLLMNotConfigured
	}
	if strings.TrimSpace(input.Text) == "" {
		return "", intent.ErrEmptyText
	}

	reply, err := uc.llm.Complete(ctx, input.Context, answerPromptPrefix+input.Text)
	if err != nil {
		uc.l.Errorf(ctx, "%s: llm failed: %v", LogPrefixAnswer, err)
		return "", fmt.Errorf("%s: %w", LogPrefixAnswer, err)
	}

	return strings.TrimSpace(reply), nil
}
