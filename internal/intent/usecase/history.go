package usecase

import (
	"strings"

	"voice-intent/internal/model"
)

// BuildTranscript renders the last window turns plus the current utterance,
// one "{role}: {content}" line each.
func BuildTranscript(history []model.DialogueTurn, window int, text string) string {
	if window < 0 {
		window = 0
	}
	start := len(history) - window
	if start < 0 {
		start = 0
	}

	var sb strings.Builder
	for _, turn := range history[start:] {
		sb.WriteString(string(turn.Role))
		sb.WriteString(": ")
		sb.WriteString(turn.Content)
		sb.WriteByte('\n')
	}
	sb.WriteString("User: ")
	sb.WriteString(text)
	sb.WriteByte('\n')

	return sb.String()
}
