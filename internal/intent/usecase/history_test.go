package usecase

import (
	"fmt"
	"strings"
	"testing"

	"voice-intent/internal/model"
)

func turns(n int) []model.DialogueTurn {
	out := make([]model.DialogueTurn, n)
	for i := range out {
		role := model.RoleUser
		if i%2 == 1 {
			role = model.RoleAssistant
		}
		out[i] = model.DialogueTurn{Role: role, Content: fmt.Sprintf("t%d", i)}
	}
	return out
}

func TestBuildTranscript(t *testing.T) {
	tests := []struct {
		name    string
		history []model.DialogueTurn
		window  int
		want    string
	}{
		{
			name:    "empty history",
			history: nil,
			window:  4,
			want:    "User: hi\n",
		},
		{
			name:    "shorter than window",
			history: turns(2),
			window:  4,
			want:    "user: t0\nassistant: t1\nUser: hi\n",
		},
		{
			name:    "longer than window keeps the tail in order",
			history: turns(10),
			window:  4,
			want:    "user: t6\nassistant: t7\nuser: t8\nassistant: t9\nUser: hi\n",
		},
		{
			name:    "zero window",
			history: turns(3),
			window:  0,
			want:    "User: hi\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildTranscript(tt.history, tt.window, "hi"); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildTranscript_LineCount(t *testing.T) {
	got := BuildTranscript(turns(10), 4, "now")
	if lines := strings.Count(got, "\n"); lines != 5 {
		t.Errorf("expected 4 turns plus utterance, got %d lines", lines)
	}
}
