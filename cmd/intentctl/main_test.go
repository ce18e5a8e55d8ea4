package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"voice-intent/internal/assistant"
	"voice-intent/internal/intent"
	"voice-intent/internal/model"
	"voice-intent/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssistant struct {
	out   intent.DetectOutput
	err   error
	input assistant.DetectInput
}

func (s *stubAssistant) Detect(_ context.Context, in assistant.DetectInput) (intent.DetectOutput, error) {
	s.input = in
	return s.out, s.err
}

func (s *stubAssistant) HandleTurn(context.Context, assistant.TurnInput) (assistant.TurnOutput, error) {
	return assistant.TurnOutput{}, nil
}

func (s *stubAssistant) Functions(context.Context, string) ([]model.FunctionDescriptor, error) {
	return nil, nil
}

func TestPromptCmd(t *testing.T) {
	root := newRootCmd(log.NewNop())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"prompt", "--music-dir", t.TempDir()})

	require.NoError(t, root.ExecuteContext(context.Background()))

	for _, name := range []string{"handle_exit_intent", "change_role", "play_music", "continue_chat"} {
		assert.Contains(t, out.String(), name)
	}
}

func TestDetectCmd_RequiresText(t *testing.T) {
	root := newRootCmd(log.NewNop())
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"detect", "--device", "d1"})

	assert.Error(t, root.ExecuteContext(context.Background()))
}

func TestRunDetect(t *testing.T) {
	tests := []struct {
		name    string
		stub    *stubAssistant
		want    []string
		wantErr bool
	}{
		{
			name: "function call",
			stub: &stubAssistant{out: intent.DetectOutput{
				Result: `{"function_call": {"name": "play_music", "arguments": {"song_name": "random"}}}`,
				Intent: intent.NewIntent("play_music", map[string]any{"song_name": "random"}),
			}},
			want: []string{"Kind:    function_call", "Name:    play_music", "Cached:  false"},
		},
		{
			name: "cached continue chat",
			stub: &stubAssistant{out: intent.DetectOutput{
				Result: intent.ContinueChatResult,
				Intent: intent.ContinueChat(),
				Cached: true,
			}},
			want: []string{"Kind:    continue_chat", "Cached:  true"},
		},
		{
			name:    "use case error",
			stub:    &stubAssistant{err: errors.New("boom")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newDetectCmd(log.NewNop())
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetContext(context.Background())

			err := runDetect(cmd, tt.stub, "device-1", "play something")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "device-1", tt.stub.input.DeviceID)
			assert.Equal(t, "play something", tt.stub.input.Text)
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}
