package usecase

import (
	"context"
	"testing"

	"voice-intent/internal/function"
	"voice-intent/internal/intent"
	"voice-intent/internal/model"
	"voice-intent/internal/session"
	pkgLog "voice-intent/pkg/log"
)

type mockIntent struct {
	out       intent.DetectOutput
	err       error
	answer    string
	answerErr error

	detectInputs []intent.DetectInput
	answerInputs []intent.AnswerInput
}

func (m *mockIntent) Detect(ctx context.Context, sess intent.Session, input intent.DetectInput) (intent.DetectOutput, error) {
	m.detectInputs = append(m.detectInputs, input)
	return m.out, m.err
}

func (m *mockIntent) Answer(ctx context.Context, input intent.AnswerInput) (string, error) {
	m.answerInputs = append(m.answerInputs, input)
	return m.answer, m.answerErr
}

type stubTools struct {
	tools []model.FunctionDescriptor
	err   error
}

func (s stubTools) ListTools(ctx context.Context) ([]model.FunctionDescriptor, error) {
	return s.tools, s.err
}

func decided(name string, args map[string]any) intent.DetectOutput {
	in := intent.NewIntent(name, args)
	return intent.DetectOutput{Result: `{"function_call": {"name": "` + name + `"}}`, Intent: in}
}

func newTestUseCase(t *testing.T, mi *mockIntent, tools session.ToolSource, cfg Config) (*implUseCase, *session.Manager) {
	t.Helper()
	reg, err := function.NewDefaultRegistry(pkgLog.NewNop(), nil)
	if err != nil {
		t.Fatalf("NewDefaultRegistry: %v", err)
	}
	sessions := session.NewManager(session.Config{}, reg, tools)
	return New(pkgLog.NewNop(), mi, sessions, cfg).(*implUseCase), sessions
}
