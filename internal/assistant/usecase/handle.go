package usecase

import (
	"context"
	"strings"

	"voice-intent/internal/assistant"
	"voice-intent/internal/intent"
	"voice-intent/internal/model"
	"voice-intent/internal/session"
)

// HandleTurn classifies against the dialogue as it was before this turn, acts
// on the decision and only then records the turn.
func (uc *implUseCase) HandleTurn(ctx context.Context, input assistant.TurnInput) (assistant.TurnOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return assistant.TurnOutput{}, assistant.ErrEmptyText
	}

	conn, err := uc.sessions.GetOrCreate(input.DeviceID)
	if err != nil {
		return assistant.TurnOutput{}, assistant.ErrEmptyDeviceID
	}

	out, err := uc.intent.Detect(ctx, conn, intent.DetectInput{
		History:   conn.Dialogue(),
		Text:      input.Text,
		SmartHome: smartHomeContext(uc.smartHome),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: intent.Detect: %v", LogPrefixHandleTurn, err)
		return assistant.TurnOutput{}, err
	}

	var action model.ActionResult
	switch out.Intent.Kind {
	case intent.KindContextAnswer:
		action, err = uc.answerFromContext(ctx, input.Text)
		if err != nil {
			return assistant.TurnOutput{}, err
		}
	case intent.KindFunctionCall:
		action = uc.dispatch(ctx, conn, out.Intent)
	default:
		action = model.ActionResult{Action: model.ActionReqLLM, Result: input.Text}
	}

	uc.record(conn, input.Text, out, action)

	uc.l.Infof(ctx, "%s: device=%s intent=%s action=%s cached=%t",
		LogPrefixHandleTurn, conn.DeviceID(), out.Intent.Name, action.Action, out.Cached)

	return assistant.TurnOutput{
		Intent:         out.Intent,
		Result:         out.Result,
		Cached:         out.Cached,
		Action:         action,
		CloseAfterChat: conn.CloseAfterChat(),
	}, nil
}

func (uc *implUseCase) answerFromContext(ctx context.Context, text string) (model.ActionResult, error) {
	answer, err := uc.intent.Answer(ctx, intent.AnswerInput{
		Context: buildTimeContext(uc.now(), uc.loc, uc.city),
		Text:    text,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: intent.Answer: %v", LogPrefixHandleTurn, err)
		return model.ActionResult{}, err
	}
	return model.ActionResult{Action: model.ActionResponse, Result: answer, Response: answer}, nil
}

// dispatch runs local functions. Calls naming a remote tool are handed back
// as ActionRemote, since only the tool endpoint can execute them.
func (uc *implUseCase) dispatch(ctx context.Context, conn *session.Connection, in intent.Intent) model.ActionResult {
	reg := conn.Registry()
	if reg != nil {
		if _, ok := reg.Get(in.Name); ok {
			return reg.Dispatch(ctx, conn, in.Name, in.Arguments)
		}
	}

	remote, err := conn.RemoteTools(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "%s: remote tools unavailable: %v", LogPrefixHandleTurn, err)
	}
	for _, d := range remote {
		if d.Name == in.Name {
			return model.ActionResult{Action: model.ActionRemote, Result: in.Name}
		}
	}

	if reg != nil {
		return reg.Dispatch(ctx, conn, in.Name, in.Arguments)
	}
	return model.ActionResult{Action: model.ActionNotFound, Result: "function " + in.Name + " not found"}
}

// record appends the turn. Function and tool turns are pruned again by the
// next continue_chat classification.
func (uc *implUseCase) record(conn *session.Connection, text string, out intent.DetectOutput, action model.ActionResult) {
	turns := []model.DialogueTurn{{Role: model.RoleUser, Content: text}}

	if out.Intent.Kind == intent.KindFunctionCall {
		turns = append(turns, model.DialogueTurn{Role: model.RoleFunction, Content: out.Result})
		if action.Result != "" {
			turns = append(turns, model.DialogueTurn{Role: model.RoleTool, Content: action.Result})
		}
	}
	if action.Response != "" {
		turns = append(turns, model.DialogueTurn{Role: model.RoleAssistant, Content: action.Response})
	}

	conn.Append(turns...)
}
