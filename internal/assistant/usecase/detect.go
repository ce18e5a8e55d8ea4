package usecase

import (
	"context"
	"strings"

	"voice-intent/internal/assistant"
	"voice-intent/internal/intent"
)

func (uc *implUseCase) Detect(ctx context.Context, input assistant.DetectInput) (intent.DetectOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return intent.DetectOutput{}, assistant.ErrEmptyText
	}

	conn, err := uc.sessions.GetOrCreate(input.DeviceID)
	if err != nil {
		return intent.DetectOutput{}, assistant.ErrEmptyDeviceID
	}

	history := input.History
	if history == nil {
		history = conn.Dialogue()
	}
	devices := input.SmartHomeDevices
	if devices == nil {
		devices = uc.smartHome
	}

	out, err := uc.intent.Detect(ctx, conn, intent.DetectInput{
		History:   history,
		Text:      input.Text,
		SmartHome: smartHomeContext(devices),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: intent.Detect: %v", LogPrefixDetect, err)
		return intent.DetectOutput{}, err
	}

	return out, nil
}

func smartHomeContext(devices []string) *intent.SmartHomeContext {
	if len(devices) == 0 {
		return nil
	}
	return &intent.SmartHomeContext{Devices: devices}
}
