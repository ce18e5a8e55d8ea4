package assistant

import (
	"voice-intent/internal/intent"
	"voice-intent/internal/model"
)

// DetectInput is a classification request. A nil History uses the device's
// own dialogue; a nil SmartHomeDevices uses the configured devices.
type DetectInput struct {
	DeviceID         string
	Text             string
	History          []model.DialogueTurn
	SmartHomeDevices []string
}

// TurnInput is one user utterance to act on.
type TurnInput struct {
	DeviceID string
	Text     string
}

// TurnOutput is what was decided and done for a turn.
type TurnOutput struct {
	Intent         intent.Intent
	Result         string
	Cached         bool
	Action         model.ActionResult
	CloseAfterChat bool
}
