package usecase

const (
	LogPrefixDetect = "intent.usecase.Detect"
	LogPrefixAnswer = "intent.usecase.Answer"

	DefaultHistoryCount = 4

	userPromptPrefix   = "current dialogue:\n"
	answerPromptPrefix = "Based on the above information, please reply to the user in a human-like tone, keeping it concise and returning the result directly. The user now says："
	smartHomeHeader    = "\nBelow is a list of my smart devices (location, device name, entity_id), which can be controlled via Home Assistant\n"
)
