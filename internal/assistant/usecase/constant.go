package usecase

const (
	LogPrefixDetect     = "assistant.usecase.Detect"
	LogPrefixHandleTurn = "assistant.usecase.HandleTurn"
	LogPrefixFunctions  = "assistant.usecase.Functions"
	LogPrefixNew        = "assistant.usecase.New"

	DefaultTimezone = "UTC"

	dateFormat = "2006-01-02"
	timeFormat = "15:04"

	timeContextTemplate = `[Current context]
- Current time: %s
- Today: %s (%s)
- Tomorrow: %s
- Timezone: %s
- Current city: %s`

	unknownCity = "unknown"
)
