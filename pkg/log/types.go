package log

// ZapConfig configures the zap backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug (development config) or production
	Encoding     string // console or json
	ColorEnabled bool
}

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	deviceIDKey  ctxKey = "device_id"
)
