package assistant

import "errors"

var (
	ErrEmptyDeviceID = errors.New("device_id is required")
	ErrEmptyText     = errors.New("text is required")
)
