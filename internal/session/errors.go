package session

import "errors"

var ErrEmptyDeviceID = errors.New("device id is required")
