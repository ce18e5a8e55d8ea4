package mcp

import (
	"errors"
	"time"
)

const (
	DefaultTimeout = 5 * time.Second

	jsonRPCVersion   = "2.0"
	methodToolsList  = "tools/list"
	maxResponseBytes = 4 << 20
)

var (
	ErrNoEndpoints = errors.New("mcp: no endpoints configured")
	ErrRPC         = errors.New("mcp: rpc error")
)
