package deepseek

import "context"

// IDeepSeek is a DeepSeek chat completions client. Safe for concurrent use.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
