package llmprovider

import (
	"context"
	"fmt"
)

// Generator is satisfied by Manager and by any single Provider.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// CompleterOptions fixes sampling parameters for every completion.
type CompleterOptions struct {
	Temperature float64
	MaxTokens   int
	Label       string
}

// Completer turns a Generator into a single-shot "system + user -> text" call.
type Completer struct {
	gen  Generator
	opts CompleterOptions
}

// NewCompleter wraps gen. An empty opts.Label is taken from gen when it can name itself.
func NewCompleter(gen Generator, opts CompleterOptions) *Completer {
	if opts.Label == "" {
		if l, ok := gen.(interface{ Label() string }); ok {
			opts.Label = l.Label()
		}
	}
	return &Completer{gen: gen, opts: opts}
}

// Complete sends systemPrompt and userPrompt and returns the raw model text.
func (c *Completer) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.gen.GenerateContent(ctx, &Request{
		SystemInstruction: systemPrompt,
		Messages:          []Message{{Role: roleUser, Content: userPrompt}},
		Temperature:       c.opts.Temperature,
		MaxTokens:         c.opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("llmprovider.Complete: %w", err)
	}
	return resp.Text, nil
}

// Label names the backing model for logs and metrics.
func (c *Completer) Label() string {
	return c.opts.Label
}
