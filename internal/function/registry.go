package function

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"voice-intent/internal/model"
	pkgLog "voice-intent/pkg/log"
	"voice-intent/pkg/metrics"
)

type entry struct {
	handler Handler
	schema  *gojsonschema.Schema
}

// Registry holds the handlers a connection can dispatch to, in registration order.
type Registry struct {
	l pkgLog.Logger

	mu      sync.RWMutex
	order   []string
	entries map[string]entry
}

// NewRegistry creates an empty registry.
func NewRegistry(l pkgLog.Logger) *Registry {
	return &Registry{
		l:       l,
		entries: make(map[string]entry),
	}
}

// Register adds h. Registering a name again replaces the handler but keeps its position.
func (r *Registry) Register(h Handler) error {
	desc := h.Descriptor()
	if desc.Name == "" {
		return ErrEmptyName
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(desc.JSONSchema()))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidSchema, desc.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[desc.Name]; !ok {
		r.order = append(r.order, desc.Name)
	}
	r.entries[desc.Name] = entry{handler: h, schema: schema}

	return nil
}

// Get retrieves a handler by name.
func (r *Registry) Get(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	return e.handler, ok
}

// Functions returns the descriptors in registration order.
func (r *Registry) Functions() []model.FunctionDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.FunctionDescriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name].handler.Descriptor())
	}
	return out
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Dispatch validates args and runs the named handler. It never returns an
// error; failures are reported through the result's Action.
func (r *Registry) Dispatch(ctx context.Context, conn Conn, name string, args map[string]any) model.ActionResult {
	res := r.dispatch(ctx, conn, name, args)
	metrics.FunctionDispatch.WithLabelValues(name, string(res.Action)).Inc()
	return res
}

func (r *Registry) dispatch(ctx context.Context, conn Conn, name string, args map[string]any) model.ActionResult {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		r.l.Warnf(ctx, "%s: no handler for %s", LogPrefixDispatch, name)
		return model.ActionResult{
			Action: model.ActionNotFound,
			Result: fmt.Sprintf("function %s not found", name),
		}
	}

	if args == nil {
		args = map[string]any{}
	}

	verdict, err := e.schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		r.l.Warnf(ctx, "%s: validate %s: %v", LogPrefixDispatch, name, err)
		return model.ActionResult{Action: model.ActionError, Result: err.Error()}
	}
	if !verdict.Valid() {
		msgs := make([]string, 0, len(verdict.Errors()))
		for _, e := range verdict.Errors() {
			msgs = append(msgs, e.String())
		}
		r.l.Warnf(ctx, "%s: invalid arguments for %s: %s", LogPrefixDispatch, name, strings.Join(msgs, "; "))
		return model.ActionResult{
			Action: model.ActionError,
			Result: "invalid arguments: " + strings.Join(msgs, "; "),
		}
	}

	res, err := e.handler.Execute(ctx, conn, args)
	if err != nil {
		r.l.Errorf(ctx, "%s: %s failed: %v", LogPrefixDispatch, name, err)
		return model.ActionResult{Action: model.ActionError, Result: err.Error()}
	}

	r.l.Infof(ctx, "%s: %s action=%s", LogPrefixDispatch, name, res.Action)
	return res
}
