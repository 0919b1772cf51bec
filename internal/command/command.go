// Package command exposes the record store to the application shell as a
// request/response command surface. Each command name maps 1:1 to a store
// operation; payloads and results are structured JSON.
package command

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sadopc/toolbox/internal/store"
)

// Handler executes one command against the store.
type Handler func(ctx context.Context, payload json.RawMessage) (any, error)

// Response is the envelope returned for every invocation. Errors are reported
// as descriptive strings, never retried.
type Response struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type Dispatcher struct {
	log      *slog.Logger
	handlers map[string]Handler
}

func NewDispatcher(log *slog.Logger, st *store.Store) *Dispatcher {
	d := &Dispatcher{
		log:      log,
		handlers: make(map[string]Handler),
	}
	d.registerAll(st)
	return d
}

// Invoke runs the named command. Commands execute one at a time in admission
// order; the dispatcher itself holds no state beyond the handler table.
func (d *Dispatcher) Invoke(ctx context.Context, name string, payload json.RawMessage) Response {
	h, ok := d.handlers[name]
	if !ok {
		d.log.Warn("unknown command", "command", name)
		return Response{Error: fmt.Sprintf("unknown command %q", name)}
	}

	data, err := h(ctx, payload)
	if err != nil {
		d.log.Error("command failed", "command", name, "error", err)
		return Response{Error: err.Error()}
	}
	return Response{OK: true, Data: data}
}

// Commands returns the registered command names, for the shell's handshake.
func (d *Dispatcher) Commands() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	return names
}

func (d *Dispatcher) register(name string, h Handler) {
	d.handlers[name] = h
}

// handle adapts a typed store call to a Handler, decoding the payload into
// the request type.
func handle[Req any](fn func(context.Context, Req) (any, error)) Handler {
	return func(ctx context.Context, payload json.RawMessage) (any, error) {
		var req Req
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &req); err != nil {
				return nil, fmt.Errorf("decode payload: %w", err)
			}
		}
		return fn(ctx, req)
	}
}

// handleNoArg adapts a store call that takes no payload.
func handleNoArg(fn func(context.Context) (any, error)) Handler {
	return func(ctx context.Context, _ json.RawMessage) (any, error) {
		return fn(ctx)
	}
}
