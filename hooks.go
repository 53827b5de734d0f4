package llamafi

import (
	"context"
	"sync"

	"github.com/agentstation/llamafi/pkg/endpoints"
)

// Hook function types for call events
type (
	// RequestHook is called with the resolved URL just before the request is sent
	RequestHook func(ctx context.Context, op endpoints.Operation, url string)

	// OutcomeHook is called after a response was received, success or failure
	OutcomeHook func(ctx context.Context, outcome *Outcome)

	// ErrorHook is called when a call produced no outcome (transport or decode error)
	ErrorHook func(ctx context.Context, op endpoints.Operation, url string, err error)
)

// Hooks provides event callback registration.
type Hooks interface {
	OnRequest(RequestHook)
	OnOutcome(OutcomeHook)
	OnError(ErrorHook)
}

// hooks manages event callbacks for calls
type hooks struct {
	mu        sync.RWMutex
	onRequest []RequestHook
	onOutcome []OutcomeHook
	onError   []ErrorHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnRequest registers a callback run before each request
func (h *hooks) OnRequest(fn RequestHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRequest = append(h.onRequest, fn)
}

// OnOutcome registers a callback run for each outcome
func (h *hooks) OnOutcome(fn OutcomeHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onOutcome = append(h.onOutcome, fn)
}

// OnError registers a callback run for each call that returned an error
// after resolution succeeded
func (h *hooks) OnError(fn ErrorHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onError = append(h.onError, fn)
}

func (h *hooks) triggerRequest(ctx context.Context, op endpoints.Operation, url string) {
	h.mu.RLock()
	fns := h.onRequest
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(ctx, op, url)
	}
}

func (h *hooks) triggerOutcome(ctx context.Context, outcome *Outcome) {
	h.mu.RLock()
	fns := h.onOutcome
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(ctx, outcome)
	}
}

func (h *hooks) triggerError(ctx context.Context, op endpoints.Operation, url string, err error) {
	h.mu.RLock()
	fns := h.onError
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(ctx, op, url, err)
	}
}
