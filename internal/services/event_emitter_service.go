package services

import (
	"context"
	"errors"
	"sync"

	"imagestudio/internal/events"
	"imagestudio/internal/kv"
)

// EventEmitterService forwards store changes to the frontend as storage:changed events
// while its stream is running.
type EventEmitterService struct {
	context     context.Context
	store       kv.Store
	mu          sync.Mutex
	running     bool
	unsubscribe func()
}

func NewEventEmitterService(store kv.Store) *EventEmitterService {
	return &EventEmitterService{store: store}
}

func (e *EventEmitterService) Startup(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.context = ctx
}

// StartStream subscribes to the store. It returns false when already running or not started.
func (e *EventEmitterService) StartStream() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.context == nil || e.running || e.store == nil {
		return false
	}

	ctx := e.context
	e.unsubscribe = e.store.Subscribe(func(c kv.Change) {
		events.Emit(ctx, events.StorageChanged, events.NewInfo(c.Key, c))
	})
	e.running = true
	return true
}

func (e *EventEmitterService) EmitEvent(name string, event events.Event) error {
	e.mu.Lock()
	ctx, running := e.context, e.running
	e.mu.Unlock()
	if ctx == nil {
		return errors.New("the context and emitter are not initialized")
	}

	if running {
		events.Emit(ctx, name, event)
	}
	return nil
}

func (e *EventEmitterService) StopStream() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running && e.unsubscribe != nil {
		e.unsubscribe()
	}
	e.unsubscribe = nil
	e.running = false
}

func (e *EventEmitterService) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}
