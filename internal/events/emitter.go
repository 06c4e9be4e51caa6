package events

import (
	"context"
	"log"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit sends an event to the frontend. It is a no-op until EnableRuntimeEmitter runs.
var Emit = func(ctx context.Context, name string, evt Event) {}

// Log writes a backend log line. It uses the std logger until EnableRuntimeEmitter runs.
var Log = func(ctx context.Context, level EventType, message string) {
	log.Printf("[%s] %s", level, message)
}

// EnableRuntimeEmitter routes Emit and Log to the Wails runtime. ctx must be the
// context handed to OnStartup.
func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, evt Event) {
		runtime.EventsEmit(ctx, name, evt)
		logRuntimeEvent(ctx, name, evt)
	}
	Log = logRuntime
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt Event)) {
	if f == nil {
		Emit = func(context.Context, string, Event) {}
		return
	}
	Emit = f
}

func SetCustomLogger(f func(ctx context.Context, level EventType, message string)) {
	if f == nil {
		Log = func(context.Context, EventType, string) {}
		return
	}
	Log = f
}

// Warnf and Infof are shorthands over Log.
func Warnf(ctx context.Context, format string, args ...any) {
	Log(ctx, EventWarn, sprintf(format, args...))
}

func Infof(ctx context.Context, format string, args ...any) {
	Log(ctx, EventInfo, sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...any) {
	Log(ctx, EventError, sprintf(format, args...))
}
