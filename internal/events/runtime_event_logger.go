package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

func logRuntimeEvent(ctx context.Context, name string, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		runtime.LogError(ctx, "events: failed to marshal event: "+err.Error())
		return
	}

	logRuntime(ctx, event.Type, name+" "+string(data))
}

func logRuntime(ctx context.Context, level EventType, message string) {
	switch level {
	case EventError:
		runtime.LogError(ctx, message)
	case EventWarn:
		runtime.LogWarning(ctx, message)
	case EventDebug:
		runtime.LogDebug(ctx, message)
	default:
		runtime.LogInfo(ctx, message)
	}
}

func sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
