package telemetry

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Tracker logs events
type Tracker interface {
	Track(event event)
	Close()
}

type noopTracker struct{}

func (tracker *noopTracker) Track(event event) {}

func (tracker *noopTracker) Close() {}

type stdoutTracker struct {
	w io.Writer
}

func (tracker *stdoutTracker) Track(event event) {
	data := make([]string, 0, len(event.data))
	for _, d := range event.data {
		data = append(data, fmt.Sprintf("%s=%v", d.Key, d.Value))
	}

	fmt.Fprintf(
		tracker.w,
		"%s UTC TELEM %s: %s%v\n",
		event.time.UTC().Format("15:04:05"),
		event.command,
		event.eventType,
		data,
	)
}

func (tracker *stdoutTracker) Close() {}

type logTracker struct {
	logger *zap.Logger
}

func (tracker *logTracker) Track(event event) {
	fields := []zap.Field{
		zap.String("event_id", event.id),
		zap.String("event_type", string(event.eventType)),
		zap.String("execution_id", event.executionID),
		zap.String("command", event.command),
		zap.String("version", event.version),
		zap.Time("time", event.time),
	}
	if event.userID != "" {
		fields = append(fields, zap.String("user_id", event.userID))
	}
	for _, d := range event.data {
		fields = append(fields, zap.Any(string(d.Key), d.Value))
	}
	tracker.logger.Info("telemetry", fields...)
}

func (tracker *logTracker) Close() {
	_ = tracker.logger.Sync()
}
