package telemetry

import (
	"io"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Service tracks telemetry events
type Service struct {
	userID      string
	command     string
	version     string
	executionID string
	tracker     Tracker
}

// ServiceOption configures a Service
type ServiceOption func(s *serviceOptions)

type serviceOptions struct {
	out    io.Writer
	logger *zap.Logger
}

// WithWriter sets the writer used by the stdout mode
func WithWriter(w io.Writer) ServiceOption {
	return func(o *serviceOptions) { o.out = w }
}

// WithLogger sets the logger used by the log mode
func WithLogger(logger *zap.Logger) ServiceOption {
	return func(o *serviceOptions) { o.logger = logger }
}

// NewService creates a new telemetry service
func NewService(mode Mode, userID, command, version string, opts ...ServiceOption) *Service {
	options := serviceOptions{out: os.Stdout, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&options)
	}

	service := Service{
		userID:      userID,
		command:     command,
		version:     version,
		executionID: primitive.NewObjectID().Hex(),
	}

	switch mode {
	case ModeStdout:
		service.tracker = &stdoutTracker{options.out}
	case ModeLog:
		service.tracker = &logTracker{options.logger.Named("telemetry")}
	default:
		service.tracker = &noopTracker{}
	}

	return &service
}

// TrackEvent tracks events
func (service *Service) TrackEvent(eventType EventType, data ...EventData) {
	service.tracker.Track(event{
		id:          primitive.NewObjectID().Hex(),
		eventType:   eventType,
		userID:      service.userID,
		time:        time.Now(),
		executionID: service.executionID,
		command:     service.command,
		version:     service.version,
		data:        data,
	})
}

// Close shuts down the Service
func (service *Service) Close() {
	service.tracker.Close()
}
