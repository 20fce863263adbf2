// Package logging builds the diagnostic logger used for transport failures
// and request tracing. It is separate from the terminal UI output.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// set of supported logging flags
const (
	FlagLevel      = "log-level"
	FlagLevelUsage = `Specify the diagnostic log level (Default value: "error"; Allowed values: "debug", "info", "warn", "error")`
)

// DefaultLevel is the diagnostic log level used when none is provided
const DefaultLevel = zapcore.ErrorLevel

// Level is a diagnostic log level usable as a pflag.Value
type Level struct {
	zapcore.Level
}

// NewLevel returns a Level set to the DefaultLevel
func NewLevel() *Level {
	return &Level{DefaultLevel}
}

// Type returns the Level type
func (l Level) Type() string {
	return "string"
}

// New creates a console logger writing entries at or above the level to w
func New(level zapcore.Level, w io.Writer) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}
