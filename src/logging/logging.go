// Package logging builds the two zap loggers the demo uses: a narrator that prints
// bare "<action> <identity>" lines, and a diagnostics logger for everything else.
package logging

import (
	"fmt"
	"io"

	"lspvehicles/src/settings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewNarrator returns a logger that writes each message as a single line to w,
// without timestamps, levels or callers.
func NewNarrator(w io.Writer) *zap.SugaredLogger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
	})
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), zapcore.DebugLevel)
	return zap.New(core).Sugar()
}

// NewDiagnostics builds the logger for startup messages and reported violations.
// It writes to stderr so stdout only ever carries narration.
func NewDiagnostics(config *settings.Arguments) (*zap.SugaredLogger, error) {
	var z zap.Config
	if config.Debug {
		// Development configuration with more verbose output
		z = zap.NewDevelopmentConfig()
	} else {
		z = zap.NewProductionConfig()
	}
	z.OutputPaths = []string{"stderr"}
	z.ErrorOutputPaths = []string{"stderr"}

	logger, err := z.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Sugar(), nil
}
