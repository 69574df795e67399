package loggerprovider

import (
	"log"
	"os"

	"hostel/providers"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogProvider struct {
	logger *zap.Logger
}

func NewLogProvider() providers.ZapLoggerProvider {
	return &LogProvider{}
}

// InitLogger builds the process logger from the environment: HOSTEL_ENV set to
// "production" selects JSON output at info level, anything else the console
// development encoder. HOSTEL_LOG_LEVEL overrides the level either way.
func (l *LogProvider) InitLogger() {
	var cfg zap.Config
	if os.Getenv("HOSTEL_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if raw := os.Getenv("HOSTEL_LOG_LEVEL"); raw != "" {
		if level, err := zapcore.ParseLevel(raw); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	l.logger = logger
	zap.ReplaceGlobals(l.logger)
}

func (l *LogProvider) SyncLogger() {
	if l.logger != nil {
		_ = l.logger.Sync()
	}
}

func (l *LogProvider) GetLogger() *zap.Logger {
	return l.logger
}
