package providers

import (
	"go.uber.org/zap"
)

type ConfigProvider interface {
	LoadEnv() error
	GetAPIBaseURL() string
	GetHTTPTimeoutSeconds() int
	GetMockAPIPort() string
}

type ZapLoggerProvider interface {
	InitLogger()
	SyncLogger()
	GetLogger() *zap.Logger
}
