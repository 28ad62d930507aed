package logger

import (
	"os"

	"go.elastic.co/apm"
	"go.elastic.co/apm/module/apmzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logLevelEnvName  = "LOG_LEVEL"
	apmActiveEnvName = "ELASTIC_APM_ACTIVE"
)

func NewProductionLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(levelFromEnv())

	var opts []zap.Option
	if APMActive() {
		// Errors logged with a request context are forwarded to the apm server
		opts = append(opts, zap.WrapCore((&apmzap.Core{}).WrapCore))
	}
	return config.Build(opts...)
}

func Suggar(logger *zap.Logger) *zap.SugaredLogger {
	return logger.Sugar()
}

func APMActive() bool {
	return os.Getenv(apmActiveEnvName) == "true" && apm.DefaultTracer.Active()
}

// FlushAPM sends buffered transactions and errors to the apm server
func FlushAPM() {
	if APMActive() {
		apm.DefaultTracer.Flush(nil)
	}
}

func levelFromEnv() zapcore.Level {
	level := zapcore.DebugLevel
	if value, ok := os.LookupEnv(logLevelEnvName); ok {
		if err := level.UnmarshalText([]byte(value)); err != nil {
			return zapcore.DebugLevel
		}
	}
	return level
}
