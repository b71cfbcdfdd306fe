package logger

import "go.uber.org/zap"

var (
	log   *zap.SugaredLogger
	level = zap.NewAtomicLevelAt(zap.InfoLevel)
)

func init() {
	config := zap.NewDevelopmentConfig()
	config.Encoding = "console"
	config.Level = level
	logger, err := config.Build()
	if err != nil {
		zap.S().Fatalw("Failed to create logger", "err", err)
	}
	log = logger.Sugar()
}

// Logger returns the single logger used everywhere.
func Logger() *zap.SugaredLogger {
	return log
}

// SetLevel changes the level of the shared logger, e.g. "debug" or "warn".
func SetLevel(name string) error {
	return level.UnmarshalText([]byte(name))
}
