package obs

import "go.uber.org/zap"

// NewLogger builds a named logger. Development mode uses the console encoder
// with debug level; everything else gets production JSON output.
func NewLogger(appEnv, name string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if appEnv == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}

// SetLogger installs log as the process logger used by Time and the adapters.
// It returns a func restoring the previous logger.
func SetLogger(log *zap.Logger) func() {
	return zap.ReplaceGlobals(log)
}

// L returns the process logger (a no-op logger until SetLogger is called).
func L() *zap.Logger { return zap.L() }
