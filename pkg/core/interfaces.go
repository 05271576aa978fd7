package core

// Logger is the logging surface used by the renderer and its helpers
type Logger interface {
	Printf(format string, args ...interface{})
}

// LoggerFunc adapts a printf-style function to Logger
type LoggerFunc func(format string, args ...interface{})

// Printf implements Logger
func (f LoggerFunc) Printf(format string, args ...interface{}) {
	f(format, args...)
}
