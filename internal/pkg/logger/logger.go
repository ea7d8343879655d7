package logger

// Logger defines the logging interface used across the service.
// Arguments are concatenated the way fmt.Sprint does.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
