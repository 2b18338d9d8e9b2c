package logger

// ILogger is the request scoped logger used by handlers and by the pipeline
// runs they trigger.
type ILogger interface {
	// SetRunID labels every entry of the request with the pipeline run ID.
	SetRunID(id string)
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Printf(format string, v ...interface{})
	Warningf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}
