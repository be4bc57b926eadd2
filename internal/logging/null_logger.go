package logging

// NullLogger drops every message. The CLI uses it for --quiet.
type NullLogger struct{}

func NewNullLogger() NullLogger { return NullLogger{} }

func (NullLogger) Verbose(string, ...interface{}) {}
func (NullLogger) Info(string, ...interface{})    {}
func (NullLogger) Error(string, ...interface{})   {}
