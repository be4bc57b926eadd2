package beacon

// Logger provides a pluggable logging interface for parsing and validation.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Verbose(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})    {}
func (nopLogger) Error(string, ...interface{})   {}

// Option configures the parser and validator.
type Option func(*options)

type options struct {
	logger Logger
}

// WithLogger routes non-fatal diagnostics (for example duplicate meta
// fields) to the given logger. A nil logger disables logging.
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) options {
	o := options{logger: nopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = nopLogger{}
	}
	return o
}
