package diag

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	defaultOnce sync.Once
	defaultSink Sink
)

type logrusSink struct {
	logger *logrus.Logger
}

// NewLogrusSink reports diagnostics as warn-level structured entries. A nil
// logger uses logrus.StandardLogger().
func NewLogrusSink(logger *logrus.Logger) Sink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return logrusSink{logger: logger}
}

func (s logrusSink) Report(d Diagnostic) {
	fields := logrus.Fields{
		"kind":  string(d.Kind),
		"model": d.Model,
	}
	if d.Field != "" {
		fields["field"] = d.Field
	}
	if d.Value != nil {
		fields["value"] = d.Value
	}
	msg := d.Message
	if msg == "" {
		msg = string(d.Kind)
	}
	s.logger.WithFields(fields).Warn(msg)
}

// NewLogger returns a logrus logger writing to stderr with the given format
// ("json" or "text") and level. An unparsable level falls back to info.
func NewLogger(format, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	switch format {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// Default returns the shared sink used when a mapper is built without one:
// JSON entries on stderr.
func Default() Sink {
	defaultOnce.Do(func() {
		defaultSink = NewLogrusSink(NewLogger("json", "info"))
	})
	return defaultSink
}
