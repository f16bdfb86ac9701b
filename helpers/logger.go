package helpers

import (
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/lager/v3"
)

type LoggingConfig struct {
	Level         string `yaml:"level" json:"level"`
	PlainTextSink bool   `yaml:"plaintext_sink" json:"plaintext_sink"`
}

var redactedKeyPatterns = []string{"[Pp]wd", "[Pp]ass", "[Ss]ecret", "[Tt]oken", "[Dd]ata[Ss]ource"}

// InitLoggerFromConfig builds the process logger writing to stdout. It exits
// when the configuration is unusable.
func InitLoggerFromConfig(conf *LoggingConfig, name string) lager.Logger {
	logger, err := NewLogger(os.Stdout, conf, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %s\n", err.Error())
		os.Exit(1)
	}
	return logger
}

func NewLogger(w io.Writer, conf *LoggingConfig, name string) (lager.Logger, error) {
	level, err := ParseLogLevel(conf.Level)
	if err != nil {
		return nil, err
	}

	logger := lager.NewLogger(name)
	if conf.PlainTextSink {
		logger.RegisterSink(NewTextWriterSink(w, level))
		return logger, nil
	}

	sink, err := NewRedactingSink(w, level, redactedKeyPatterns, nil)
	if err != nil {
		return nil, err
	}
	logger.RegisterSink(sink)
	return logger, nil
}

func ParseLogLevel(level string) (lager.LogLevel, error) {
	switch level {
	case "debug":
		return lager.DEBUG, nil
	case "info", "":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	}
	return -1, fmt.Errorf("unsupported log level: %s", level)
}
