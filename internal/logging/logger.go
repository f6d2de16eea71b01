package logging

import (
	"io"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/2beens/gymcoach/pkg"
)

const (
	logFileMaxSizeMB = 50
	logFileSuffix    = ".log"
)

type LoggerSetupParams struct {
	// LogFileName enables a rotated log file; empty means console only.
	LogFileName string
	// LogToStdout tees file output to the console.
	LogToStdout bool
	// Console defaults to stdout. The stdio MCP server passes stderr.
	Console       io.Writer
	LogLevel      string
	LogFormatJSON bool
	Environment   string
	ServiceName   string
	SentryEnabled bool
	SentryDSN     string
}

// Setup configures the global logrus logger. The returned func closes the log file.
func Setup(params LoggerSetupParams) func() {
	console := params.Console
	if console == nil {
		console = os.Stdout
	}

	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))
	if params.ServiceName != "" {
		logrus.AddHook(newFieldsHook(logrus.Fields{
			"service": params.ServiceName,
			"env":     params.Environment,
		}))
	}

	if params.SentryEnabled {
		setupSentry(params)
	}

	if params.LogFileName == "" {
		logrus.SetOutput(console)
		logrus.Debugln("writing logs to console only")
		return func() {}
	}

	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, logFileSuffix) {
		fileName += logFileSuffix
	}

	// rotated AI call logs are kept for cost audits, no MaxBackups / MaxAge
	rotated := &lumberjack.Logger{
		Filename:  fileName,
		MaxSize:   logFileMaxSizeMB,
		LocalTime: false,
		Compress:  true,
	}

	if params.LogToStdout {
		logrus.SetOutput(pkg.NewCombinedWriter(console, rotated))
		logrus.Debugf("writing logs to %s and console", fileName)
	} else {
		logrus.SetOutput(rotated)
	}

	return func() {
		if err := rotated.Close(); err != nil {
			logrus.SetOutput(console)
			logrus.Errorf("close log file %s: %s", fileName, err)
		}
	}
}

func setupSentry(params LoggerSetupParams) {
	if params.SentryDSN == "" {
		logrus.Warnln("sentry enabled without a DSN, skipping")
		return
	}

	err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.ServiceName,
	})
	if err != nil {
		logrus.Errorf("sentry init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry set up")
}

// GetLevel maps a config level name to logrus, defaulting to info.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

// fieldsHook stamps every entry with static fields unless the entry sets them itself.
type fieldsHook struct {
	fields logrus.Fields
}

func newFieldsHook(fields logrus.Fields) *fieldsHook {
	return &fieldsHook{fields: fields}
}

func (h *fieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *fieldsHook) Fire(entry *logrus.Entry) error {
	for k, v := range h.fields {
		if _, ok := entry.Data[k]; !ok {
			entry.Data[k] = v
		}
	}
	return nil
}
