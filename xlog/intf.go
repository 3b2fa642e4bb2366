package xlog

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type logLevel string

const (
	LogLevelDebug logLevel = "DEBUG"
	LogLevelInfo  logLevel = "INFO"
	LogLevelWarn  logLevel = "WARN"
	LogLevelError logLevel = "ERROR"
)

func (lvl logLevel) zapLevel() zapcore.Level {
	switch lvl {
	case LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	case LogLevelInfo:
		fallthrough
	default:
	}
	return zapcore.InfoLevel
}

func (lvl logLevel) String() string {
	return string(lvl)
}

// ParseLogLevel is case-insensitive. Unknown levels fall back to INFO.
func ParseLogLevel(level string) logLevel {
	switch lvl := logLevel(strings.ToUpper(strings.TrimSpace(level))); lvl {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return lvl
	default:
	}
	return LogLevelInfo
}

type logEncoderType uint8

const (
	JSON logEncoderType = iota
	PlainText
	_encMax
)

// ParseLogEncoder accepts "json" and "text", anything else is JSON.
func ParseLogEncoder(enc string) logEncoderType {
	if strings.EqualFold(strings.TrimSpace(enc), "text") {
		return PlainText
	}
	return JSON
}

const (
	envLogLevel    = "XLIST_LOG_LVL"
	coreKeyIgnored = ""
)

var encoderMap = map[logEncoderType]func(cfg zapcore.EncoderConfig) zapcore.Encoder{
	JSON:      zapcore.NewJSONEncoder,
	PlainText: zapcore.NewConsoleEncoder,
}

func getEncoderByType(typ logEncoderType) func(cfg zapcore.EncoderConfig) zapcore.Encoder {
	enc, ok := encoderMap[typ]
	if !ok {
		return zapcore.NewJSONEncoder
	}
	return enc
}

func getOutWriter(w io.Writer) zapcore.WriteSyncer {
	if w == nil {
		return zapcore.Lock(os.Stdout)
	}
	return zapcore.AddSync(w)
}

// XLogger mainly implemented by Uber zap logger.
//
// ErrorStack is used to inline the infra.ErrorStack fields,
// instead of the zap default error stacktrace. It keeps the
// position of the error in JSON format.
type XLogger interface {
	IncreaseLogLevel(level zapcore.Level)
	Level() string
	Named(name string) XLogger
	Sync() error

	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(err error, msg string, fields ...zap.Field)
	ErrorStack(err error, msg string, fields ...zap.Field)
}
