package infra

import (
	"errors"
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

// References:
// https://github.com/pkg/errors/blob/master/stack.go

type Frame uintptr

func (frame Frame) pc() uintptr {
	return uintptr(frame) - 1
}

func (frame Frame) file() string {
	fn := runtime.FuncForPC(frame.pc())
	if fn == nil {
		return "unknownFile"
	}
	f, _ := fn.FileLine(frame.pc())
	return f
}

func (frame Frame) line() int {
	fn := runtime.FuncForPC(frame.pc())
	if fn == nil {
		return 0
	}
	_, l := fn.FileLine(frame.pc())
	return l
}

func (frame Frame) name() string {
	fn := runtime.FuncForPC(frame.pc())
	if fn == nil {
		return "unknownFunc"
	}
	return fn.Name()
}

// Format characters:
// %s - source file
// %d - source line
// %n - function name
// %v - equivalent to %s:%d
// %+s - function name and full path, separated by \n\t
func (frame Frame) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		if s.Flag('+') {
			_, _ = io.WriteString(s, frame.name())
			_, _ = io.WriteString(s, "\n\t")
			_, _ = io.WriteString(s, frame.file())
		} else {
			_, _ = io.WriteString(s, path.Base(frame.file()))
		}
	case 'd':
		_, _ = io.WriteString(s, strconv.Itoa(frame.line()))
	case 'n':
		_, _ = io.WriteString(s, funcName(frame.name()))
	case 'v':
		frame.Format(s, 's')
		_, _ = io.WriteString(s, ":")
		frame.Format(s, 'd')
	}
}

func (frame Frame) MarshalText() ([]byte, error) {
	name := frame.name()
	if name == "unknownFunc" {
		return []byte("unknownFrame"), nil
	}
	builder := strings.Builder{}
	_, _ = builder.WriteString(name)
	_, _ = builder.WriteString(" ")
	_, _ = builder.WriteString(path.Base(frame.file()))
	_, _ = builder.WriteString(":")
	_, _ = builder.WriteString(strconv.Itoa(frame.line()))
	return []byte(builder.String()), nil
}

func funcName(name string) string {
	i := strings.LastIndex(name, "/")
	name = name[i+1:]
	i = strings.Index(name, ".")
	return name[i+1:]
}

// ErrorStack is an error that remembers where it was raised.
// It is able to be inlined into the zap structured fields.
type ErrorStack interface {
	error
	zapcore.ObjectMarshaler
	Unwrap() error
}

var _ ErrorStack = (*errorStack)(nil)

type errorStack struct {
	err   error
	frame Frame
}

func (es *errorStack) Error() string {
	if es == nil || es.err == nil {
		return ""
	}
	return es.err.Error()
}

func (es *errorStack) Unwrap() error {
	if es == nil {
		return nil
	}
	return errors.Unwrap(es.err)
}

func (es *errorStack) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if es == nil {
		return nil
	}
	enc.AddString("error", es.Error())
	enc.AddString("errorAt", fmt.Sprintf("%v", es.frame))
	return nil
}

func callerFrame(skip int) Frame {
	var pcs [1]uintptr
	if n := runtime.Callers(skip, pcs[:]); n == 0 {
		return Frame(0)
	}
	return Frame(pcs[0])
}

func NewErrorStack(msg string) ErrorStack {
	return &errorStack{
		err:   errors.New(msg),
		frame: callerFrame(3),
	}
}

// WrapErrorStack keeps the err as the unwrapped cause.
func WrapErrorStack(err error, msg string) ErrorStack {
	if err == nil {
		return NewErrorStack(msg)
	}
	return &errorStack{
		err:   fmt.Errorf("%s: %w", msg, err),
		frame: callerFrame(3),
	}
}

// AppendErrorStack combines all non-nil errors into dst.
// Use multierr.Errors to list them again.
func AppendErrorStack(dst error, errs ...error) error {
	for _, err := range errs {
		dst = multierr.Append(dst, err)
	}
	return dst
}
