package list

import (
	"strings"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/xlog"
)

type linkedListOption struct {
	logger xlog.XLogger
	name   string
}

type LinkedListOption func(opt *linkedListOption) error

// WithLinkedListLogger enables the debug log of each append and step.
func WithLinkedListLogger(logger xlog.XLogger) LinkedListOption {
	return func(opt *linkedListOption) error {
		if logger == nil {
			return infra.NewErrorStack("[linked-list] nil logger")
		}
		opt.logger = logger
		return nil
	}
}

func WithLinkedListName(name string) LinkedListOption {
	return func(opt *linkedListOption) error {
		if len(strings.TrimSpace(name)) == 0 {
			return infra.NewErrorStack("[linked-list] empty name")
		}
		opt.name = name
		return nil
	}
}
