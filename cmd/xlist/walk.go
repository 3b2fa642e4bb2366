package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/multierr"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/lib/list"
)

// walkSteps covers every round plus the done step of each round,
// and one more step to show the restart from the head.
func walkSteps(n int64, rounds int) int {
	return rounds*(int(n)+1) + 1
}

func walk(l *list.LinkedList, cfg *commandConfig) error {
	if cfg.rounds < 1 {
		return infra.NewErrorStack(fmt.Sprintf("[xlist] rounds must be positive, got %d", cfg.rounds))
	}

	it := l.Iterator()
	for i, steps := 0, walkSteps(l.Len(), cfg.rounds); i < steps; i++ {
		res := it.Next()
		if _, err := fmt.Fprintf(cfg.out, "done=%t value=%s\n", res.Done, res.Value); err != nil {
			return infra.WrapErrorStack(err, "[xlist] write step")
		}
	}
	return nil
}

func check(l *list.LinkedList, cfg *commandConfig) error {
	err := l.Validate()
	if err == nil {
		_, werr := fmt.Fprintf(cfg.out, "ok len=%d values=%s\n", l.Len(), strings.Join(l.Values(), ","))
		return werr
	}

	lines := lo.Map(multierr.Errors(err), func(e error, _ int) string {
		return "invalid: " + e.Error()
	})
	if _, werr := fmt.Fprintln(cfg.out, strings.Join(lines, "\n")); werr != nil {
		return infra.AppendErrorStack(err, werr)
	}
	return err
}
