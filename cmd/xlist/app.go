package main

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/benz9527/xlist/lib/list"
	"github.com/benz9527/xlist/xlog"
)

const (
	defaultStartTimeout = 5 * time.Second
	defaultListName     = "xlist"
)

type commandConfig struct {
	out      io.Writer
	logOut   io.Writer
	name     string
	logLevel string
	encoder  string
	values   []string
	rounds   int
}

type commandRunner func(l *list.LinkedList, cfg *commandConfig) error

func newLogger(cfg *commandConfig) xlog.XLogger {
	logOut := cfg.logOut
	if logOut == nil {
		logOut = os.Stderr
	}
	return xlog.NewXLogger(
		xlog.WithXLoggerLevel(xlog.ParseLogLevel(cfg.logLevel)),
		xlog.WithXLoggerEncoder(xlog.ParseLogEncoder(cfg.encoder)),
		xlog.WithXLoggerWriter(logOut),
	)
}

func newLinkedList(cfg *commandConfig, logger xlog.XLogger) *list.LinkedList {
	name := cfg.name
	if len(strings.TrimSpace(name)) == 0 {
		name = defaultListName
	}
	return list.NewLinkedList(
		list.WithLinkedListLogger(logger.Named("list")),
		list.WithLinkedListName(name),
	).AppendValue(cfg.values...)
}

func newApp(cfg *commandConfig, run commandRunner) *fx.App {
	return fx.New(
		fx.WithLogger(func(logger xlog.XLogger) fxevent.Logger {
			return xlog.NewFxXLogger(logger)
		}),
		fx.Supply(cfg),
		fx.Provide(newLogger, newLinkedList),
		fx.Invoke(func(lc fx.Lifecycle, l *list.LinkedList, cfg *commandConfig, logger xlog.XLogger) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					return run(l, cfg)
				},
				OnStop: func(ctx context.Context) error {
					_ = logger.Sync()
					return nil
				},
			})
		}),
	)
}

func runApp(cfg *commandConfig, run commandRunner) error {
	app := newApp(cfg, run)
	if err := app.Err(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultStartTimeout)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		return err
	}
	return app.Stop(ctx)
}
