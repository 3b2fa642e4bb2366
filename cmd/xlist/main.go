package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli"
)

var Version = "0.1.0"

var (
	commonFlags = []cli.Flag{
		cli.StringFlag{
			Name:   "log-level, l",
			Usage:  "log level, one of DEBUG, INFO, WARN, ERROR",
			EnvVar: "XLIST_LOG_LVL",
			Value:  "INFO",
		}, cli.StringFlag{
			Name:  "encoder, e",
			Usage: "log encoder, json or text",
			Value: "json",
		}, cli.StringFlag{
			Name:  "name, n",
			Usage: "list name in the log fields",
			Value: defaultListName,
		},
	}

	cmdWalk = cli.Command{
		Name:      "walk",
		Usage:     "append VALUES to a list and step through it by the embedded cursor",
		ArgsUsage: "VALUES...",
		Flags: append([]cli.Flag{
			cli.IntFlag{
				Name:  "rounds, r",
				Usage: "full traversals before the final restart step",
				Value: 1,
			},
		}, commonFlags...),
		Action: func(c *cli.Context) error {
			return runApp(newCommandConfig(c), walk)
		},
	}

	cmdCheck = cli.Command{
		Name:      "check",
		Usage:     "append VALUES to a list and validate its links",
		ArgsUsage: "VALUES...",
		Flags:     commonFlags,
		Action: func(c *cli.Context) error {
			return runApp(newCommandConfig(c), check)
		},
	}
)

func newCommandConfig(c *cli.Context) *commandConfig {
	return &commandConfig{
		out:      os.Stdout,
		logOut:   os.Stderr,
		name:     c.String("name"),
		logLevel: c.String("log-level"),
		encoder:  c.String("encoder"),
		values:   []string(c.Args()),
		rounds:   c.Int("rounds"),
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "xlist"
	app.Version = Version
	app.Compiled = time.Now()
	app.Usage = "xlist is a doubly linked list that iterates itself."

	app.Commands = []cli.Command{
		cmdWalk,
		cmdCheck,
	}

	app.Action = func(c *cli.Context) error {
		return cli.ShowAppHelp(c)
	}

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
