// SPDX-License-Identifier: MIT

// Command lvmat runs the matrix operations on matrix documents
// (.json, .msgpack or .mp files, see package matrixio).
//
//	lvmat det a.json b.msgpack
//	lvmat inv a.json --output json
//	lvmat minor --row 0 --col 1 --det a.json
//	lvmat transpose --mode side a.json
//	lvmat mul a.json b.json
//
// Results go to stdout; logs go to stderr. The log level is taken from
// --log-level or LVMAT_LOG_LEVEL.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type cli struct {
	LogLevel string `name:"log-level" env:"LVMAT_LOG_LEVEL" enum:"trace,debug,info,warn,error" default:"warn" help:"log verbosity (${enum})"`
	Output   string `short:"o" enum:"text,json,msgpack" default:"text" help:"matrix output format (${enum})"`

	Det       detCmd       `cmd:"" help:"print the determinant of every matrix file"`
	Inv       invCmd       `cmd:"" help:"print the inverse computed through the adjugate"`
	Cofactor  cofactorCmd  `cmd:"" help:"print the cofactor matrix"`
	Minor     minorCmd     `cmd:"" help:"print a minor or its determinant"`
	Transpose transposeCmd `cmd:"" help:"reflect a matrix across a diagonal or a centre line"`
	Add       addCmd       `cmd:"" help:"print a + b"`
	Sub       subCmd       `cmd:"" help:"print a - b"`
	Mul       mulCmd       `cmd:"" help:"print the product a × b"`
	Scale     scaleCmd     `cmd:"" help:"print every cell multiplied by a scalar"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "lvmat:", err)
		stop()
		os.Exit(1)
	}
}

// run parses args, configures logging and executes the selected command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, options ...kong.Option) error {
	var (
		err    error
		shell  cli
		parsed *kong.Context
	)

	options = append([]kong.Option{
		kong.Name("lvmat"),
		kong.Description("dense matrix toolkit: determinant, inverse, minors, transpositions, arithmetic"),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	}, options...)

	parser, err := kong.New(&shell, options...)
	if err != nil {
		return errors.Wrap(err, "building command line")
	}
	if parsed, err = parser.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(stderr, shell.LogLevel)
	if err != nil {
		return err
	}

	env := &environment{ctx: ctx, out: stdout, log: logger, output: shell.Output}
	logger.WithFields(log.Fields{"command": parsed.Command(), "output": shell.Output}).Debug("starting")

	return parsed.Run(env)
}

// newLogger returns a logrus logger writing text records to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}

	logger := log.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	return logger, nil
}
