// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/matrixio"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// environment is bound into every command's Run method.
type environment struct {
	ctx    context.Context
	out    io.Writer
	log    *log.Logger
	output string // text, json or msgpack
}

// load decodes the matrix document at path; the format follows the extension.
func (env *environment) load(path string) (*matrix.Float, error) {
	format, err := matrixio.FormatFromPath(path)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer fh.Close()

	f, err := matrixio.DecodeFloat(bufio.NewReader(fh), format)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}

	env.log.WithFields(log.Fields{
		"file":   path,
		"format": format,
		"rows":   f.Rows(),
		"cols":   f.Cols(),
	}).Debug("matrix loaded")

	return f, nil
}

// emit writes a matrix result in the configured output format.
func (env *environment) emit(f *matrix.Float) error {
	if env.output == "" || env.output == "text" {
		_, err := io.WriteString(env.out, f.String())
		return errors.WithStack(err)
	}

	format, err := matrixio.ParseFormat(env.output)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(matrixio.EncodeFloat(env.out, format, f), "writing result")
}

// scalar writes one number, prefixed with its label when label is not empty.
func (env *environment) scalar(label string, v float64) error {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	var err error
	if label == "" {
		_, err = fmt.Fprintln(env.out, s)
	} else {
		_, err = fmt.Fprintf(env.out, "%s\t%s\n", label, s)
	}

	return errors.WithStack(err)
}
