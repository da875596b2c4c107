// SPDX-License-Identifier: MIT

package main

import (
	"runtime"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// errSingular is returned by inv when the determinant is exactly zero.
var errSingular = errors.New("singular matrix: no inverse")

type detCmd struct {
	Files []string `arg:"" name:"file" type:"existingfile" help:"matrix documents"`
	Jobs  int      `short:"j" default:"0" help:"concurrent jobs (0 = one per CPU)"`
}

// Run computes every determinant concurrently and prints them in argument order.
func (c *detCmd) Run(env *environment) error {
	results := make([]float64, len(c.Files))

	limit := c.Jobs
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(env.ctx)
	g.SetLimit(limit)

	for i, path := range c.Files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f, err := env.load(path)
			if err != nil {
				return err
			}
			det, err := f.Determinant()
			if err != nil {
				return errors.Wrapf(err, "determinant of %s", path)
			}
			results[i] = det

			env.log.WithFields(log.Fields{"file": path, "n": f.Rows(), "det": det}).Debug("determinant computed")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range c.Files {
		label := path
		if len(c.Files) == 1 {
			label = ""
		}
		if err := env.scalar(label, results[i]); err != nil {
			return err
		}
	}

	return nil
}

type invCmd struct {
	File string `arg:"" type:"existingfile" help:"matrix document"`
}

func (c *invCmd) Run(env *environment) error {
	f, err := env.load(c.File)
	if err != nil {
		return err
	}
	inv, ok, err := f.Inverse()
	if err != nil {
		return errors.Wrapf(err, "inverse of %s", c.File)
	}
	if !ok {
		env.log.WithField("file", c.File).Info("determinant is zero")
		return errors.Wrapf(errSingular, "%s", c.File)
	}

	return env.emit(inv)
}

type cofactorCmd struct {
	File string `arg:"" type:"existingfile" help:"matrix document"`
}

func (c *cofactorCmd) Run(env *environment) error {
	f, err := env.load(c.File)
	if err != nil {
		return err
	}
	cof, err := f.CofactorMatrix()
	if err != nil {
		return errors.Wrapf(err, "cofactors of %s", c.File)
	}

	return env.emit(cof)
}

type minorCmd struct {
	Row  int    `required:"" help:"row to delete (0-based)"`
	Col  int    `required:"" help:"column to delete (0-based)"`
	Det  bool   `help:"print the minor's determinant instead of the minor"`
	File string `arg:"" type:"existingfile" help:"matrix document"`
}

func (c *minorCmd) Run(env *environment) error {
	f, err := env.load(c.File)
	if err != nil {
		return err
	}

	if c.Det {
		d, err := f.MinorDeterminant(c.Row, c.Col)
		if err != nil {
			return errors.Wrapf(err, "minor determinant (%d,%d) of %s", c.Row, c.Col, c.File)
		}
		return env.scalar("", d)
	}

	m, err := f.Minor(c.Row, c.Col)
	if err != nil {
		return errors.Wrapf(err, "minor (%d,%d) of %s", c.Row, c.Col, c.File)
	}

	return env.emit(m)
}

type transposeCmd struct {
	Mode string `enum:"main,side,vertical,horizontal" default:"main" help:"reflection (${enum})"`
	File string `arg:"" type:"existingfile" help:"matrix document"`
}

func (c *transposeCmd) Run(env *environment) error {
	f, err := env.load(c.File)
	if err != nil {
		return err
	}

	var out *matrix.Float
	switch c.Mode {
	case "side":
		out, err = f.TransposedSide()
	case "vertical":
		out, err = f.MirroredVertical()
	case "horizontal":
		out, err = f.MirroredHorizontal()
	default:
		out, err = f.Transposed()
	}
	if err != nil {
		return errors.Wrapf(err, "transpose %s of %s", c.Mode, c.File)
	}

	return env.emit(out)
}

// operands is the argument pair shared by the binary commands.
type operands struct {
	A string `arg:"" type:"existingfile" help:"left operand"`
	B string `arg:"" type:"existingfile" help:"right operand"`
}

// apply loads both operands and emits op(a, b).
func (o operands) apply(env *environment, name string, op func(a, b *matrix.Float) (*matrix.Float, error)) error {
	a, err := env.load(o.A)
	if err != nil {
		return err
	}
	b, err := env.load(o.B)
	if err != nil {
		return err
	}

	res, err := op(a, b)
	if err != nil {
		return errors.Wrapf(err, "%s %s %s", name, o.A, o.B)
	}

	return env.emit(res)
}

type addCmd struct {
	Pair operands `embed:""`
}

func (c *addCmd) Run(env *environment) error {
	return c.Pair.apply(env, "add", (*matrix.Float).Add)
}

type subCmd struct {
	Pair operands `embed:""`
}

func (c *subCmd) Run(env *environment) error {
	return c.Pair.apply(env, "sub", (*matrix.Float).Sub)
}

type mulCmd struct {
	Pair operands `embed:""`
}

func (c *mulCmd) Run(env *environment) error {
	return c.Pair.apply(env, "mul", (*matrix.Float).Mul)
}

type scaleCmd struct {
	By   float64 `required:"" help:"scalar factor"`
	File string  `arg:"" type:"existingfile" help:"matrix document"`
}

func (c *scaleCmd) Run(env *environment) error {
	f, err := env.load(c.File)
	if err != nil {
		return err
	}

	return env.emit(f.Scale(c.By))
}
