package scenario

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/umatrix/matrix"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

// Result is the outcome of a single scenario.
type Result struct {
	Name   string
	Op     Op
	Passed bool
	Err    error // construction or transpose failure; nil for a plain mismatch
}

// Report collects results in run order.
type Report struct {
	Results []Result
}

// Passed counts passing scenarios.
func (t Report) Passed() (n int) {
	for _, r := range t.Results {
		if r.Passed {
			n++
		}
	}

	return n
}

// Failed counts failing scenarios.
func (t Report) Failed() int {
	return len(t.Results) - t.Passed()
}

// OK is true when every scenario passed.
func (t Report) OK() bool {
	return t.Failed() == 0
}

// Runner executes scenarios sequentially, writing one verdict line per
// scenario and a dump of both operands when an equality check fails.
type Runner struct {
	Out     io.Writer
	Color   bool
	Options []matrix.Option // allocation policy for every fixture
}

// Run executes scenarios in order. The context is checked between scenarios;
// on cancellation the partial report is returned with the context error.
func (t Runner) Run(ctx context.Context, scenarios ...Scenario) (r Report, err error) {
	out := t.Out
	if out == nil {
		out = io.Discard
	}
	au := aurora.NewAurora(t.Color)

	for _, s := range scenarios {
		if err = ctx.Err(); err != nil {
			return r, errors.Wrapf(err, "interrupted before %s", s.Name)
		}

		res := t.run(out, s)
		r.Results = append(r.Results, res)

		switch {
		case res.Passed:
			fmt.Fprintf(out, "%s %s (%s)\n", au.Green("PASS"), s.Name, s.Op)
		case res.Err != nil:
			fmt.Fprintf(out, "%s %s (%s): %v\n", au.Red("FAIL"), s.Name, s.Op, res.Err)
		default:
			fmt.Fprintf(out, "%s %s (%s)\n", au.Red("FAIL"), s.Name, s.Op)
		}
	}

	return r, nil
}

func (t Runner) run(out io.Writer, s Scenario) Result {
	res := Result{Name: s.Name, Op: s.Op}

	if err := s.Validate(); err != nil {
		res.Err = err
		return res
	}

	left, err := s.Left.Build(t.Options...)
	if err != nil {
		res.Err = errors.Wrapf(err, "left %s", s.Left)
		return res
	}

	var right *matrix.Dense
	if s.Op.usesRight() && s.Right != nil {
		if right, err = s.Right.Build(t.Options...); err != nil {
			res.Err = errors.Wrapf(err, "right %s", *s.Right)
			return res
		}
	}

	switch s.Op {
	case OpEqual:
		if right == nil {
			res.Passed = checkEqual(out, left, left)
			break
		}
		res.Passed = checkEqual(out, left, right)
	case OpDiffer:
		res.Passed = !matrix.Equal(left, right)
	case OpTranspose:
		if err = left.Transpose(); err != nil {
			res.Err = err
			return res
		}
		res.Passed = checkEqual(out, right, left)
	case OpInvolution:
		orig, err := left.Clone()
		if err != nil {
			res.Err = err
			return res
		}
		for range 2 {
			if err = left.Transpose(); err != nil {
				res.Err = err
				return res
			}
		}
		res.Passed = checkEqual(out, orig, left)
	}

	return res
}

// checkEqual compares a and b and dumps both when they differ.
func checkEqual(out io.Writer, a, b matrix.Matrix) bool {
	if matrix.Equal(a, b) {
		return true
	}

	if err := Mismatch(out, a, b); err != nil {
		fmt.Fprintln(out, "unable to print mismatch:", err)
	}

	return false
}

// Mismatch writes the diagnostic for two unequal matrices:
//
//	Matrices not equal:
//	a:
//	<a rows>
//
//	b:
//	<b rows>
func Mismatch(out io.Writer, a, b matrix.Matrix) (err error) {
	if _, err = io.WriteString(out, "Matrices not equal:\na:\n"); err != nil {
		return err
	}
	if err = matrix.Fprint(out, a); err != nil {
		return err
	}
	if _, err = io.WriteString(out, "\nb:\n"); err != nil {
		return err
	}

	return matrix.Fprint(out, b)
}
