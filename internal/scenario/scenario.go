// Package scenario describes and runs matrix checks: the two-matrix
// comparisons and transposes the reference harness performs, either the
// built-in set or one loaded from a YAML file.
package scenario

import (
	"fmt"

	"github.com/katalvlaran/umatrix/matrix"
	"github.com/pkg/errors"
)

// Op names the check a scenario performs.
type Op string

const (
	// OpEqual requires left and right to compare equal; without a right
	// operand left is compared with itself.
	OpEqual Op = "equal"
	// OpDiffer requires left and right to compare unequal.
	OpDiffer Op = "differ"
	// OpTranspose transposes left in place and requires it to equal right.
	OpTranspose Op = "transpose"
	// OpInvolution transposes left twice and requires it to equal its original self.
	OpInvolution Op = "involution"
)

var (
	// ErrUnknownOp is returned for an op outside the constants above.
	ErrUnknownOp = errors.New("scenario: unknown op")
	// ErrInvalid is returned for structurally broken scenarios.
	ErrInvalid = errors.New("scenario: invalid")
)

// NeedsRight reports whether the op requires an explicit right operand.
func (t Op) NeedsRight() bool {
	return t == OpDiffer || t == OpTranspose
}

// usesRight reports whether the op reads a right operand when one is given.
func (t Op) usesRight() bool {
	return t != OpInvolution
}

func (t Op) valid() bool {
	switch t {
	case OpEqual, OpDiffer, OpTranspose, OpInvolution:
		return true
	default:
		return false
	}
}

// Fixture is a matrix literal: shape plus row-major values.
type Fixture struct {
	Rows   int      `yaml:"rows"`
	Cols   int      `yaml:"cols"`
	Values []uint64 `yaml:"values,flow"`
}

// Build constructs the fixture as a matrix.
func (t Fixture) Build(opts ...matrix.Option) (*matrix.Dense, error) {
	return matrix.New(t.Rows, t.Cols, t.Values, opts...)
}

func (t Fixture) String() string {
	return fmt.Sprintf("%dx%d", t.Rows, t.Cols)
}

// Scenario is one named check.
type Scenario struct {
	Name  string   `yaml:"name"`
	Op    Op       `yaml:"op"`
	Left  Fixture  `yaml:"left"`
	Right *Fixture `yaml:"right,omitempty"`
}

// Validate checks the scenario is runnable. Shape errors in the fixtures are
// left to the run so they are reported per scenario.
func (t Scenario) Validate() error {
	if t.Name == "" {
		return errors.Wrap(ErrInvalid, "missing name")
	}

	if !t.Op.valid() {
		return errors.Wrapf(ErrUnknownOp, "%s: %q", t.Name, t.Op)
	}

	if t.Op.NeedsRight() && t.Right == nil {
		return errors.Wrapf(ErrInvalid, "%s: op %s requires a right operand", t.Name, t.Op)
	}

	return nil
}
