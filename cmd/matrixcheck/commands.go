package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/umatrix/internal/scenario"
	"github.com/katalvlaran/umatrix/matrix"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// ErrScenariosFailed is returned by run when at least one scenario failed.
var ErrScenariosFailed = errors.New("scenarios failed")

// Globals are flags shared by every command.
type Globals struct {
	NoColor bool `name:"no-color" help:"disable colored verdicts"`
	Debug   bool `help:"dump the resolved scenarios before running"`
}

// colorize is true when verdicts go to a terminal and color was not disabled.
func (t Globals) colorize(out io.Writer) bool {
	if t.NoColor {
		return false
	}

	f, ok := out.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Source selects where scenarios come from.
type Source struct {
	File string `name:"file" short:"f" help:"yaml scenario file; built-in scenarios when omitted" placeholder:"PATH"`
}

func (t Source) load() ([]scenario.Scenario, error) {
	if t.File == "" {
		return scenario.Builtin(), nil
	}

	return scenario.LoadFile(t.File)
}

type cmdRun struct {
	Source
	MemoryLimit string `name:"memory-limit" help:"byte ceiling for every matrix buffer (e.g. 64MiB, or none); defaults to physical memory" placeholder:"SIZE"`
}

func (t cmdRun) Run(g *Globals, ctx context.Context, out io.Writer) error {
	opts, err := parseMemoryLimit(t.MemoryLimit)
	if err != nil {
		return err
	}

	scenarios, err := t.load()
	if err != nil {
		return err
	}

	if g.Debug {
		spew.Fdump(out, scenarios)
	}

	runner := scenario.Runner{
		Out:     out,
		Color:   g.colorize(out),
		Options: opts,
	}

	report, err := runner.Run(ctx, scenarios...)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d passed, %d failed\n", report.Passed(), report.Failed())

	if !report.OK() {
		return errors.Wrapf(ErrScenariosFailed, "%d of %d", report.Failed(), len(report.Results))
	}

	return nil
}

type cmdList struct {
	Source
}

func (t cmdList) Run(g *Globals, out io.Writer) error {
	scenarios, err := t.load()
	if err != nil {
		return err
	}

	if g.Debug {
		spew.Fdump(out, scenarios)
	}

	for _, s := range scenarios {
		if s.Right == nil {
			fmt.Fprintf(out, "%s\t%s\t%s\n", s.Name, s.Op, s.Left)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\t%s %s\n", s.Name, s.Op, s.Left, s.Right)
	}

	return nil
}

// parseMemoryLimit maps the --memory-limit flag onto matrix options.
// Empty keeps the library default.
func parseMemoryLimit(s string) ([]matrix.Option, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return nil, nil
	case "none", "unlimited":
		return []matrix.Option{matrix.WithNoMemoryLimit()}, nil
	}

	n, err := humanize.ParseBytes(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid memory limit %q", s)
	}

	if n == 0 {
		return nil, errors.Errorf("invalid memory limit %q: must be positive", s)
	}

	return []matrix.Option{matrix.WithMemoryLimit(n)}, nil
}
