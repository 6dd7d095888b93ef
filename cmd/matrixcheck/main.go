// Command matrixcheck runs matrix scenarios: the reference harness checks
// built into the binary, or a YAML scenario file.
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
)

// CLI is the full command line surface.
type CLI struct {
	Globals
	Run  cmdRun  `cmd:"" default:"withargs" help:"run scenarios and report a verdict per scenario"`
	List cmdList `cmd:"" help:"list scenarios without running them"`
}

func newParser(ctx context.Context, cli *CLI, out io.Writer, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(
		cli,
		append([]kong.Option{
			kong.Name("matrixcheck"),
			kong.Description("check uint64 matrix construction, equality and transpose"),
			kong.UsageOnError(),
			kong.Bind(&cli.Globals),
			kong.BindTo(ctx, (*context.Context)(nil)),
			kong.BindTo(out, (*io.Writer)(nil)),
		}, options...)...,
	)
}

func main() {
	var (
		err    error
		cli    CLI
		parser *kong.Kong
		kctx   *kong.Context
	)

	log.SetFlags(log.Lshortfile | log.LUTC | log.Ltime)

	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt)
	defer done()

	if parser, err = newParser(ctx, &cli, os.Stdout); err != nil {
		log.Fatalln(err)
	}

	if kctx, err = parser.Parse(os.Args[1:]); err != nil {
		log.Println(err)
		os.Exit(1)
	}

	if err = kctx.Run(); err != nil {
		log.Println(err)
		done()
		os.Exit(1)
	}
}
