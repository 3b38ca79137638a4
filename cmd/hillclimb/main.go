// Command hillclimb reads a height map and prints the fewest steps from the
// Start square to the End square, and from the best lowest square.
//
// Usage:
//
//	hillclimb [flags] [map-file]
//
// With no map file the built-in sample map is used; "-" reads stdin.
package main

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

//go:embed sample.txt
var sampleMap string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "hillclimb:", err)
		os.Exit(1)
	}
}

// run builds the root command around the given streams and executes it.
func run(ctx context.Context, in io.Reader, out, errOut io.Writer, args []string) error {
	cmd := newRootCmd()
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
