package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cidl/internal/version"
)

// errReported marks a failure whose details were already printed as
// diagnostics.
var errReported = errors.New("failed")

// newRootCmd builds the command tree. s receives the tracer and profiles set
// up by the persistent pre-run hook.
func newRootCmd(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:           "cidl",
		Short:         "Interface description to native listing and ABI header translator",
		Long:          `cidl reads interface and structure descriptors and renders a native listing and a COM-style C++ ABI header`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
	}

	root.AddCommand(newListCmd())
	root.AddCommand(newHeaderCmd())
	root.AddCommand(newBuildCmd())
	root.AddCommand(newDefsCmd())
	root.AddCommand(newSnapshotCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newVersionCmd())

	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("diag-format", "pretty", "diagnostics format (pretty|json)")
	pf.Bool("warnings-as-errors", false, "fail when any warning is reported")
	pf.String("config", "", "path to cidl.toml (default: search upward from the working directory)")
	pf.Int("indent", 0, "indent width in spaces (default: manifest or 4)")
	pf.Bool("tabs", false, "indent with tabs")
	pf.String("unknown-scalar", "", "unknown scalar policy (opaque|strict)")
	pf.String("duplicates", "", "duplicate definition policy (overwrite|error)")

	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 4096, "events kept in ring mode")

	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")

	return root
}

// main runs the CLI and exits with status 1 on any error.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var s session
	root := newRootCmd(&s)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(context.Background())
	s.finish(stderr, err)
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "cidl: %v\n", err)
		}
		return 1
	}
	return 0
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
