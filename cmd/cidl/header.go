package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cidl/internal/driver"
)

func newHeaderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "header [input]",
		Short: "Generate the C++ ABI header of a descriptor file",
		Long: `Generate the C++ ABI header of a descriptor (.toml) or snapshot (.mp) file.
The header is written to <out-dir>/<library><ext>. Without an argument the
input named in cidl.toml is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHeader,
	}
	f := cmd.Flags()
	f.String("out-dir", "", "directory for the header (default: manifest [output].dir or .)")
	f.Bool("stdout", false, "print the header instead of writing a file")
	f.String("namespace", "", "namespace wrapping the declarations (default: library name)")
	f.String("dispatch-root", "", "base interface every interface derives from")
	f.String("calling-convention", "", "calling convention marker")
	f.String("bool-type", "", "type the Bool scalar maps to")
	return cmd
}

func runHeader(cmd *cobra.Command, args []string) error {
	opts, m, err := pipelineOptions(cmd, inputArg(args), driver.TargetHeader)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	for flag, dst := range map[string]*string{
		"namespace":          &opts.Header.Namespace,
		"dispatch-root":      &opts.Header.DispatchRoot,
		"calling-convention": &opts.Header.CallingConvention,
		"bool-type":          &opts.Header.BoolType,
	} {
		if f.Changed(flag) {
			*dst, _ = f.GetString(flag)
		}
	}

	toStdout, _ := f.GetBool("stdout")
	if !toStdout {
		opts.OutDir, _ = f.GetString("out-dir")
		if opts.OutDir == "" && m != nil {
			opts.OutDir = m.OutputDir()
		}
		if opts.OutDir == "" {
			opts.OutDir = "."
		}
	}

	res, runErr := driver.Run(cmd.Context(), opts)
	if err := report(cmd, res, runErr); err != nil {
		return err
	}
	if toStdout {
		return driver.WriteLines(cmd.OutOrStdout(), res.Header)
	}
	printWritten(cmd, res.HeaderPath, res.HeaderChanged)
	return nil
}

func printWritten(cmd *cobra.Command, path string, changed bool) {
	if isQuiet(cmd) || path == "" {
		return
	}
	if changed {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "unchanged %s\n", path)
	}
}
