package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cidl/internal/diag"
	"cidl/internal/diagfmt"
	"cidl/internal/driver"
)

// report prints the run's diagnostics and timings and converts runErr into
// the command result. Errors already shown as diagnostics become errReported.
func report(cmd *cobra.Command, res *driver.Result, runErr error) error {
	if res != nil {
		if err := printDiagnostics(cmd, res.Bag); err != nil {
			return err
		}
		printTimings(cmd, res)
	}
	if runErr == nil {
		return nil
	}
	if errors.Is(runErr, driver.ErrWarningsAsErrors) {
		return runErr
	}
	if res != nil && res.Bag.HasErrors() {
		return errReported
	}
	return runErr
}

func printDiagnostics(cmd *cobra.Command, bag *diag.Bag) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	format, _ := cmd.Flags().GetString("diag-format")
	maxDiags, _ := cmd.Flags().GetInt("max-diagnostics")
	quiet := isQuiet(cmd)
	out := cmd.ErrOrStderr()

	bag.Sort()
	switch strings.ToLower(format) {
	case "json":
		return diagfmt.JSON(out, bag, diagfmt.JSONOpts{
			Max:          maxDiags,
			IncludeNotes: true,
			IncludeInfo:  !quiet,
		})
	case "pretty", "":
		if quiet && !bag.HasErrors() {
			return nil
		}
		diagfmt.Pretty(out, bag, diagfmt.PrettyOpts{
			Color:     useColor(cmd, out),
			ShowNotes: true,
			Max:       maxDiags,
		})
		return nil
	default:
		return fmt.Errorf("unsupported diagnostics format %q (must be pretty or json)", format)
	}
}

func printTimings(cmd *cobra.Command, res *driver.Result) {
	if res.Timer == nil {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), res.Timer.Summary())
}
