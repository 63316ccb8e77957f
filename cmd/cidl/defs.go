package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"cidl/internal/diag"
	"cidl/internal/driver"
	"cidl/internal/observ"
	"cidl/internal/types"
)

func newDefsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defs [input]",
		Short: "List the definitions of a descriptor file as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDefs,
	}
}

func runDefs(cmd *cobra.Command, args []string) error {
	opts, _, err := pipelineOptions(cmd, inputArg(args), driver.TargetListing)
	if err != nil {
		return err
	}
	res := &driver.Result{Bag: diag.NewBag(opts.MaxDiagnostics)}
	if opts.EnableTimings {
		res.Timer = observ.NewTimer()
	}
	lib, loadErr := driver.Load(cmd.Context(), opts, res.Bag, res.Timer)
	if err := report(cmd, res, loadErr); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	rows := defRows(lib)
	writeTable(out, []string{"NAME", "KIND", "MEMBERS", "GUID"}, rows, useColor(cmd, out))
	return nil
}

func defRows(lib *types.Library) [][]string {
	rows := make([][]string, 0, lib.Len())
	_ = lib.Each(func(name string, def types.TypeDef) error {
		members, guid := 0, "-"
		switch d := def.(type) {
		case *types.Struct:
			members = len(d.Fields)
		case *types.Interface:
			members = len(d.Methods)
			guid = d.GUIDString()
		}
		rows = append(rows, []string{name, def.Kind(), strconv.Itoa(members), guid})
		return nil
	})
	return rows
}

// writeTable prints rows with columns padded to their display width, so
// wide characters in names keep the columns aligned.
func writeTable(w io.Writer, header []string, rows [][]string, useColor bool) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	headerColor := color.New(color.Bold)
	if useColor {
		headerColor.EnableColor()
	} else {
		headerColor.DisableColor()
	}

	line := func(cells []string) string {
		var sb strings.Builder
		for i, cell := range cells {
			if i == len(cells)-1 {
				sb.WriteString(cell)
				break
			}
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
			sb.WriteString("  ")
		}
		return sb.String()
	}

	fmt.Fprintln(w, headerColor.Sprint(line(header)))
	for _, row := range rows {
		fmt.Fprintln(w, line(row))
	}
}
