package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cidl/internal/driver"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [input]",
		Short: "Print the native listing of a descriptor file",
		Long: `Print the native listing of a descriptor (.toml) or snapshot (.mp) file.
Without an argument the input named in cidl.toml is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runList,
	}
	cmd.Flags().StringP("out", "o", "", "write the listing to a file instead of stdout")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	opts, _, err := pipelineOptions(cmd, inputArg(args), driver.TargetListing)
	if err != nil {
		return err
	}
	res, runErr := driver.Run(cmd.Context(), opts)
	if err := report(cmd, res, runErr); err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		return driver.WriteLines(cmd.OutOrStdout(), res.Listing)
	}
	if _, err := driver.WriteLinesAtomic(outPath, res.Listing); err != nil {
		return err
	}
	if !isQuiet(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", outPath)
	}
	return nil
}
