package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cidl/internal/driver"
	"cidl/internal/project"
)

// listingExt is the extension of the listing file written by build.
const listingExt = ".cidl"

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Generate the listing and header described by cidl.toml",
		Long: `Generate both outputs into the manifest's [output].dir:
<library>.cidl (native listing) and <library><header_ext> (ABI header).`,
		Args: cobra.NoArgs,
		RunE: runBuild,
	}
}

func runBuild(cmd *cobra.Command, _ []string) error {
	m, err := loadManifest(cmd)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("no %s found\nrun `cidl init` to create one", project.ManifestName)
	}
	opts, _, err := pipelineOptions(cmd, "", driver.TargetAll)
	if err != nil {
		return err
	}
	opts.OutDir = m.OutputDir()
	opts.ListingExt = listingExt

	res, runErr := driver.Run(cmd.Context(), opts)
	if res != nil && res.ListingPath != "" {
		printWritten(cmd, res.ListingPath, res.ListingChanged)
	}
	if err := report(cmd, res, runErr); err != nil {
		return err
	}
	printWritten(cmd, res.HeaderPath, res.HeaderChanged)
	return nil
}
