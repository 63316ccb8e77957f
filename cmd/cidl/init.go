package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cidl/internal/project"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Initialize a new cidl project",
		Long: `Initialize a new cidl project by creating a project manifest (cidl.toml)
and a starter descriptor file. If [path] is omitted, initializes the current
directory. A non-existing path is created.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	target := wd
	if len(args) == 1 && args[0] != "." {
		target = args[0]
		if !filepath.IsAbs(target) {
			target = filepath.Join(wd, target)
		}
	}

	res, err := project.Init(target)
	if err != nil {
		return err
	}
	if isQuiet(cmd) {
		return nil
	}

	rel := target
	if r, err := filepath.Rel(wd, target); err == nil {
		rel = r
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized cidl project in %s\n", rel)
	fmt.Fprintf(out, "  - %s\n", filepath.Base(res.Manifest))
	if res.CreatedDescriptor {
		fmt.Fprintf(out, "  - %s\n", filepath.Base(res.Descriptor))
	} else {
		fmt.Fprintf(out, "  - %s (existing)\n", filepath.Base(res.Descriptor))
	}
	return nil
}
