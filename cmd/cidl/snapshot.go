package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cidl/internal/meta"
)

func newSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot <input> <output>",
		Short: "Convert between descriptor files and msgpack snapshots",
		Long: `Convert a descriptor file to a binary snapshot (.mp, .msgpack) or a snapshot
back to a descriptor file (.toml). The formats are chosen by extension.`,
		Args: cobra.ExactArgs(2),
		RunE: runSnapshot,
	}
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]
	snap, err := meta.Open(in)
	if err != nil {
		return err
	}

	switch meta.DetectFormat(out) {
	case meta.FormatMsgpack:
		if err := meta.WriteSnapshotFile(out, snap); err != nil {
			return err
		}
	case meta.FormatTOML:
		if err := writeTOMLFile(out, snap); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%s: unsupported output format (want .toml, .mp or .msgpack)", out)
	}

	if !isQuiet(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d descriptors)\n", out, len(snap.Descs))
	}
	return nil
}

func writeTOMLFile(path string, snap *meta.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := meta.WriteTOML(f, snap); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
