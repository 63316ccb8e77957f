package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cidl/internal/prof"
	"cidl/internal/trace"
)

// session owns the per-invocation tracer and profiles.
type session struct {
	tracer   trace.Tracer
	profiles *prof.Session
}

func (s *session) setup(cmd *cobra.Command) error {
	if err := s.setupProfiling(cmd); err != nil {
		return err
	}
	return s.setupTracing(cmd)
}

func (s *session) finish(stderr io.Writer, cmdErr error) {
	s.finishTracing(stderr, cmdErr)
	if err := s.profiles.Stop(); err != nil {
		fmt.Fprintf(stderr, "profile: %v\n", err)
	}
}

// setupProfiling starts the profiles named by the profiling flags.
func (s *session) setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var cfg prof.Config
	var err error
	if cfg.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if cfg.Mem, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if cfg.RuntimeTrace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !cfg.Enabled() {
		return nil
	}
	s.profiles, err = prof.Start(cfg)
	return err
}
