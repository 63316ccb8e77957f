package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cidl/internal/trace"
)

// setupTracing inspects trace-related flags and attaches a tracer to the
// command context.
func (s *session) setupTracing(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	traceOutput, err := flags.GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	// --trace alone implies phase level
	if level == trace.LevelOff && traceOutput != "" {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return nil
	}

	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return err
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: traceOutput,
		RingSize:   ringSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	s.tracer = tracer
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))
	return nil
}

// finishTracing dumps the ring buffer when the command failed, then flushes
// and closes the tracer.
func (s *session) finishTracing(stderr io.Writer, cmdErr error) {
	if s.tracer == nil {
		return
	}
	if ring, ok := trace.FindRing(s.tracer); ok && cmdErr != nil {
		fmt.Fprintln(stderr, "trace: last events before failure:")
		if err := ring.Dump(stderr, trace.FormatText); err != nil {
			fmt.Fprintf(stderr, "trace: dump error: %v\n", err)
		}
	}
	if err := s.tracer.Flush(); err != nil {
		fmt.Fprintf(stderr, "trace: flush error: %v\n", err)
	}
	if err := s.tracer.Close(); err != nil {
		fmt.Fprintf(stderr, "trace: close error: %v\n", err)
	}
}
