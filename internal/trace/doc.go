// Package trace is the logging and tracing subsystem of the cidl tool.
//
// # Usage
//
//	cidl header --trace=- --trace-level=detail example.toml
//
// # Tracers
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: writes each event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events for a dump when a run fails
//   - MultiTracer: fans out to several tracers
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only the ring dump on failure
//   - LevelPhase: driver and pass boundaries (load, model, emit, write)
//   - LevelDetail: per-definition events
//   - LevelDebug: everything
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "build", 0)
//	defer span.End("")
package trace
