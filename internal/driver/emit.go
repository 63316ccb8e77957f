package driver

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"cidl/internal/cpp"
	"cidl/internal/listing"
	"cidl/internal/observ"
	"cidl/internal/text"
	"cidl/internal/trace"
	"cidl/internal/types"
)

// Output holds the rendered lines per target. A target that was not
// requested stays nil.
type Output struct {
	Listing []string
	Header  []string
}

// Emit renders the selected targets of lib concurrently. The library is
// only read, so both emitters share it. A failing target leaves its field
// nil; the output of the targets that succeeded is returned with the error.
func Emit(ctx context.Context, lib *types.Library, opts Options, timer *observ.Timer) (*Output, error) {
	opts = opts.withDefaults()
	render := text.Options{Indent: opts.Indent}
	out := &Output{}

	g, gctx := errgroup.WithContext(ctx)
	if opts.Targets.Has(TargetListing) {
		g.Go(func() error {
			idx := timer.Begin("emit:listing")
			_, span := trace.Start(gctx, trace.ScopePass, "emit:listing")
			lines := text.Text(listing.Emit(lib), render)
			span.WithExtra("lines", strconv.Itoa(len(lines))).End("")
			timer.End(idx, "")
			out.Listing = lines
			return nil
		})
	}
	if opts.Targets.Has(TargetHeader) {
		g.Go(func() error {
			idx := timer.Begin("emit:header")
			defer timer.End(idx, "")
			_, span := trace.Start(gctx, trace.ScopePass, "emit:header")
			select {
			case <-gctx.Done():
				span.End("canceled")
				return gctx.Err()
			default:
			}
			items, err := cpp.Emit(lib, opts.Header)
			if err != nil {
				span.End("failed")
				return err
			}
			lines := text.Text(items, render)
			span.WithExtra("lines", strconv.Itoa(len(lines))).End("")
			out.Header = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, fmt.Errorf("driver: emit %s: %w", lib.Name, err)
	}
	return out, nil
}
