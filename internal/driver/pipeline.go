package driver

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"cidl/internal/cpp"
	"cidl/internal/diag"
	"cidl/internal/meta"
	"cidl/internal/observ"
	"cidl/internal/trace"
	"cidl/internal/types"
)

// ErrWarningsAsErrors is returned when WarningsAsErrors is set and the run
// reported warnings.
var ErrWarningsAsErrors = errors.New("driver: warnings treated as errors")

// Result holds everything a run produced. Bag and Timer are set even when
// Run returns an error.
type Result struct {
	Library *types.Library
	Bag     *diag.Bag
	Timer   *observ.Timer

	Listing []string
	Header  []string

	// HeaderPath is set when the header was written to OutDir.
	HeaderPath string
	// HeaderChanged is false when the file on disk already had this content.
	HeaderChanged bool

	// ListingPath and ListingChanged mirror the header fields for the
	// listing file written when Options.ListingExt is set.
	ListingPath    string
	ListingChanged bool
}

// Run loads the input, builds the model and renders the selected targets.
func Run(ctx context.Context, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	res := &Result{Bag: diag.NewBag(opts.MaxDiagnostics)}
	if opts.EnableTimings {
		res.Timer = observ.NewTimer()
	}

	ctx, span := trace.Start(ctx, trace.ScopeDriver, "run")
	span.WithExtra("input", opts.Input).WithExtra("targets", opts.Targets.String())

	err := run(ctx, opts, res)
	if err != nil {
		reportFatal(res.Bag, err)
		span.End("failed: " + err.Error())
		return res, err
	}
	if opts.WarningsAsErrors && res.Bag.HasWarnings() {
		span.End("warnings")
		return res, ErrWarningsAsErrors
	}
	span.End("")
	return res, nil
}

func run(ctx context.Context, opts Options, res *Result) error {
	lib, err := Load(ctx, opts, res.Bag, res.Timer)
	if err != nil {
		return err
	}
	res.Library = lib

	if opts.Targets == TargetListing {
		reportUnresolved(lib, res.Bag)
	}

	out, emitErr := Emit(ctx, lib, opts, res.Timer)
	if out != nil {
		res.Listing, res.Header = out.Listing, out.Header
	}
	if opts.OutDir == "" {
		return emitErr
	}

	// Files are written only after every renderer finished, listing first.
	// A failed header does not hold back the listing.
	if res.Listing != nil && opts.ListingExt != "" {
		path := filepath.Join(opts.OutDir, lib.Name+opts.ListingExt)
		changed, err := writeOutput(ctx, res.Timer, path, res.Listing)
		if err != nil {
			return err
		}
		res.ListingPath, res.ListingChanged = path, changed
	}
	if emitErr != nil {
		return emitErr
	}
	if res.Header != nil {
		path := filepath.Join(opts.OutDir, cpp.HeaderFileName(lib.Name, opts.HeaderExt))
		changed, err := writeOutput(ctx, res.Timer, path, res.Header)
		if err != nil {
			return err
		}
		res.HeaderPath, res.HeaderChanged = path, changed
	}
	return nil
}

func writeOutput(ctx context.Context, timer *observ.Timer, path string, lines []string) (bool, error) {
	idx := timer.Begin("write")
	_, span := trace.Start(ctx, trace.ScopePass, "write")
	changed, err := WriteLinesAtomic(path, lines)
	span.WithExtra("path", path).WithExtra("changed", strconv.FormatBool(changed)).End("")
	timer.End(idx, path)
	return changed, err
}

// Load opens the input and builds the library, reporting non-fatal findings
// into bag. timer may be nil.
func Load(ctx context.Context, opts Options, bag *diag.Bag, timer *observ.Timer) (*types.Library, error) {
	idx := timer.Begin("load")
	_, span := trace.Start(ctx, trace.ScopePass, "load")
	snap, err := meta.Open(opts.Input)
	if err != nil {
		span.End("failed")
		timer.End(idx, "")
		return nil, err
	}
	span.WithExtra("descriptors", strconv.Itoa(len(snap.Descs))).End("")
	timer.End(idx, fmt.Sprintf("%d descriptors", len(snap.Descs)))

	idx = timer.Begin("model")
	ctx, span = trace.Start(ctx, trace.ScopePass, "model")
	defer func() { timer.End(idx, "") }()

	lib, err := types.Build(snap, types.BuildOptions{
		Name:       opts.Library,
		Scalars:    opts.Scalars,
		Duplicates: opts.Duplicates,
		Reporter:   diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
	})
	if err != nil {
		span.End("failed")
		return nil, err
	}
	tr := trace.FromContext(ctx)
	_ = lib.Each(func(name string, def types.TypeDef) error {
		trace.Point(tr, trace.ScopeDef, "def:"+name, def.Kind(), span.ID())
		return nil
	})
	span.WithExtra("defs", strconv.Itoa(lib.Len())).End("")
	return lib, nil
}

// reportUnresolved warns about names the listing prints without checking.
func reportUnresolved(lib *types.Library, bag *diag.Bag) {
	for _, name := range lib.Unresolved() {
		bag.Add(diag.NewWarning(diag.EmitUnresolvedName, name,
			"referenced but not defined; the header would fail to resolve it"))
	}
}

// reportFatal mirrors a fatal error into bag so it prints with the other
// findings.
func reportFatal(bag *diag.Bag, err error) {
	var (
		contract   *types.MethodContractError
		scalar     *types.UnknownScalarError
		dup        *types.DuplicateError
		guid       *types.GUIDError
		unresolved *cpp.UnresolvedError
		write      *WriteError
	)
	switch {
	case errors.As(err, &contract):
		bag.Add(diag.NewError(diag.DefMethodContract, contract.Interface+"."+contract.Method, err.Error()))
	case errors.As(err, &scalar):
		bag.Add(diag.NewError(diag.DefUnknownScalar, scalar.Subject, err.Error()))
	case errors.As(err, &dup):
		bag.Add(diag.NewError(diag.DefDuplicate, dup.Name, err.Error()))
	case errors.As(err, &guid):
		bag.Add(diag.NewError(diag.DefBadGUID, guid.Interface, err.Error()))
	case errors.As(err, &unresolved):
		d := diag.NewError(diag.EmitUnresolvedName, unresolved.Name, err.Error())
		if unresolved.Subject != "" {
			d = d.WithNote(unresolved.Subject, "referenced here")
		}
		bag.Add(d)
	case errors.As(err, &write):
		bag.Add(diag.NewError(diag.IOWriteFailed, write.Path, err.Error()))
	}
}
