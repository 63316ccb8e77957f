package diag

// Reporter is the minimal sink phases report findings into.
// Implementations: BagReporter, NopReporter, DedupReporter.
type Reporter interface {
	Report(d Diagnostic)
}

// Warn reports a warning through r. A nil r drops it.
func Warn(r Reporter, code Code, subject, msg string) {
	if r == nil {
		return
	}
	r.Report(NewWarning(code, subject, msg))
}

// Info reports an informational diagnostic through r. A nil r drops it.
func Info(r Reporter, code Code, subject, msg string) {
	if r == nil {
		return
	}
	r.Report(New(SevInfo, code, subject, msg))
}

// BagReporter writes into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}
