package mock

import "github.com/fwojciec/ogmeta"

// Compile-time interface verification.
var (
	_ ogmeta.Extractor  = (*Extractor)(nil)
	_ ogmeta.PairReader = (*PairReader)(nil)
	_ ogmeta.Reporter   = (*Reporter)(nil)
)

// Extractor is a mock implementation of ogmeta.Extractor.
type Extractor struct {
	ExtractFn func(pairs []ogmeta.MetaPair) ogmeta.Metadata
}

func (e *Extractor) Extract(pairs []ogmeta.MetaPair) ogmeta.Metadata {
	return e.ExtractFn(pairs)
}

// PairReader is a mock implementation of ogmeta.PairReader.
type PairReader struct {
	ReadPairsFn func(html string) ([]ogmeta.MetaPair, error)
}

func (r *PairReader) ReadPairs(html string) ([]ogmeta.MetaPair, error) {
	return r.ReadPairsFn(html)
}

// Reporter is a mock implementation of ogmeta.Reporter.
// Nil function fields are treated as no-ops.
type Reporter struct {
	NotInFlightFn  func(property, entity string)
	InvalidValueFn func(property, content string)
}

func (r *Reporter) NotInFlight(property, entity string) {
	if r.NotInFlightFn != nil {
		r.NotInFlightFn(property, entity)
	}
}

func (r *Reporter) InvalidValue(property, content string) {
	if r.InvalidValueFn != nil {
		r.InvalidValueFn(property, content)
	}
}
