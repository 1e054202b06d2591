package ogmeta

// Extractor rebuilds OpenGraph metadata from meta tag pairs.
type Extractor interface {
	// Extract consumes pairs in document order and returns the record they
	// describe. Malformed values and orphaned tags degrade to absent fields;
	// extraction never fails. A nil result means the implementation was
	// configured to require og:type and none was present.
	Extract(pairs []MetaPair) Metadata
}

// PairReader reads the meta tag pairs from an HTML document.
type PairReader interface {
	// ReadPairs returns every head-level meta tag that has both a property
	// and a content attribute, in document order, with lowercased properties.
	ReadPairs(html string) ([]MetaPair, error)
}

// Reporter receives diagnostics about tags the extractor could not use.
// It is purely observational.
type Reporter interface {
	// NotInFlight reports a sub-property that arrived while no entity of the
	// named kind ("image", "video", "audio", "actor") was open.
	NotInFlight(property, entity string)

	// InvalidValue reports content that could not be coerced to the
	// property's type.
	InvalidValue(property, content string)
}

// NopReporter discards all diagnostics.
type NopReporter struct{}

func (NopReporter) NotInFlight(property, entity string)   {}
func (NopReporter) InvalidValue(property, content string) {}
