package extract

import "github.com/fwojciec/ogmeta"

// TypeOf returns the content of the first og:type pair, verbatim.
// The boolean is false when no og:type pair exists.
func TypeOf(pairs []ogmeta.MetaPair) (string, bool) {
	for _, p := range pairs {
		if p.Property == PropertyType {
			return p.Content, true
		}
	}
	return "", false
}

// Dispatch selects the record kind for pairs. Documents without og:type
// are websites, as are documents whose type has no dedicated record.
func Dispatch(pairs []ogmeta.MetaPair) ogmeta.Kind {
	ogType, ok := TypeOf(pairs)
	if !ok {
		return ogmeta.KindWebsite
	}
	return ogmeta.KindOf(ogType)
}
