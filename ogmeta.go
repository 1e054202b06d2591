// Package ogmeta extracts typed OpenGraph metadata from HTML documents.
// It reads the <meta property=... content=...> tags in a document head and
// rebuilds them into one of a small set of record kinds (website, article,
// book, profile, video.movie), including repeated nested media and actors.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package ogmeta
