// Package extract rebuilds OpenGraph records from meta tag pairs.
//
// Extraction is a single pass over the pairs in document order. The first
// og:type picks the record kind; every later pair either sets a field on the
// record, starts a nested entity (image, video, audio, actor), or refines the
// entity currently open for its kind. Values that fail to parse and
// sub-properties with nothing open are reported and skipped.
package extract

import (
	"time"

	"github.com/fwojciec/ogmeta"
)

// Ensure Extractor implements ogmeta.Extractor at compile time.
var _ ogmeta.Extractor = (*Extractor)(nil)

// Extractor implements ogmeta.Extractor. It holds no per-call state and is
// safe for concurrent use.
type Extractor struct {
	reporter    ogmeta.Reporter
	requireType bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithReporter sets the sink for diagnostics about skipped tags.
// Defaults to ogmeta.NopReporter.
func WithReporter(r ogmeta.Reporter) Option {
	return func(e *Extractor) {
		e.reporter = r
	}
}

// WithRequireType makes Extract return nil for documents without og:type
// instead of treating them as websites.
func WithRequireType(require bool) Option {
	return func(e *Extractor) {
		e.requireType = require
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		reporter: ogmeta.NopReporter{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.reporter == nil {
		e.reporter = ogmeta.NopReporter{}
	}
	return e
}

// Extract consumes pairs in order and returns the record they describe.
func (e *Extractor) Extract(pairs []ogmeta.MetaPair) ogmeta.Metadata {
	ogType, ok := TypeOf(pairs)
	if !ok {
		if e.requireType {
			return nil
		}
		ogType = string(ogmeta.KindWebsite)
	}

	record := ogmeta.NewMetadata(ogmeta.KindOf(ogType), ogType)
	p := &pass{
		reporter: e.reporter,
		record:   record,
		common:   record.Base(),
	}
	for _, pair := range pairs {
		p.handle(pair.Property, pair.Content)
	}
	return p.finish()
}

// pass is the state of one Extract call.
type pass struct {
	slots
	reporter ogmeta.Reporter
	record   ogmeta.Metadata
	common   *ogmeta.Common
}

func (p *pass) handle(property, content string) {
	if p.handleCommon(property, content) || p.handleMedia(property, content) {
		return
	}
	switch r := p.record.(type) {
	case *ogmeta.Article:
		p.handleArticle(r, property, content)
	case *ogmeta.Book:
		p.handleBook(r, property, content)
	case *ogmeta.Profile:
		p.handleProfile(r, property, content)
	case *ogmeta.VideoMovie:
		p.handleVideoMovie(r, property, content)
	}
	// Anything else belongs to an unmodeled extension and is dropped.
}

// finish flushes open entities and returns the completed record.
func (p *pass) finish() ogmeta.Metadata {
	p.flushImage()
	p.flushVideo()
	p.flushAudio()
	if movie, ok := p.record.(*ogmeta.VideoMovie); ok {
		p.flushActor(movie)
	}
	seal(p.record)
	return p.record
}

func (p *pass) handleCommon(property, content string) bool {
	c := p.common
	switch property {
	case PropertyType:
		// Consumed before the pass.
	case PropertyTitle:
		c.Title = ptr(content)
	case PropertyURL:
		c.URL = ptr(content)
	case PropertyDescription:
		c.Description = ptr(content)
	case PropertyDeterminer:
		c.Determiner = ptr(content)
	case PropertyLocale:
		c.Locale = ptr(content)
	case PropertyLocaleAlternate:
		c.AlternateLocales = append(c.AlternateLocales, content)
	case PropertySiteName:
		c.SiteName = ptr(content)
	default:
		return false
	}
	return true
}

func (p *pass) handleMedia(property, content string) bool {
	switch property {
	case PropertyImage, PropertyImageURL:
		p.openImage(property, content)
	case PropertyImageSecureURL, PropertyImageType, PropertyImageAlt,
		PropertyImageWidth, PropertyImageHeight:
		if p.image == nil {
			p.reporter.NotInFlight(property, entityImage)
			return true
		}
		img := p.image
		switch property {
		case PropertyImageSecureURL:
			img.SecureURL = ptr(content)
		case PropertyImageType:
			img.MimeType = ptr(content)
		case PropertyImageAlt:
			img.Alt = ptr(content)
		case PropertyImageWidth:
			img.Width = p.integer(property, content)
		case PropertyImageHeight:
			img.Height = p.integer(property, content)
		}

	case PropertyVideo, PropertyVideoURL:
		p.openVideo(property, content)
	case PropertyVideoSecureURL, PropertyVideoType, PropertyVideoAlt,
		PropertyVideoWidth, PropertyVideoHeight:
		if p.video == nil {
			p.reporter.NotInFlight(property, entityVideo)
			return true
		}
		v := p.video
		switch property {
		case PropertyVideoSecureURL:
			v.SecureURL = ptr(content)
		case PropertyVideoType:
			v.MimeType = ptr(content)
		case PropertyVideoAlt:
			v.Alt = ptr(content)
		case PropertyVideoWidth:
			v.Width = p.integer(property, content)
		case PropertyVideoHeight:
			v.Height = p.integer(property, content)
		}

	case PropertyAudio, PropertyAudioURL:
		p.openAudio(property, content)
	case PropertyAudioSecureURL, PropertyAudioType:
		if p.audio == nil {
			p.reporter.NotInFlight(property, entityAudio)
			return true
		}
		if property == PropertyAudioSecureURL {
			p.audio.SecureURL = ptr(content)
		} else {
			p.audio.MimeType = ptr(content)
		}

	default:
		return false
	}
	return true
}

func (p *pass) handleArticle(a *ogmeta.Article, property, content string) {
	switch property {
	case PropertyArticlePublishedTime:
		p.timestamp(&a.PublishedTime, property, content)
	case PropertyArticleModifiedTime:
		p.timestamp(&a.ModifiedTime, property, content)
	case PropertyArticleExpirationTime:
		p.timestamp(&a.ExpirationTime, property, content)
	case PropertyArticleAuthor:
		p.appendURI(&a.Authors, property, content)
	case PropertyArticleSection:
		a.Section = ptr(content)
	case PropertyArticleTag:
		a.Tags = append(a.Tags, content)
	}
}

func (p *pass) handleBook(b *ogmeta.Book, property, content string) {
	switch property {
	case PropertyBookAuthor:
		p.appendURI(&b.Authors, property, content)
	case PropertyBookISBN:
		b.ISBN = ptr(content)
	case PropertyBookReleaseDate:
		p.timestamp(&b.ReleaseDate, property, content)
	case PropertyBookTag:
		b.Tags = append(b.Tags, content)
	}
}

func (p *pass) handleProfile(r *ogmeta.Profile, property, content string) {
	switch property {
	case PropertyProfileFirstName:
		r.FirstName = ptr(content)
	case PropertyProfileLastName:
		r.LastName = ptr(content)
	case PropertyProfileUsername:
		r.Username = ptr(content)
	case PropertyProfileGender:
		r.Gender = ptr(content)
	}
}

func (p *pass) handleVideoMovie(m *ogmeta.VideoMovie, property, content string) {
	switch property {
	case PropertyVideoActor:
		p.openActor(m, property, content)
	case PropertyVideoActorRole:
		if p.actor == nil {
			p.reporter.NotInFlight(property, entityActor)
			return
		}
		p.actor.Role = ptr(content)
	case PropertyVideoDirector:
		p.appendURI(&m.Directors, property, content)
	case PropertyVideoWriter:
		p.appendURI(&m.Writers, property, content)
	case PropertyVideoDuration:
		if d := p.integer(property, content); d != nil {
			m.Duration = d
		}
	case PropertyVideoReleaseDate:
		p.timestamp(&m.ReleaseDate, property, content)
	case PropertyVideoTag:
		m.Tags = append(m.Tags, content)
	}
}

// integer coerces content, reporting and returning nil on failure.
func (p *pass) integer(property, content string) *int {
	v, ok := ParseInteger(content)
	if !ok {
		p.reporter.InvalidValue(property, content)
		return nil
	}
	return &v
}

// timestamp overwrites dst when content parses; dst is untouched otherwise.
func (p *pass) timestamp(dst **time.Time, property, content string) {
	t, ok := ParseTimestamp(content)
	if !ok {
		p.reporter.InvalidValue(property, content)
		return
	}
	*dst = &t
}

// appendURI appends the parsed content to dst, skipping invalid URIs.
func (p *pass) appendURI(dst *[]ogmeta.URI, property, content string) {
	u, ok := ParseURI(content)
	if !ok {
		p.reporter.InvalidValue(property, content)
		return
	}
	*dst = append(*dst, u)
}

func ptr(s string) *string {
	return &s
}

// seal replaces nil sequences with empty ones so that finished records
// compare and encode the same whether or not a list saw any tags.
func seal(m ogmeta.Metadata) {
	c := m.Base()
	c.AlternateLocales = nonNil(c.AlternateLocales)
	c.Images = nonNil(c.Images)
	c.Videos = nonNil(c.Videos)
	c.Audios = nonNil(c.Audios)

	switch r := m.(type) {
	case *ogmeta.Article:
		r.Authors = nonNil(r.Authors)
		r.Tags = nonNil(r.Tags)
	case *ogmeta.Book:
		r.Authors = nonNil(r.Authors)
		r.Tags = nonNil(r.Tags)
	case *ogmeta.VideoMovie:
		r.Actors = nonNil(r.Actors)
		r.Directors = nonNil(r.Directors)
		r.Writers = nonNil(r.Writers)
		r.Tags = nonNil(r.Tags)
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
