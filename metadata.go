package ogmeta

import "time"

// MetaPair is a single <meta property content> tag from a document head.
// Property is lowercased by the producer; pairs are kept in document order.
type MetaPair struct {
	Property string
	Content  string
}

// Kind identifies which record type models an og:type value.
type Kind string

// Record kinds. Every og:type without a dedicated record is KindWebsite.
const (
	KindWebsite    Kind = "website"
	KindArticle    Kind = "article"
	KindBook       Kind = "book"
	KindProfile    Kind = "profile"
	KindVideoMovie Kind = "video.movie"
)

// KindOf maps an og:type value to the record kind that models it.
// The match is exact; unknown values map to KindWebsite.
func KindOf(ogType string) Kind {
	switch k := Kind(ogType); k {
	case KindArticle, KindBook, KindProfile, KindVideoMovie:
		return k
	default:
		return KindWebsite
	}
}

// Valid reports whether k is one of the modeled kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindWebsite, KindArticle, KindBook, KindProfile, KindVideoMovie:
		return true
	}
	return false
}

// Determiner values allowed by og:determiner.
const (
	DeterminerA    = "a"
	DeterminerAn   = "an"
	DeterminerThe  = "the"
	DeterminerNone = ""
	DeterminerAuto = "auto"
)

// ValidDeterminer reports whether s is an allowed og:determiner value.
// Extraction keeps the raw content; this is for consumers that validate.
func ValidDeterminer(s string) bool {
	switch s {
	case DeterminerA, DeterminerAn, DeterminerThe, DeterminerNone, DeterminerAuto:
		return true
	}
	return false
}

// Metadata is an extracted OpenGraph record. It is implemented by
// *Website, *Article, *Book, *Profile and *VideoMovie only.
//
// Records are built once by an Extractor and are not modified afterwards;
// callers should treat them as read-only.
type Metadata interface {
	// Kind returns the record kind.
	Kind() Kind

	// Base returns the properties shared by every record kind.
	Base() *Common

	metadata()
}

// Common holds the properties every record kind carries.
// Nil pointers are absent values.
type Common struct {
	// Type is the raw og:type content, or "website" when the tag was absent.
	Type             string   `json:"type"`
	Title            *string  `json:"title,omitempty"`
	URL              *string  `json:"url,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Determiner       *string  `json:"determiner,omitempty"`
	Locale           *string  `json:"locale,omitempty"`
	AlternateLocales []string `json:"alternateLocales"`
	SiteName         *string  `json:"siteName,omitempty"`
	Images           []Image  `json:"images"`
	Videos           []Video  `json:"videos"`
	Audios           []Audio  `json:"audios"`
}

// Base returns c. It lets every record satisfy Metadata through embedding.
func (c *Common) Base() *Common { return c }

// Website is the default record kind.
type Website struct {
	Common
}

// Article is an og:type=article record.
type Article struct {
	Common
	PublishedTime  *time.Time `json:"publishedTime,omitempty"`
	ModifiedTime   *time.Time `json:"modifiedTime,omitempty"`
	ExpirationTime *time.Time `json:"expirationTime,omitempty"`
	Authors        []URI      `json:"authors"`
	Section        *string    `json:"section,omitempty"`
	Tags           []string   `json:"tags"`
}

// Book is an og:type=book record.
type Book struct {
	Common
	Authors     []URI      `json:"authors"`
	ISBN        *string    `json:"isbn,omitempty"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty"`
	Tags        []string   `json:"tags"`
}

// Profile is an og:type=profile record.
type Profile struct {
	Common
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Username  *string `json:"username,omitempty"`
	Gender    *string `json:"gender,omitempty"`
}

// VideoMovie is an og:type=video.movie record.
type VideoMovie struct {
	Common
	Actors      []VideoActor `json:"actors"`
	Directors   []URI        `json:"directors"`
	Writers     []URI        `json:"writers"`
	Duration    *int         `json:"duration,omitempty"`
	ReleaseDate *time.Time   `json:"releaseDate,omitempty"`
	Tags        []string     `json:"tags"`
}

func (*Website) Kind() Kind    { return KindWebsite }
func (*Article) Kind() Kind    { return KindArticle }
func (*Book) Kind() Kind       { return KindBook }
func (*Profile) Kind() Kind    { return KindProfile }
func (*VideoMovie) Kind() Kind { return KindVideoMovie }

func (*Website) metadata()    {}
func (*Article) metadata()    {}
func (*Book) metadata()       {}
func (*Profile) metadata()    {}
func (*VideoMovie) metadata() {}

// NewMetadata returns an empty record of the given kind with Type set to
// ogType. Unknown kinds produce a *Website.
func NewMetadata(kind Kind, ogType string) Metadata {
	common := Common{Type: ogType}
	switch kind {
	case KindArticle:
		return &Article{Common: common}
	case KindBook:
		return &Book{Common: common}
	case KindProfile:
		return &Profile{Common: common}
	case KindVideoMovie:
		return &VideoMovie{Common: common}
	default:
		return &Website{Common: common}
	}
}
