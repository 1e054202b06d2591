package extract

// Base OpenGraph properties.
const (
	PropertyType            = "og:type"
	PropertyTitle           = "og:title"
	PropertyURL             = "og:url"
	PropertyDescription     = "og:description"
	PropertyDeterminer      = "og:determiner"
	PropertyLocale          = "og:locale"
	PropertyLocaleAlternate = "og:locale:alternate"
	PropertySiteName        = "og:site_name"
)

// Structured media properties. The :url forms are aliases of the bare
// property and start a new entity the same way.
const (
	PropertyImage          = "og:image"
	PropertyImageURL       = "og:image:url"
	PropertyImageSecureURL = "og:image:secure_url"
	PropertyImageType      = "og:image:type"
	PropertyImageWidth     = "og:image:width"
	PropertyImageHeight    = "og:image:height"
	PropertyImageAlt       = "og:image:alt"

	PropertyVideo          = "og:video"
	PropertyVideoURL       = "og:video:url"
	PropertyVideoSecureURL = "og:video:secure_url"
	PropertyVideoType      = "og:video:type"
	PropertyVideoWidth     = "og:video:width"
	PropertyVideoHeight    = "og:video:height"
	PropertyVideoAlt       = "og:video:alt"

	PropertyAudio          = "og:audio"
	PropertyAudioURL       = "og:audio:url"
	PropertyAudioSecureURL = "og:audio:secure_url"
	PropertyAudioType      = "og:audio:type"
)

// Article properties.
const (
	PropertyArticlePublishedTime  = "article:published_time"
	PropertyArticleModifiedTime   = "article:modified_time"
	PropertyArticleExpirationTime = "article:expiration_time"
	PropertyArticleAuthor         = "article:author"
	PropertyArticleSection        = "article:section"
	PropertyArticleTag            = "article:tag"
)

// Book properties.
const (
	PropertyBookAuthor      = "book:author"
	PropertyBookISBN        = "book:isbn"
	PropertyBookReleaseDate = "book:release_date"
	PropertyBookTag         = "book:tag"
)

// Profile properties.
const (
	PropertyProfileFirstName = "profile:first_name"
	PropertyProfileLastName  = "profile:last_name"
	PropertyProfileUsername  = "profile:username"
	PropertyProfileGender    = "profile:gender"
)

// Movie properties.
const (
	PropertyVideoActor       = "video:actor"
	PropertyVideoActorRole   = "video:actor:role"
	PropertyVideoDirector    = "video:director"
	PropertyVideoWriter      = "video:writer"
	PropertyVideoDuration    = "video:duration"
	PropertyVideoReleaseDate = "video:release_date"
	PropertyVideoTag         = "video:tag"
)
