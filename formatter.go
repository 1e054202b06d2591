package ogmeta

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatMetadata renders m as aligned "key: value" lines for display.
// Absent fields are omitted; repeated fields get one line per entry.
func FormatMetadata(m Metadata) string {
	if m == nil {
		return ""
	}

	var f fieldWriter
	c := m.Base()
	f.add("kind", string(m.Kind()))
	f.add("type", c.Type)
	f.str("title", c.Title)
	f.str("url", c.URL)
	f.str("description", c.Description)
	f.str("determiner", c.Determiner)
	f.str("locale", c.Locale)
	f.list("locale:alternate", c.AlternateLocales)
	f.str("site_name", c.SiteName)
	for _, img := range c.Images {
		f.add("image", img.URL+describeMedia(img.MimeType, img.Width, img.Height))
	}
	for _, v := range c.Videos {
		f.add("video", v.URL+describeMedia(v.MimeType, v.Width, v.Height))
	}
	for _, a := range c.Audios {
		f.add("audio", a.URL+describeMedia(a.MimeType, nil, nil))
	}

	switch r := m.(type) {
	case *Article:
		f.time("published_time", r.PublishedTime)
		f.time("modified_time", r.ModifiedTime)
		f.time("expiration_time", r.ExpirationTime)
		f.uris("author", r.Authors)
		f.str("section", r.Section)
		f.list("tag", r.Tags)
	case *Book:
		f.uris("author", r.Authors)
		f.str("isbn", r.ISBN)
		f.time("release_date", r.ReleaseDate)
		f.list("tag", r.Tags)
	case *Profile:
		f.str("first_name", r.FirstName)
		f.str("last_name", r.LastName)
		f.str("username", r.Username)
		f.str("gender", r.Gender)
	case *VideoMovie:
		for _, a := range r.Actors {
			line := a.Profile.String()
			if a.Role != nil {
				line += " as " + *a.Role
			}
			f.add("actor", line)
		}
		f.uris("director", r.Directors)
		f.uris("writer", r.Writers)
		if r.Duration != nil {
			f.add("duration", strconv.Itoa(*r.Duration)+"s")
		}
		f.time("release_date", r.ReleaseDate)
		f.list("tag", r.Tags)
	}

	return f.String()
}

func describeMedia(mimeType *string, width, height *int) string {
	var parts []string
	if width != nil && height != nil {
		parts = append(parts, fmt.Sprintf("%dx%d", *width, *height))
	}
	if mimeType != nil {
		parts = append(parts, *mimeType)
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

type fieldWriter struct {
	keys   []string
	values []string
	width  int
}

func (f *fieldWriter) add(key, value string) {
	f.keys = append(f.keys, key)
	f.values = append(f.values, value)
	f.width = max(f.width, len(key))
}

func (f *fieldWriter) str(key string, value *string) {
	if value != nil {
		f.add(key, *value)
	}
}

func (f *fieldWriter) list(key string, values []string) {
	for _, v := range values {
		f.add(key, v)
	}
}

func (f *fieldWriter) uris(key string, values []URI) {
	for _, v := range values {
		f.add(key, v.String())
	}
}

func (f *fieldWriter) time(key string, value *time.Time) {
	if value != nil {
		f.add(key, value.Format(time.RFC3339))
	}
}

func (f *fieldWriter) String() string {
	var b strings.Builder
	for i, key := range f.keys {
		fmt.Fprintf(&b, "%-*s  %s\n", f.width+1, key+":", f.values[i])
	}
	return b.String()
}
