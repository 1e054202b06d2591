package extract

import "github.com/fwojciec/ogmeta"

// Entity names used in diagnostics.
const (
	entityImage = "image"
	entityVideo = "video"
	entityAudio = "audio"
	entityActor = "actor"
)

// slots holds the entities currently being assembled. Each slot is nil until
// its start tag arrives and is flushed into the record by the next start tag
// of the same kind or at end of input.
type slots struct {
	image *ogmeta.Image
	video *ogmeta.Video
	audio *ogmeta.Audio
	actor *ogmeta.VideoActor
}

func (p *pass) openImage(property, url string) {
	p.flushImage()
	if url == "" {
		p.reporter.InvalidValue(property, url)
		return
	}
	p.image = &ogmeta.Image{URL: url}
}

func (p *pass) flushImage() {
	if p.image == nil {
		return
	}
	p.common.Images = append(p.common.Images, *p.image)
	p.image = nil
}

func (p *pass) openVideo(property, url string) {
	p.flushVideo()
	if url == "" {
		p.reporter.InvalidValue(property, url)
		return
	}
	p.video = &ogmeta.Video{URL: url}
}

func (p *pass) flushVideo() {
	if p.video == nil {
		return
	}
	p.common.Videos = append(p.common.Videos, *p.video)
	p.video = nil
}

func (p *pass) openAudio(property, url string) {
	p.flushAudio()
	if url == "" {
		p.reporter.InvalidValue(property, url)
		return
	}
	p.audio = &ogmeta.Audio{URL: url}
}

func (p *pass) flushAudio() {
	if p.audio == nil {
		return
	}
	p.common.Audios = append(p.common.Audios, *p.audio)
	p.audio = nil
}

// openActor flushes the current actor before parsing the new profile, so an
// invalid profile still closes the previous actor.
func (p *pass) openActor(movie *ogmeta.VideoMovie, property, content string) {
	p.flushActor(movie)
	profile, ok := ParseURI(content)
	if !ok {
		p.reporter.InvalidValue(property, content)
		return
	}
	p.actor = &ogmeta.VideoActor{Profile: profile}
}

func (p *pass) flushActor(movie *ogmeta.VideoMovie) {
	if p.actor == nil {
		return
	}
	movie.Actors = append(movie.Actors, *p.actor)
	p.actor = nil
}
