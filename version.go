package mediagallery

import "fmt"

const (
	major = 0
	minor = 1
	patch = 0
)

// meta is set at build time with -ldflags "-X github.com/jxjxx71718/mediaGallery.meta=...".
var meta = ""

func StringVersion() string {
	v := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if meta != "" {
		v = fmt.Sprintf("%s-%s", v, meta)
	}

	return v
}
