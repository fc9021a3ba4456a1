package model

import "slices"

// MediaRef points an item at its media. It is either a single URL or an
// ordered list of URLs, never both.
type MediaRef struct {
	multiple bool
	urls     []string
}

func SingleMedia(url string) MediaRef {
	if url == "" {
		return MediaRef{}
	}

	return MediaRef{urls: []string{url}}
}

// MultipleMedia returns an empty ref when urls is empty.
func MultipleMedia(urls []string) MediaRef {
	if len(urls) == 0 {
		return MediaRef{}
	}

	return MediaRef{multiple: true, urls: slices.Clone(urls)}
}

func (r MediaRef) IsMultiple() bool {
	return r.multiple
}

func (r MediaRef) IsEmpty() bool {
	return len(r.urls) == 0
}

// URLs returns the effective URL list: all URLs of a multiple ref, or the
// single URL as a one element list.
func (r MediaRef) URLs() []string {
	return slices.Clone(r.urls)
}

func (r MediaRef) SingleURL() string {
	if r.multiple || len(r.urls) == 0 {
		return ""
	}

	return r.urls[0]
}

func (r MediaRef) MultipleURLs() []string {
	if !r.multiple {
		return nil
	}

	return slices.Clone(r.urls)
}
