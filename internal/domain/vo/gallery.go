package vo

import (
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"

	"catalog/internal/errors"
)

const (
	// MinGalleryImages is the smallest gallery accepted.
	MinGalleryImages = 1
	// MaxGalleryImages is the largest gallery accepted.
	MaxGalleryImages = 15
	// MaxImageURLLength bounds every image URL.
	MaxImageURLLength = 2048
)

// Gallery is an ordered, duplicate-free list of image URLs. The first image is the primary one.
type Gallery struct {
	images []string
}

// NewGallery validates and copies urls.
func NewGallery(urls []string) (Gallery, error) {
	if len(urls) < MinGalleryImages {
		return Gallery{}, errors.Invalid("gallery", "must contain at least %d image", MinGalleryImages)
	}
	if len(urls) > MaxGalleryImages {
		return Gallery{}, errors.Invalid("gallery", "cannot contain more than %d images", MaxGalleryImages)
	}

	images := make([]string, 0, len(urls))
	seen := make(map[string]struct{}, len(urls))
	for _, raw := range urls {
		imageURL, err := parseImageURL(raw)
		if err != nil {
			return Gallery{}, err
		}
		if _, dup := seen[imageURL]; dup {
			return Gallery{}, errors.Invalid("gallery", "must not contain duplicate image URLs")
		}
		seen[imageURL] = struct{}{}
		images = append(images, imageURL)
	}

	return Gallery{images: images}, nil
}

func parseImageURL(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", errors.Invalid("imageUrl", "must not be blank")
	}
	if utf8.RuneCountInString(value) > MaxImageURLLength {
		return "", errors.Invalid("imageUrl", "must not exceed %d characters", MaxImageURLLength)
	}

	parsed, err := url.ParseRequestURI(value)
	if err != nil {
		return "", errors.Invalid("imageUrl", "must be a well-formed URI")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.Invalid("imageUrl", "must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.Invalid("imageUrl", "must include a host")
	}

	return value, nil
}

// Primary returns the first image, or an empty string for a zero gallery.
func (g Gallery) Primary() string {
	if len(g.images) == 0 {
		return ""
	}

	return g.images[0]
}

// Images returns a copy of the image URLs in order.
func (g Gallery) Images() []string {
	return slices.Clone(g.images)
}

// Len returns the number of images.
func (g Gallery) Len() int { return len(g.images) }

// IsZero reports whether the gallery was never set.
func (g Gallery) IsZero() bool { return len(g.images) == 0 }

// Contains reports whether imageURL is part of the gallery.
func (g Gallery) Contains(imageURL string) bool {
	return slices.Contains(g.images, strings.TrimSpace(imageURL))
}

// Equals reports ordered equality.
func (g Gallery) Equals(other Gallery) bool {
	return slices.Equal(g.images, other.images)
}
