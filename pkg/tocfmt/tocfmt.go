// Package tocfmt is the public API for normalizing chapter listings.
package tocfmt

import (
	"github.com/grovetools/tocfmt/internal/outline"
	"github.com/grovetools/tocfmt/internal/titlecase"
)

type (
	// Outline is a parsed, normalized listing.
	Outline = outline.Outline
	// Line is one line of an Outline.
	Line = outline.Line
	// Kind classifies a Line.
	Kind = outline.Kind
)

const (
	KindBlank  = outline.KindBlank
	KindHeader = outline.KindHeader
	KindEntry  = outline.KindEntry
	KindOther  = outline.KindOther
)

// Normalizer wraps the internal outline normalizer
type Normalizer struct {
	*outline.Normalizer
}

// NewNormalizer creates a normalizer that removes the given table markers.
// A nil markers slice keeps the defaults.
func NewNormalizer(markers []string) *Normalizer {
	if markers == nil {
		return &Normalizer{Normalizer: outline.New()}
	}
	return &Normalizer{Normalizer: outline.New(outline.WithMarkers(markers))}
}

// Normalize rewrites a raw listing into a clean outline.
func Normalize(raw string) string {
	return outline.Normalize(raw)
}

// Parse returns the structured outline for a raw listing.
func Parse(raw string) Outline {
	return outline.Parse(raw)
}

// TitleCase title-cases text, keeping interior small words lowercase.
func TitleCase(text string) string {
	return titlecase.String(text)
}
