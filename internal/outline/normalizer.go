package outline

import (
	"fmt"

	"github.com/grovetools/tocfmt/internal/titlecase"
	"github.com/sirupsen/logrus"
)

// state carries header tracking across blocks.
type state int

const (
	stateNormal state = iota
	stateAfterHeader
)

// Normalizer rewrites chapter listings. The zero value is not usable; build
// one with New.
type Normalizer struct {
	markers []string
	logger  *logrus.Entry
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithMarkers replaces the table headings removed from every line.
func WithMarkers(markers []string) Option {
	return func(n *Normalizer) {
		n.markers = append([]string(nil), markers...)
	}
}

// WithLogger attaches a logger that records dropped lines at debug level.
func WithLogger(logger *logrus.Entry) Option {
	return func(n *Normalizer) {
		n.logger = logger
	}
}

// New returns a Normalizer using DefaultMarkers unless overridden.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{markers: DefaultMarkers}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var std = New()

// Normalize rewrites raw with the default Normalizer.
func Normalize(raw string) string {
	return std.Normalize(raw)
}

// Parse builds the outline for raw with the default Normalizer.
func Parse(raw string) Outline {
	return std.Parse(raw)
}

// Normalize returns the normalized text for raw.
func (n *Normalizer) Normalize(raw string) string {
	return n.Parse(raw).String()
}

// Parse classifies every line of raw and builds the outline. Lines that are
// neither headers nor timestamped entries are dropped.
func (n *Normalizer) Parse(raw string) Outline {
	var out Outline
	st := stateNormal

	for bi, block := range Segment(Preclean(raw, n.markers)) {
		long := HasLongTimestamp(block)

		for _, line := range block {
			switch Classify(line) {
			case KindBlank:
				if st == stateAfterHeader {
					continue
				}
				out.separate()

			case KindHeader:
				out.separate()
				text := titlecase.String(line)
				out.Lines = append(out.Lines, Line{Kind: KindHeader, Text: text, Title: text})
				st = stateAfterHeader

			case KindEntry:
				tok, _ := FindTimestamp(line)
				ts := FormatTimestamp(tok.Raw, long)
				title := titlecase.String(EntryContent(line, tok))
				out.Lines = append(out.Lines, Line{
					Kind:      KindEntry,
					Text:      fmt.Sprintf("%s - %s", ts, title),
					Timestamp: ts,
					Title:     title,
				})
				st = stateNormal

			default:
				if n.logger != nil {
					n.logger.WithField("block", bi).WithField("line", line).Debug("Dropped line without header or timestamp")
				}
				out.Dropped++
				st = stateNormal
			}
		}
	}

	out.trim()
	return out
}
