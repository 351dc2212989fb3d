// Package outline turns pasted chapter listings into a normalized outline of
// title-cased headers and uniformly padded timestamp entries.
package outline

import "strings"

// Kind classifies a precleaned input line.
type Kind int

const (
	KindBlank Kind = iota
	KindHeader
	KindEntry
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindHeader:
		return "header"
	case KindEntry:
		return "entry"
	default:
		return "other"
	}
}

// MarshalText lets Kind appear by name in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Line is one line of a normalized outline.
type Line struct {
	Kind      Kind   `json:"kind"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp,omitempty"`
	Title     string `json:"title,omitempty"`
}

// Outline is the result of normalizing one listing.
type Outline struct {
	Lines []Line `json:"lines"`

	// Dropped counts input lines that were neither headers nor entries.
	Dropped int `json:"dropped"`
}

// String joins the outline lines and trims surrounding whitespace.
func (o Outline) String() string {
	texts := make([]string, len(o.Lines))
	for i, l := range o.Lines {
		texts[i] = l.Text
	}
	return strings.TrimSpace(strings.Join(texts, "\n"))
}

// Headers returns the header lines in order.
func (o Outline) Headers() []Line {
	return o.filter(KindHeader)
}

// Entries returns the timestamped entry lines in order.
func (o Outline) Entries() []Line {
	return o.filter(KindEntry)
}

func (o Outline) filter(k Kind) []Line {
	var out []Line
	for _, l := range o.Lines {
		if l.Kind == k {
			out = append(out, l)
		}
	}
	return out
}

func (o *Outline) lastIsBlank() bool {
	return len(o.Lines) > 0 && o.Lines[len(o.Lines)-1].Text == ""
}

// separate appends a blank line unless the outline is empty or already ends
// with a blank or a header.
func (o *Outline) separate() {
	if len(o.Lines) == 0 || o.lastIsBlank() {
		return
	}
	if o.Lines[len(o.Lines)-1].Kind == KindHeader {
		return
	}
	o.Lines = append(o.Lines, Line{Kind: KindBlank})
}

// trim drops blank lines at either end so Lines matches String.
func (o *Outline) trim() {
	for len(o.Lines) > 0 && o.Lines[0].Text == "" {
		o.Lines = o.Lines[1:]
	}
	for o.lastIsBlank() {
		o.Lines = o.Lines[:len(o.Lines)-1]
	}
}
