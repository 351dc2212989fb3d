package outline

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// tokenRe finds M:SS, MM:SS, H:MM:SS or a standalone three digit number.
	// The first match in a line wins.
	tokenRe = regexp.MustCompile(`\d{1,2}(?::\d{2}){1,2}|\b\d{3}\b`)

	longRe = regexp.MustCompile(`\b\d{1,2}:\d{2}:\d{2}\b`)
)

// Token is a timestamp located in a line.
type Token struct {
	Raw   string
	Index int
}

// FindTimestamp returns the first timestamp token in line.
func FindTimestamp(line string) (Token, bool) {
	loc := tokenRe.FindStringIndex(line)
	if loc == nil {
		return Token{}, false
	}
	return Token{Raw: line[loc[0]:loc[1]], Index: loc[0]}, true
}

// HasLongTimestamp reports whether any line of b carries an H:MM:SS time.
func HasLongTimestamp(b Block) bool {
	for _, line := range b {
		if longRe.MatchString(line) {
			return true
		}
	}
	return false
}

// FormatTimestamp pads a raw token. A bare three digit number is read as
// MMSS after a leading zero, so 123 becomes 01:23. Two-segment times become
// MM:SS, or 0:MM:SS when long is set. Three-segment times are returned as is.
func FormatTimestamp(raw string, long bool) string {
	if len(raw) == 3 && !strings.Contains(raw, ":") {
		padded := "0" + raw
		raw = padded[:2] + ":" + padded[2:]
	}

	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return raw
	}
	mm, ss := pad2(parts[0]), pad2(parts[1])
	if long {
		return fmt.Sprintf("0:%s:%s", mm, ss)
	}
	return mm + ":" + ss
}

func pad2(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}

var (
	// trailingDangling is the run of separator characters right before the
	// timestamp.
	trailingDangling = regexp.MustCompile(`[-–+()]*$`)

	// trailingSeparators are whitespace-delimited tokens made only of
	// separator characters, such as the "-" in "Guard Passing - (".
	trailingSeparators = regexp.MustCompile(`(\s+[-–+()]+)*\s*$`)
)

// EntryContent returns the text in front of tok with dangling separators
// removed and whitespace collapsed. Separators attached to a word, like the
// ")" in "(Gi)" or the "++" in "C++", are kept.
func EntryContent(line string, tok Token) string {
	content := trailingDangling.ReplaceAllString(line[:tok.Index], "")
	content = trailingSeparators.ReplaceAllString(content, "")
	return strings.Join(strings.Fields(content), " ")
}
