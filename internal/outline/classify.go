package outline

import "regexp"

var headerRe = regexp.MustCompile(`(?i)^(Volume|DVD)\s*\d+`)

// IsHeader reports whether line opens a Volume or DVD group.
func IsHeader(line string) bool {
	return headerRe.MatchString(line)
}

// Classify returns the kind of a precleaned line.
func Classify(line string) Kind {
	switch {
	case line == "":
		return KindBlank
	case IsHeader(line):
		return KindHeader
	}
	if _, ok := FindTimestamp(line); ok {
		return KindEntry
	}
	return KindOther
}
