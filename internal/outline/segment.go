package outline

import (
	"regexp"
	"strings"
)

// DefaultMarkers are column headings that show up when a listing is copied
// out of a product page table.
var DefaultMarkers = []string{"CHAPTER TITLE", "START TIME"}

var newlineRe = regexp.MustCompile(`\r?\n`)

// Preclean splits raw on \n or \r\n, removes every occurrence of each marker
// and trims each line.
func Preclean(raw string, markers []string) []string {
	lines := newlineRe.Split(raw, -1)
	for i, line := range lines {
		for _, m := range markers {
			if m != "" {
				line = strings.ReplaceAll(line, m, "")
			}
		}
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// Block is a run of non-blank lines, or a single empty line marking a
// separator.
type Block []string

// Segment groups precleaned lines into blocks. Every empty line closes the
// current block, even when it holds nothing, and adds a separator block.
func Segment(lines []string) []Block {
	var blocks []Block
	var cur Block
	for _, line := range lines {
		if line == "" {
			blocks = append(blocks, cur, Block{""})
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}
