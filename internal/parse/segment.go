// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import "strings"

// Block is the contiguous run of lines describing one attribute, from its
// marker line up to (not including) the next marker.
type Block struct {
	// Section is the numeric section label from the marker line, e.g. "2.16".
	Section string

	// Name is the attribute name from the marker line. Used as the display
	// name fallback when the ldapDisplayName field is absent.
	Name string

	// Lines holds the block's body lines, marker line excluded.
	Lines []string
}

// Segment splits document text into per-attribute blocks. Text before the
// first marker is discarded; a document with no markers (a cover page or
// index) yields no blocks.
func Segment(text string) []Block {
	var blocks []Block
	for _, line := range strings.Split(text, "\n") {
		if m := markerPattern.FindStringSubmatch(trimLead(line)); m != nil {
			blocks = append(blocks, Block{
				Section: m[1],
				Name:    strings.TrimSpace(m[2]),
			})
			continue
		}
		if len(blocks) > 0 {
			b := &blocks[len(blocks)-1]
			b.Lines = append(b.Lines, line)
		}
	}
	return blocks
}
