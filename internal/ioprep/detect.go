package ioprep

import "strings"

// detectDelimiter inspects the header line of the input file and
// decides between comma- and tab-separated dialects. A line with only
// one of the two candidates selects that candidate; when both or
// neither are present the more frequent character wins, with ties
// going to tab. The line is expected to be BOM-stripped.
func detectDelimiter(line string) rune {
	hasTab := strings.Contains(line, "\t")
	hasComma := strings.Contains(line, ",")

	switch {
	case hasTab && !hasComma:
		return '\t'
	case hasComma && !hasTab:
		return ','
	default:
		if strings.Count(line, "\t") >= strings.Count(line, ",") {
			return '\t'
		}
		return ','
	}
}

// stripBOM removes a leading UTF-8 byte order mark.
func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
