// gbifprep converts a GBIF occurrence or checklist download into the
// two artifacts used by downstream name-resolution: a deduplicated list
// of taxon names for search, and a species-to-kingdom lookup table.
package main

import "github.com/gnames/gbifprep/cmd"

func main() {
	cmd.Execute()
}
