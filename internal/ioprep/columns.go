package ioprep

import "strings"

// requiredColumns are the logical column names the input must carry.
var requiredColumns = []string{"species", "genus", "kingdom"}

// columns holds the positions of the three resolved columns in a
// data row.
type columns struct {
	species int
	genus   int
	kingdom int
}

// resolveColumns maps the required logical column names onto the
// actual header, matching case-insensitively. It fails with
// MissingColumnsError when any required name is absent. Extra
// columns are ignored.
func resolveColumns(header []string) (*columns, error) {
	lowerMap := make(map[string]int, len(header))
	for i, name := range header {
		lowerMap[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := lowerMap[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, MissingColumnsError(missing, header)
	}

	return &columns{
		species: lowerMap["species"],
		genus:   lowerMap["genus"],
		kingdom: lowerMap["kingdom"],
	}, nil
}

// field returns the value of a column in a record, treating missing
// trailing fields as empty strings.
func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
