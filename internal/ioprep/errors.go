package ioprep

import (
	"fmt"
	"strings"

	"github.com/gnames/gbifprep/pkg/errcode"
	"github.com/gnames/gn"
)

// InputNotFoundError creates an error for when the input file does
// not exist.
func InputNotFoundError(path string, err error) error {
	msg := `Input file not found: <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.PrepInputNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("input file not found: %w", err),
	}
}

// EmptyInputError creates an error for when the input file has no
// readable first line.
func EmptyInputError(path string) error {
	msg := `Input file appears to be empty: <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.PrepEmptyInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("input file '%s' is empty", path),
	}
}

// MissingColumnsError creates an error for when required columns are
// absent from the header.
func MissingColumnsError(missing, found []string) error {
	msg := `Input file must contain columns named
'species', 'genus', and 'kingdom' (case-insensitive).

<em>Missing:</em> %s
<em>Found:</em> %s`
	vars := []any{
		strings.Join(missing, ", "),
		strings.Join(found, ", "),
	}

	return &gn.Error{
		Code: errcode.PrepMissingColumnsError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("missing required columns: %s",
			strings.Join(missing, ", ")),
	}
}

// ReadRowError creates an error for when a data row cannot be parsed.
func ReadRowError(path string, err error) error {
	msg := `Cannot read rows from <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.PrepReadRowError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read row: %w", err),
	}
}

// WriteFileError creates an error for when an output file cannot be
// created or written.
func WriteFileError(path string, err error) error {
	msg := `Cannot write output file <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.PrepWriteFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write '%s': %w", path, err),
	}
}

// CancelledError creates an error for when the preparation run is
// cancelled.
func CancelledError(err error) error {
	msg := "Preparation run was cancelled"

	return &gn.Error{
		Code: errcode.UnknownError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("preparation cancelled: %w", err),
	}
}

// BadDelimiterError creates an error for an unknown delimiter setting.
func BadDelimiterError(value string) error {
	msg := `Unknown delimiter setting <em>%s</em>, use 'auto', 'comma' or 'tab'`
	vars := []any{value}

	return &gn.Error{
		Code: errcode.PrepBadDelimiterError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown delimiter setting '%s'", value),
	}
}
