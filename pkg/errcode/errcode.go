package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Prep errors
	PrepInputNotFoundError
	PrepEmptyInputError
	PrepMissingColumnsError
	PrepReadRowError
	PrepWriteFileError
	PrepBadDelimiterError
)
