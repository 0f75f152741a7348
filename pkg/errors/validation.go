package errors

import (
	"io/fs"
	"os"
)

// ValidateLevel rejects negative level numbers.
func ValidateLevel(level int) error {
	if level < 0 {
		return New(ErrCodeInvalidLevel, "level must be >= 0, got %d", level)
	}
	return nil
}

// ValidateInputFile checks that path names an existing regular file.
//
// An empty path is INVALID_INPUT, a missing file is FILE_NOT_FOUND, and a
// directory is INVALID_INPUT. Other stat failures are wrapped as
// INVALID_INPUT with the underlying cause.
func ValidateInputFile(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "input path cannot be empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Wrap(ErrCodeFileNotFound, err, "input file %s", path)
		}
		return Wrap(ErrCodeInvalidInput, err, "input file %s", path)
	}
	if info.Mode()&fs.ModeType != 0 {
		return New(ErrCodeInvalidInput, "input %s is not a regular file", path)
	}
	return nil
}
