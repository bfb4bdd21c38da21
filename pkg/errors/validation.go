package errors

import (
	"os"
	"strings"
	"unicode"
)

// Puzzle calendar bounds.
const (
	FirstYear = 2015
	LastYear  = 2100
	FirstDay  = 1
	LastDay   = 25
)

// ValidateYear checks that year is a plausible event year.
func ValidateYear(year int) error {
	if year < FirstYear || year > LastYear {
		return New(ErrCodeInvalidYear, "year %d out of range (%d-%d)", year, FirstYear, LastYear)
	}
	return nil
}

// ValidateDay checks that day is a puzzle day of the calendar.
func ValidateDay(day int) error {
	if day < FirstDay || day > LastDay {
		return New(ErrCodeInvalidDay, "day %d out of range (%d-%d)", day, FirstDay, LastDay)
	}
	return nil
}

// ValidateInputPath validates a puzzle input path and checks that it names
// a regular file. The special path "-" stands for standard input and is
// always accepted.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must exist and must not be a directory
func ValidateInputPath(path string) error {
	if path == "-" {
		return nil
	}
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidInput, "input path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "input path contains invalid characters")
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Wrap(ErrCodeFileNotFound, err, "input %s", path)
		}
		return Wrap(ErrCodeInvalidInput, err, "input %s", path)
	}
	if info.IsDir() {
		return New(ErrCodeInvalidInput, "input %s is a directory", path)
	}
	return nil
}
