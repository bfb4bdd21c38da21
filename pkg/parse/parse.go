// Package parse decodes line-oriented puzzle input into typed records.
//
// Each line is trimmed of surrounding whitespace before it is decoded.
// Decoding stops at the first failing line, which is reported as a
// [*LineError].
package parse

import (
	"encoding"
	"fmt"
	"strings"
)

// LineError reports a record that failed to decode.
type LineError struct {
	Line int    // 0-based index of the record
	Text string // trimmed record text
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("parse: record %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// TextUnmarshaler is satisfied by a pointer to T that can decode itself from
// text. It lets [Lines] allocate values of T and decode into them.
type TextUnmarshaler[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// Lines decodes every line of input into a T using its UnmarshalText method.
func Lines[T any, PT TextUnmarshaler[T]](input string) ([]T, error) {
	return LinesFunc(input, unmarshal[T, PT])
}

// LinesFunc decodes every line of input with fn.
func LinesFunc[T any](input string, fn func(string) (T, error)) ([]T, error) {
	return records(strings.Split(input, "\n"), fn)
}

// Split decodes the sep-separated records of a single line of input.
func Split[T any, PT TextUnmarshaler[T]](input, sep string) ([]T, error) {
	return records(strings.Split(strings.TrimSpace(input), sep), unmarshal[T, PT])
}

func unmarshal[T any, PT TextUnmarshaler[T]](s string) (T, error) {
	var v T
	err := PT(&v).UnmarshalText([]byte(s))
	return v, err
}

func records[T any](parts []string, fn func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		v, err := fn(p)
		if err != nil {
			return nil, &LineError{Line: i, Text: p, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}
