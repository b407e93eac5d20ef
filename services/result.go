package services

import "errors"

var (
	// ErrEmptyResponse means the service answered but without the data we read.
	ErrEmptyResponse = errors.New("empty response")
	// ErrNoText means text detection found nothing usable in the image.
	ErrNoText = errors.New("no text detected")
)

// Result is the outcome of one enrichment call. Value is always usable: on
// failure it holds the sentinel default and Err says why the call fell back.
type Result[T any] struct {
	Value T
	Err   error
}

func success[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func fallback[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Err: err}
}

// OK reports whether the value came from the service rather than a default.
func (r Result[T]) OK() bool {
	return r.Err == nil
}
