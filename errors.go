package sampleprep

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
