package qos

import "errors"

var (
	// ErrInvalidProfile is returned when a profile combines illegal values,
	// such as keep_last history with a non-positive depth.
	ErrInvalidProfile = errors.New("invalid qos profile")
)
