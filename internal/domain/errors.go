package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrEmptyPrompt  = errors.New("prompt is required")
	ErrUnknownStyle = errors.New("unsupported style")
	ErrUnknownSize  = errors.New("unsupported size")
	ErrBadResponse  = errors.New("malformed response from image backend")
)
