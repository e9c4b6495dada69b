package utils

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidSession  = errors.New("invalid session")
	ErrSessionTooLarge = errors.New("session cookie exceeds browser size limit")
	ErrAssistantLimit  = errors.New("assistant rate limit exceeded")
	ErrAssistantFailed = errors.New("assistant service error")
)
