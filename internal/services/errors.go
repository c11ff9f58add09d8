package services

import "errors"

// ErrInvalidInput marks a create request missing a required form field.
var ErrInvalidInput = errors.New("invalid input")
