package entity

import "errors"

var (
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")

	// Distinct reference-validation failures for violation creation. Both
	// wrap a rejected create, never a store fault.
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrLocationNotFound = errors.New("location not found")
)
