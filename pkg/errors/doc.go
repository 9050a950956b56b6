// Package errors provides structured error handling with error codes for simple-org.
//
// This package standardizes error handling across all services with typed error codes,
// structured error details, and automatic HTTP status code mapping.
//
// # Basic Usage
//
// Creating errors with codes:
//
//	import "github.com/tendant/simple-org/pkg/errors"
//
//	// Create a simple error
//	err := errors.New(errors.ErrCodeUserNotFound, "user not found")
//
//	// Wrap an existing error
//	err := errors.Wrap(storeErr, errors.ErrCodeTransient, "failed to read user document")
//
//	// Use convenience constructors
//	err := errors.NotFound("user", userID)
//	err := errors.ValidationFailed("role", "must be one of admin, manager, employee, ceo")
//
// Checking error codes:
//
//	if errors.IsCode(err, errors.ErrCodeUserNotFound) {
//		// handle missing user
//	}
//
// # HTTP Mapping
//
// Handlers render errors with the status produced by HTTPStatusCode, so a
// service can return one structured error and every API surface agrees on the
// response code.
package errors
