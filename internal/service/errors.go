package service

import "errors"

var (
	// ErrInvalidCredentials is returned when the login username/password pair is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSession is returned when a session token is unknown or expired.
	ErrInvalidSession = errors.New("invalid or expired session")

	// ErrInvalidDateRange is returned when a filter range is half-open or inverted.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidEmployee is returned when the employee filter is malformed.
	ErrInvalidEmployee = errors.New("invalid employee filter")

	// ErrInvalidReportID is returned when a report ID is empty.
	ErrInvalidReportID = errors.New("invalid report id")
)
