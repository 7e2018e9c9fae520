package utils

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidDateRange  = errors.New("end date is before start date")
	ErrInvalidBudget     = errors.New("budget must be greater than 0")
	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrInvalidPageSize   = errors.New("invalid page size parameter")
	ErrDatabaseError     = errors.New("database error")
	ErrExportFailed      = errors.New("itinerary export failed")
)
