package models

import "errors"

// Validation errors. Callers wrap them with details and match with errors.Is.
var (
	ErrInvalidEvent       = errors.New("invalid event")
	ErrInvalidTransport   = errors.New("invalid transport detail")
	ErrInvalidMealOption  = errors.New("invalid meal option")
	ErrInvalidExpense     = errors.New("invalid expense")
	ErrInvalidReservation = errors.New("invalid reservation")
	ErrInvalidPackingItem = errors.New("invalid packing item")
	ErrDayOutOfRange      = errors.New("day index out of range")
)
