package models

import (
	"errors"
)

var (
	ErrNoRecord            = errors.New("models: no matching record found")
	ErrInvalidCredentials  = errors.New("models: invalid credentials")
	ErrDuplicatePhone      = errors.New("models: duplicate phone number")
	ErrUserNotFound        = errors.New("models: user not found")
	ErrTireNotFound        = errors.New("tire not found")
	ErrWheelNotFound       = errors.New("wheel not found")
	ErrArticleNotFound     = errors.New("article not found")
	ErrCityNotFound        = errors.New("city not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInsufficientPoints  = errors.New("insufficient loyalty points")
	ErrCodeMismatch        = errors.New("verification code mismatch")
	ErrCodeExpired         = errors.New("verification code expired")
	ErrUpstreamUnavailable = errors.New("upstream catalog unavailable")
)
