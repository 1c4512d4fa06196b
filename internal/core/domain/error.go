package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")
	ErrMath     = errors.New("decimal arithmetic error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenDuration              = errors.New("invalid token duration format")
	ErrTokenCreation              = errors.New("error creating token")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid login or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")

	// * Business errors.
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrAmountOutOfRange      = errors.New("amount has more than two decimal places or too many digits")
	ErrInvalidItems          = errors.New("order must have items with positive quantity and price")
	ErrUnknownCurrency       = errors.New("currency is not supported")
	ErrUnknownPaymentMethod  = errors.New("payment method is not supported")
	ErrChangeNotAllowed      = errors.New("change can only be given on cash payments")
	ErrInvalidRate           = errors.New("conversion rate is not valid")
	ErrUnconvertibleCurrency = errors.New("currency has no usable conversion rate")
	ErrPaymentNotInOrder     = errors.New("payment does not belong to order")
)
