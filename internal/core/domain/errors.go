package domain

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrPropertyInUse    = errors.New("property has tenants assigned")
	ErrTenantNotFound   = errors.New("tenant not found")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidListing   = errors.New("invalid listing")
	ErrUnknownProperty  = errors.New("tenant references unknown property")

	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUserType    = errors.New("invalid user type")
	ErrForbidden          = errors.New("access forbidden")
	ErrWrongStage         = errors.New("session is not at this view yet")

	ErrPaymentDeclined  = errors.New("payment declined")
	ErrPaymentCancelled = errors.New("payment cancelled")
	ErrPaymentTimeout   = errors.New("payment timed out")
	ErrInvalidPayment   = errors.New("invalid payment details")
	ErrKeyReused        = errors.New("idempotency key reused with different payment details")
	ErrPaymentInFlight  = errors.New("payment with this idempotency key is in progress")

	ErrOwnersUnavailable   = errors.New("owner directory unavailable")
	ErrOwnersNotConfigured = errors.New("owner directory not configured")
)
