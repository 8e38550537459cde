package checkout

import "errors"

var (
	// ErrNoDraft means no usable draft exists for the session. Missing,
	// expired and malformed drafts all collapse into this one condition:
	// the user is sent back to seat selection.
	ErrNoDraft = errors.New("no checkout draft for session")

	// ErrPaymentMethodRequired is returned when submit is attempted
	// without choosing a payment method.
	ErrPaymentMethodRequired = errors.New("payment method is required")

	// ErrTermsNotAccepted is returned when submit is attempted without
	// accepting the terms and conditions.
	ErrTermsNotAccepted = errors.New("terms and conditions must be accepted")

	// ErrSubmitInProgress is returned when a second submit arrives while
	// an earlier one for the same session is still in flight.
	ErrSubmitInProgress = errors.New("a submission is already in progress")
)
