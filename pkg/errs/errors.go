package errs

import "errors"

var (
	ErrInternalServer         = errors.New("Internal server error")
	ErrEmailAlreadyUsed       = errors.New("Email has already been used")
	ErrInvalidCredentials     = errors.New("Email or password is incorrect")
	ErrAccountNotFound        = errors.New("Account not found")
	ErrNotAuthenticated       = errors.New("You need to sign up or log in first")
	ErrInvalidOwnerPassphrase = errors.New("Owner passphrase is incorrect")
	ErrProductNotFound        = errors.New("Product not found")
	ErrOutOfStock             = errors.New("Product is out of stock")
	ErrEmptyCart              = errors.New("Your cart is empty")
	ErrPaymentRejected        = errors.New("Payment was rejected")
)

// IsUserFacing reports whether err belongs to the storefront error taxonomy
// and should be shown to the shopper as a blocking notice instead of being
// logged as an internal failure.
func IsUserFacing(err error) bool {
	for _, e := range []error{
		ErrEmailAlreadyUsed,
		ErrInvalidCredentials,
		ErrAccountNotFound,
		ErrNotAuthenticated,
		ErrInvalidOwnerPassphrase,
		ErrProductNotFound,
		ErrOutOfStock,
		ErrEmptyCart,
		ErrPaymentRejected,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
