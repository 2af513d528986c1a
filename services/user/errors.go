package user

import "errors"

// Authentication failures are mapped to a fixed set of uppercase display
// strings shown verbatim to the client.
var (
	ErrInvalidCredentials = errors.New("INVALID CREDENTIALS")
	ErrUserNotFound       = errors.New("USER NOT FOUND")
	ErrEmailInUse         = errors.New("EMAIL ALREADY REGISTERED")
	ErrWeakPassword       = errors.New("PASSWORD TOO WEAK")
	ErrResetTokenInvalid  = errors.New("RESET LINK EXPIRED OR INVALID")
	ErrFederatedToken     = errors.New("SIGN IN FAILED")
)
