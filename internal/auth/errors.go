package auth

import "errors"

// ErrInvalidCredentials covers both the unknown cardnumber and the
// wrong password so the response never reveals which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")
