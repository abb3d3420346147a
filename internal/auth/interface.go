package auth

import "context"

// UseCase is the auth domain's behavioral contract.
type UseCase interface {
	// Login checks the cardnumber/password pair against the user
	// store and issues a signed token on success.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
}
