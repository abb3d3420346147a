package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the verified request identity. It is populated by the
// auth middleware; downstream code trusts it and never re-validates
// credentials.
type Scope struct {
	Cardnumber string // library card number, the user identifier
	Username   string
}
