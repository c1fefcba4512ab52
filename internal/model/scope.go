package model

// Scope carries the caller identity resolved by the delivery layer.
type Scope struct {
	UserID   string
	Username string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)
