package model

// Environment names accepted in environment.name.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
	EnvironmentAddon       = "addon"
)

// Version is reported by the status endpoint.
const Version = "1.0.0"
