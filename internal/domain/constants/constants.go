// Package constants holds shared configuration constants.
package constants

const (
	// EnvDevelop names the development environment.
	EnvDevelop = "develop"
	// EnvProduction names the production environment.
	EnvProduction = "production"

	// PubSubProviderLocal selects the local HTTP push publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
