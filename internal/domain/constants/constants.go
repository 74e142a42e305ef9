// Package constants holds shared identifier values used across layers.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

// Pub/Sub provider names accepted by the pubsub configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Reward event types carried on the event bus.
const (
	EventRewardIssued  = "reward.issued"
	EventRewardClaimed = "reward.claimed"
)
