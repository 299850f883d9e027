package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Persistence drivers
const (
	PersistenceDriverMemory   = "memory"
	PersistenceDriverPostgres = "postgres"
	PersistenceDriverSQLite   = "sqlite"
	PersistenceDriverBlob     = "blob"
)

// Geocoding providers
const (
	GeocodingProviderNominatim = "nominatim"
	GeocodingProviderStatic    = "static"
)

// Profile event types
const (
	ProfileEventCreated = "profile.created"
	ProfileEventUpdated = "profile.updated"
	ProfileEventDeleted = "profile.deleted"
)
