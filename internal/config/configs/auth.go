package configs

// Auth configures how callers are identified. The identity provider in
// front of the service puts the authenticated user id in UserHeader; roles
// are always looked up in storage.
type Auth struct {
	UserHeader string `env:"USER_HEADER" envDefault:"X-User-ID"`
}
