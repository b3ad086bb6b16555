package config

const (
	// DemoProfile is the profile name that works without a profiles file.
	DemoProfile = "demo"

	// DemoToken and DemoDatabase are the public sandbox credentials.
	DemoToken    = "TMO"
	DemoDatabase = "API Sandbox"

	// DefaultTimeout is the request timeout in seconds.
	DefaultTimeout = 30
)

// Environment variables consulted by the resolver.
const (
	EnvToken     = "TMO_API_TOKEN"
	EnvDatabase  = "TMO_DATABASE"
	EnvUserAgent = "TMO_USER_AGENT"
)

// demoSettings returns the seed used for the demo profile.
func demoSettings() seed {
	return seed{
		token:       DemoToken,
		database:    DemoDatabase,
		environment: string(US),
		timeout:     DefaultTimeout,
	}
}
