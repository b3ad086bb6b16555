package config

import (
	"strings"

	"tmoapi/pkg/logging"
)

// Environment is a TMO hosting region.
type Environment string

const (
	US        Environment = "US"
	Canada    Environment = "CANADA"
	Australia Environment = "AUSTRALIA"
)

var environmentAliases = map[string]Environment{
	"us":        US,
	"usa":       US,
	"can":       Canada,
	"canada":    Canada,
	"aus":       Australia,
	"australia": Australia,
}

var baseURLs = map[Environment]string{
	US:        "https://api.themortgageoffice.com",
	Canada:    "https://api-ca.themortgageoffice.com",
	Australia: "https://api-aus.themortgageoffice.com",
}

// ParseEnvironment maps a user supplied name onto an Environment.
// Matching is case-insensitive. Unknown names resolve to US; the fallback
// is logged at debug level.
func ParseEnvironment(name string) Environment {
	key := strings.ToLower(strings.TrimSpace(name))
	if env, ok := environmentAliases[key]; ok {
		return env
	}
	if key != "" {
		logging.Debug("Config", "Unknown environment %q, falling back to %s", name, US)
	}
	return US
}

// BaseURL returns the API root for the environment.
func (e Environment) BaseURL() string {
	if u, ok := baseURLs[e]; ok {
		return u
	}
	return baseURLs[US]
}

func (e Environment) String() string {
	return string(e)
}

// IsKnownEnvironment reports whether name is in the alias table.
func IsKnownEnvironment(name string) bool {
	_, ok := environmentAliases[strings.ToLower(strings.TrimSpace(name))]
	return ok
}
