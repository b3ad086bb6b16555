package config

import (
	"errors"

	"tmoapi/internal/api"
	"tmoapi/internal/profile"
	"tmoapi/internal/render"
	"tmoapi/pkg/logging"
)

// Settings is the fully resolved connection configuration for one command.
// Token and Database are never empty.
type Settings struct {
	Token       string
	Database    string
	Environment Environment
	Timeout     int
	// Profile is the name of the profile that seeded the settings.
	Profile string
}

// RenderFields implements render.Renderable. The token is masked.
func (s *Settings) RenderFields() *render.Mapping {
	return render.NewMapping().
		Set("Profile", render.Str(s.Profile)).
		Set("Token", render.Str(profile.MaskToken(s.Token))).
		Set("Database", render.Str(s.Database)).
		Set("Environment", render.Str(s.Environment.String())).
		Set("BaseURL", render.Str(s.Environment.BaseURL())).
		Set("Timeout", render.Scalar{V: s.Timeout})
}

// Overrides holds values given explicitly on the command line.
// Empty fields are ignored.
type Overrides struct {
	Token       string
	Database    string
	Environment string
}

type seed struct {
	token       string
	database    string
	environment string
	timeout     int
}

// Resolver merges the profile store, command-line overrides and the
// environment into Settings.
type Resolver struct {
	store profile.Loader
	env   EnvAccessor
}

// NewResolver creates a Resolver. A nil env reads nothing.
func NewResolver(store profile.Loader, env EnvAccessor) *Resolver {
	if env == nil {
		env = MapEnv{}
	}
	return &Resolver{store: store, env: env}
}

// Resolve produces the settings for the named profile.
//
// A stored profile seeds the values; the demo profile is built in when no
// stored profile of that name exists. Non-empty overrides replace seeded
// values, then TMO_API_TOKEN and TMO_DATABASE fill whatever is still empty.
func (r *Resolver) Resolve(profileName string, overrides Overrides) (*Settings, error) {
	s, err := r.seed(profileName)
	if err != nil {
		return nil, err
	}

	if overrides.Token != "" {
		s.token = overrides.Token
	}
	if overrides.Database != "" {
		s.database = overrides.Database
	}
	if overrides.Environment != "" {
		s.environment = overrides.Environment
	}

	if s.token == "" {
		s.token = r.env.Getenv(EnvToken)
	}
	if s.database == "" {
		s.database = r.env.Getenv(EnvDatabase)
	}

	if s.token == "" {
		return nil, api.NewValidationError("Token is required. Provide via --profile, --token, " + EnvToken + " env var, or run 'tmoapi init'.")
	}
	if s.database == "" {
		return nil, api.NewValidationError("Database is required. Provide via --profile, --database, " + EnvDatabase + " env var, or run 'tmoapi init'.")
	}

	settings := &Settings{
		Token:       s.token,
		Database:    s.database,
		Environment: ParseEnvironment(s.environment),
		Timeout:     s.timeout,
		Profile:     profileName,
	}
	logging.Debug("Config", "Resolved profile %q: database=%q environment=%s timeout=%ds",
		profileName, settings.Database, settings.Environment, settings.Timeout)
	return settings, nil
}

func (r *Resolver) seed(name string) (seed, error) {
	config, err := r.store.Load()
	if err != nil {
		return seed{}, err
	}

	if p := config.Get(name); p != nil {
		return seed{
			token:       p.Token,
			database:    p.Database,
			environment: p.Environment,
			timeout:     p.Timeout.Int(),
		}, nil
	}

	if name == DemoProfile {
		logging.Debug("Config", "Using built-in demo credentials")
		return demoSettings(), nil
	}

	return seed{}, &profile.NotFoundError{
		Name:      name,
		Location:  r.store.Location(),
		Available: config.Names(),
	}
}

// UserAgent returns the User-Agent override, or TMO_USER_AGENT when none
// was given. An empty result means the client default applies.
func (r *Resolver) UserAgent(override string) string {
	if override != "" {
		return override
	}
	return r.env.Getenv(EnvUserAgent)
}

// IsProfileNotFound reports whether err is caused by an unknown profile.
func IsProfileNotFound(err error) bool {
	var notFound *profile.NotFoundError
	return errors.As(err, &notFound)
}
