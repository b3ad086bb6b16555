package profile

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"tmoapi/internal/api"
	"tmoapi/internal/render"
)

// DefaultTimeout is the request timeout in seconds used when a profile
// does not set a usable one.
const DefaultTimeout = 30

// maxNameLength is the maximum allowed length for profile names.
const maxNameLength = 63

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// Seconds is a timeout in whole seconds. Decoding never fails: values that
// are missing, unparsable or not positive become DefaultTimeout.
type Seconds int

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Seconds) UnmarshalYAML(node *yaml.Node) error {
	*s = DefaultTimeout
	if node.Kind != yaml.ScalarNode {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(node.Value))
	if err != nil || n <= 0 {
		return nil
	}
	*s = Seconds(n)
	return nil
}

// Int returns the timeout as an int, applying the default to zero values.
func (s Seconds) Int() int {
	if s <= 0 {
		return DefaultTimeout
	}
	return int(s)
}

// Profile is one named set of connection settings.
type Profile struct {
	Name        string  `yaml:"name"`
	Token       string  `yaml:"token"`
	Database    string  `yaml:"database"`
	Environment string  `yaml:"environment,omitempty"`
	Timeout     Seconds `yaml:"timeout,omitempty"`
}

// RenderFields implements render.Renderable. The token is masked.
func (p Profile) RenderFields() *render.Mapping {
	return render.NewMapping().
		Set("Name", render.Str(p.Name)).
		Set("Token", render.Str(MaskToken(p.Token))).
		Set("Database", render.Str(p.Database)).
		Set("Environment", render.Str(p.Environment)).
		Set("Timeout", render.Scalar{V: p.Timeout.Int()})
}

// Config is the root structure of the profiles file.
type Config struct {
	Profiles []Profile `yaml:"profiles,omitempty"`
}

// Get returns the profile with the given name, or nil if not found.
func (c *Config) Get(name string) *Profile {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i]
		}
	}
	return nil
}

// Has returns true if a profile with the given name exists.
func (c *Config) Has(name string) bool {
	return c.Get(name) != nil
}

// AddOrUpdate adds a new profile or replaces the one with the same name.
func (c *Config) AddOrUpdate(p Profile) {
	for i := range c.Profiles {
		if c.Profiles[i].Name == p.Name {
			c.Profiles[i] = p
			return
		}
	}
	c.Profiles = append(c.Profiles, p)
}

// Remove deletes the named profile and reports whether it existed.
func (c *Config) Remove(name string) bool {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			c.Profiles = append(c.Profiles[:i], c.Profiles[i+1:]...)
			return true
		}
	}
	return false
}

// Names returns the profile names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Profiles))
	for _, p := range c.Profiles {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// ValidateName checks that name can be used as a profile name.
func ValidateName(name string) error {
	if name == "" {
		return api.NewValidationError("profile name cannot be empty")
	}
	if len(name) > maxNameLength {
		return api.Validationf("profile name cannot exceed %d characters", maxNameLength)
	}
	if !namePattern.MatchString(name) {
		return api.NewValidationError("profile name must start with a letter or digit and contain only letters, digits, '.', '_' and '-'")
	}
	return nil
}

// MaskToken hides all but the last four characters of a token.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	r := []rune(token)
	if len(r) <= 4 {
		return "****"
	}
	return "****" + string(r[len(r)-4:])
}

// NotFoundError is returned when a named profile does not exist in a store.
type NotFoundError struct {
	Name      string
	Location  string
	Available []string
}

func (e *NotFoundError) Error() string {
	available := "none"
	if len(e.Available) > 0 {
		available = strings.Join(e.Available, ", ")
	}
	return fmt.Sprintf("Profile '%s' not found in %s. Available profiles: %s. Run 'tmoapi init' to create the config file.",
		e.Name, e.Location, available)
}

// Unwrap exposes the error as a validation error.
func (e *NotFoundError) Unwrap() error {
	return api.NewValidationError(e.Error())
}
