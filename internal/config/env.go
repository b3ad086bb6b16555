package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"tmoapi/pkg/logging"
)

// EnvAccessor reads environment variables.
type EnvAccessor interface {
	Getenv(key string) string
}

// MapEnv is an EnvAccessor backed by a map.
type MapEnv map[string]string

// Getenv implements EnvAccessor.
func (m MapEnv) Getenv(key string) string {
	return m[key]
}

// layeredEnv prefers the process environment and falls back to values
// read from a dotenv file.
type layeredEnv struct {
	lookup func(string) (string, bool)
	file   map[string]string
}

// Getenv implements EnvAccessor. A variable set to the empty string in the
// process environment counts as unset.
func (l *layeredEnv) Getenv(key string) string {
	if v, ok := l.lookup(key); ok && v != "" {
		return v
	}
	return l.file[key]
}

// OSEnv returns the process environment layered over the given dotenv files.
// Files that do not exist are skipped.
func OSEnv(dotenvFiles ...string) (EnvAccessor, error) {
	file := map[string]string{}
	for _, path := range dotenvFiles {
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		logging.Debug("Config", "Loaded %d variable(s) from %s", len(values), path)
		for k, v := range values {
			if _, seen := file[k]; !seen {
				file[k] = v
			}
		}
	}
	return &layeredEnv{lookup: os.LookupEnv, file: file}, nil
}
