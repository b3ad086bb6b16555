package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tmoapi/internal/api"
)

func TestStorage_CRUD(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profiles.yaml")
	storage := NewStorageWithPath(path)

	t.Run("missing file is an empty store", func(t *testing.T) {
		config, err := storage.Load()
		require.NoError(t, err)
		assert.Empty(t, config.Profiles)
	})

	t.Run("put creates the file", func(t *testing.T) {
		err := storage.Put(Profile{Name: "prod", Token: "abc", Database: "Fund A", Environment: "us", Timeout: 45})
		require.NoError(t, err)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("get returns stored values", func(t *testing.T) {
		p, err := storage.Get("prod")
		require.NoError(t, err)
		assert.Equal(t, "abc", p.Token)
		assert.Equal(t, "Fund A", p.Database)
		assert.Equal(t, 45, p.Timeout.Int())
	})

	t.Run("put replaces in place", func(t *testing.T) {
		require.NoError(t, storage.Put(Profile{Name: "staging", Token: "t2", Database: "Fund B"}))
		require.NoError(t, storage.Put(Profile{Name: "prod", Token: "new", Database: "Fund A"}))

		config, err := storage.Load()
		require.NoError(t, err)
		require.Len(t, config.Profiles, 2)
		assert.Equal(t, "prod", config.Profiles[0].Name)
		assert.Equal(t, "new", config.Profiles[0].Token)
	})

	t.Run("put rejects invalid names", func(t *testing.T) {
		err := storage.Put(Profile{Name: "-bad"})
		require.Error(t, err)
		assert.True(t, api.IsValidation(err))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, storage.Delete("staging"))
		config, err := storage.Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"prod"}, config.Names())
	})

	t.Run("delete missing profile", func(t *testing.T) {
		err := storage.Delete("staging")
		var notFound *NotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, []string{"prod"}, notFound.Available)
		assert.True(t, api.IsValidation(err))
	})
}

func TestStorage_LoadFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	content := `profiles:
  - name: production
    token: abc
    database: Fund A
    environment: us
    timeout: 45
  - name: no-timeout
    token: def
    database: Fund B
  - name: bad-timeout
    token: ghi
    database: Fund C
    timeout: soon
  - name: negative-timeout
    token: jkl
    database: Fund D
    timeout: -5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	config, err := NewStorageWithPath(path).Load()
	require.NoError(t, err)
	require.Len(t, config.Profiles, 4)

	tests := []struct {
		name    string
		timeout int
	}{
		{"production", 45},
		{"no-timeout", DefaultTimeout},
		{"bad-timeout", DefaultTimeout},
		{"negative-timeout", DefaultTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := config.Get(tt.name)
			require.NotNil(t, p)
			assert.Equal(t, tt.timeout, p.Timeout.Int())
		})
	}
}

func TestStorage_LoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles: [unclosed"), 0600))

	_, err := NewStorageWithPath(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse profiles file")
}

func TestStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	storage := NewStorageWithPath(path)

	want := &Config{Profiles: []Profile{
		{Name: "a", Token: "t1", Database: "d1", Environment: "canada", Timeout: 10},
		{Name: "b", Token: "t2", Database: "d2"},
	}}
	require.NoError(t, storage.Save(want))

	got, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStorage_Location(t *testing.T) {
	assert.Equal(t, "/tmp/x/profiles.yaml", NewStorageWithPath("/tmp/x/profiles.yaml").Location())
}
