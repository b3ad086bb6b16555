package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tmoapi/internal/render"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"prod", false},
		{"Fund_A", false},
		{"us.east-1", false},
		{"a", false},
		{"", true},
		{"-prod", true},
		{"has space", true},
		{strings.Repeat("a", 64), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "", MaskToken(""))
	assert.Equal(t, "****", MaskToken("TMO"))
	assert.Equal(t, "****", MaskToken("abcd"))
	assert.Equal(t, "****6789", MaskToken("123456789"))
}

func TestConfig_Names(t *testing.T) {
	c := &Config{}
	c.AddOrUpdate(Profile{Name: "b"})
	c.AddOrUpdate(Profile{Name: "a"})
	c.AddOrUpdate(Profile{Name: "b", Token: "x"})

	assert.Equal(t, []string{"a", "b"}, c.Names())
	assert.Len(t, c.Profiles, 2)
	assert.True(t, c.Has("a"))
	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("a"))
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		want      string
	}{
		{
			name:      "with profiles",
			available: []string{"a", "b"},
			want:      "Profile 'missing' not found in /home/u/profiles.yaml. Available profiles: a, b. Run 'tmoapi init' to create the config file.",
		},
		{
			name: "empty store",
			want: "Profile 'missing' not found in /home/u/profiles.yaml. Available profiles: none. Run 'tmoapi init' to create the config file.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &NotFoundError{Name: "missing", Location: "/home/u/profiles.yaml", Available: tt.available}
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestProfile_RenderFields(t *testing.T) {
	p := Profile{Name: "prod", Token: "secret-token", Database: "Fund A", Environment: "us"}
	out := render.Render(p.RenderFields(), render.FormatText)

	assert.Contains(t, out, "Token: ****oken")
	assert.NotContains(t, out, "secret-token")
	assert.Contains(t, out, "Timeout: 30")
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(Profile{Name: "a", Token: "t"})

	config, err := store.Load()
	require.NoError(t, err)
	config.Profiles[0].Token = "mutated"

	p, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "t", p.Token)

	_, err = store.Get("b")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "memory", notFound.Location)
}
