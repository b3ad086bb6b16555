package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tmoapi/internal/api"
	"tmoapi/internal/config"
	"tmoapi/internal/render"
)

func TestCommandFlags_ToExecutorOptions_ValidatesFormat(t *testing.T) {
	tests := []struct {
		name         string
		outputFormat string
		want         render.Format
		wantErr      bool
	}{
		{name: "valid text format", outputFormat: "text", want: render.FormatText},
		{name: "valid json format", outputFormat: "json", want: render.FormatJSON},
		{name: "table is not supported", outputFormat: "table", wantErr: true},
		{name: "case sensitive", outputFormat: "JSON", wantErr: true},
		{name: "empty format returns error", outputFormat: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := &CommandFlags{OutputFormat: tt.outputFormat, Profile: "prod", Token: "t"}
			opts, err := flags.ToExecutorOptions()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported output format")
				assert.True(t, api.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, opts.Format)
			assert.Equal(t, "prod", opts.Profile)
			assert.Equal(t, "t", opts.Overrides.Token)
		})
	}
}

func TestRegisterCommonFlags(t *testing.T) {
	var flags CommandFlags
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	RegisterCommonFlags(cmd, &flags, "/tmp/profiles.yaml")

	cmd.SetArgs([]string{"-P", "prod", "--token", "abc", "--environment", "canada", "-o", "json", "-q"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "prod", flags.Profile)
	assert.Equal(t, "json", flags.OutputFormat)
	assert.True(t, flags.Quiet)
	assert.False(t, flags.Debug)
	assert.Equal(t, "/tmp/profiles.yaml", flags.ConfigPath)
	assert.Equal(t, config.Overrides{Token: "abc", Environment: "canada"}, flags.Overrides())
}

func TestRegisterCommonFlags_Defaults(t *testing.T) {
	var flags CommandFlags
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	RegisterCommonFlags(cmd, &flags, "/tmp/profiles.yaml")
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, config.DemoProfile, flags.Profile)
	assert.Equal(t, string(OutputFormatText), flags.OutputFormat)
	assert.Equal(t, config.Overrides{}, flags.Overrides())
}

func TestRegisterDateFlags(t *testing.T) {
	var dates DateFlags
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	RegisterDateFlags(cmd, &dates)
	cmd.SetArgs([]string{"--start-date", "06/01/2024"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "06/01/2024", dates.StartDate)
	assert.Equal(t, "", dates.EndDate)
}

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range ValidOutputFormats {
		assert.NoError(t, ValidateOutputFormat(string(f)))
	}
	err := ValidateOutputFormat("yaml")
	require.Error(t, err)
	assert.Equal(t, `unsupported output format: "yaml" (valid: text, json)`, err.Error())
}
