package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"tmoapi/internal/cli"
	"tmoapi/internal/client"
	"tmoapi/internal/config"
	"tmoapi/internal/daterange"
	"tmoapi/internal/render"
)

type fakePrompter struct {
	answers []string
	asked   []string
	closed  bool
	err     error
}

func (f *fakePrompter) next(label, def string) (string, error) {
	f.asked = append(f.asked, label)
	if f.err != nil {
		return "", f.err
	}
	if len(f.answers) == 0 {
		return def, nil
	}
	a := f.answers[0]
	f.answers = f.answers[1:]
	if a == "" {
		return def, nil
	}
	return a, nil
}

func (f *fakePrompter) Ask(label, def string) (string, error)       { return f.next(label, def) }
func (f *fakePrompter) AskSecret(label, def string) (string, error) { return f.next(label, def) }
func (f *fakePrompter) Close() error {
	f.closed = true
	return nil
}

type fakeFetcher struct {
	value    render.Value
	err      error
	settings *config.Settings
	window   *daterange.Window
	ua       string
	resource string
}

func (f *fakeFetcher) List(_ context.Context, r client.Resource) (render.Value, error) {
	f.resource = r.Name
	return f.value, f.err
}

func (f *fakeFetcher) ListRange(_ context.Context, r client.Resource, w daterange.Window) (render.Value, error) {
	f.resource = r.Name
	f.window = &w
	return f.value, f.err
}

type testEnv struct {
	opts       *rootOptions
	configPath string
	fetcher    *fakeFetcher
	prompter   *fakePrompter
	stdin      *strings.Reader
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv(config.EnvToken, "")
	t.Setenv(config.EnvDatabase, "")
	t.Setenv(config.EnvUserAgent, "")

	env := &testEnv{
		configPath: filepath.Join(t.TempDir(), "profiles.yaml"),
		fetcher:    &fakeFetcher{value: render.Sequence{}},
		prompter:   &fakePrompter{},
		stdin:      strings.NewReader(""),
	}
	env.opts = &rootOptions{
		stdin:       env.stdin,
		interactive: func() bool { return false },
		newPrompter: func() (cli.Prompter, error) { return env.prompter, nil },
		fetcherFactory: func(s *config.Settings, ua string) cli.Fetcher {
			env.fetcher.settings = s
			env.fetcher.ua = ua
			return env.fetcher
		},
	}
	return env
}

// run executes a fresh root command and returns stdout, stderr and the error.
func (e *testEnv) run(args ...string) (string, string, error) {
	root := newRootCmd(e.opts)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(args, "--config-path", e.configPath))
	err := root.Execute()
	return out.String(), errOut.String(), err
}
