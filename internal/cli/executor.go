package cli

import (
	"context"
	"fmt"
	"io"

	"tmoapi/internal/client"
	"tmoapi/internal/config"
	"tmoapi/internal/daterange"
	"tmoapi/internal/render"
)

// ExecutorOptions configures how an Executor resolves settings and prints.
type ExecutorOptions struct {
	// Format is the output format
	Format render.Format
	// Quiet suppresses the progress spinner
	Quiet bool
	// Profile is the selected profile name
	Profile string
	// Overrides are the command-line connection overrides
	Overrides config.Overrides
	// UserAgent overrides the User-Agent header
	UserAgent string
}

// Fetcher retrieves resources. *client.Client satisfies it.
type Fetcher interface {
	List(ctx context.Context, r client.Resource) (render.Value, error)
	ListRange(ctx context.Context, r client.Resource, w daterange.Window) (render.Value, error)
}

// FetcherFactory builds a Fetcher for resolved settings.
type FetcherFactory func(s *config.Settings, userAgent string) Fetcher

// DefaultFetcherFactory builds an HTTP client.
func DefaultFetcherFactory(s *config.Settings, userAgent string) Fetcher {
	return client.New(s, client.WithUserAgent(userAgent))
}

// Executor runs resource commands: resolve settings, fetch, render.
type Executor struct {
	options    ExecutorOptions
	resolver   *config.Resolver
	normalizer *daterange.Normalizer
	newFetcher FetcherFactory
	progress   *Progress
	out        io.Writer
}

// NewExecutor creates an Executor writing rendered output to out.
func NewExecutor(options ExecutorOptions, resolver *config.Resolver, out io.Writer) *Executor {
	return &Executor{
		options:    options,
		resolver:   resolver,
		normalizer: daterange.NewNormalizer(),
		newFetcher: DefaultFetcherFactory,
		progress:   NewProgress(options.Quiet),
		out:        out,
	}
}

// WithFetcherFactory replaces how the executor builds its transport.
func (e *Executor) WithFetcherFactory(f FetcherFactory) *Executor {
	e.newFetcher = f
	return e
}

// WithNormalizer replaces the date normalizer, mostly to pin "today".
func (e *Executor) WithNormalizer(n *daterange.Normalizer) *Executor {
	e.normalizer = n
	return e
}

// Settings resolves the settings for the configured profile and overrides.
func (e *Executor) Settings() (*config.Settings, error) {
	return e.resolver.Resolve(e.options.Profile, e.options.Overrides)
}

// Execute fetches a resource and prints it. Dates are only consulted for
// dated resources.
func (e *Executor) Execute(ctx context.Context, r client.Resource, dates DateFlags) error {
	settings, err := e.Settings()
	if err != nil {
		return err
	}

	var window daterange.Window
	if r.Dated {
		window, err = e.normalizer.Normalize(dates.StartDate, dates.EndDate)
		if err != nil {
			return err
		}
	}

	fetcher := e.newFetcher(settings, e.resolver.UserAgent(e.options.UserAgent))

	var result render.Value
	err = e.progress.Run(fmt.Sprintf("Fetching %s...", r.Name), func() error {
		var ferr error
		if r.Dated {
			result, ferr = fetcher.ListRange(ctx, r, window)
		} else {
			result, ferr = fetcher.List(ctx, r)
		}
		return ferr
	})
	if err != nil {
		return err
	}

	return e.Print(result)
}

// Print renders a value in the configured format.
func (e *Executor) Print(v render.Value) error {
	_, err := fmt.Fprintln(e.out, render.Render(v, e.options.Format))
	return err
}
