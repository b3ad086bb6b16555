package client

import (
	"context"
	"net/url"

	"tmoapi/internal/daterange"
	"tmoapi/internal/render"
)

// Resource describes one listable API collection.
type Resource struct {
	// Name is the CLI command name.
	Name string
	// Path is relative to the environment base URL.
	Path string
	// Short is the one-line command description.
	Short string
	// Dated resources take a date window.
	Dated bool
}

// Resources lists the collections the CLI exposes.
var Resources = []Resource{
	{Name: "pools", Path: "LSS.svc/Shares/Pools", Short: "List mortgage pools"},
	{Name: "partners", Path: "LSS.svc/Shares/Partners", Short: "List partners (investors)"},
	{Name: "certificates", Path: "LSS.svc/Shares/Certificates", Short: "List share certificates"},
	{Name: "distributions", Path: "LSS.svc/Shares/Distributions", Short: "List distributions in a date range", Dated: true},
	{Name: "history", Path: "LSS.svc/Shares/History", Short: "List share transaction history in a date range", Dated: true},
}

// Lookup returns the resource with the given name.
func Lookup(name string) (Resource, bool) {
	for _, r := range Resources {
		if r.Name == name {
			return r, true
		}
	}
	return Resource{}, false
}

// DateQuery encodes a window as the from/to query parameters.
func DateQuery(w daterange.Window) url.Values {
	q := url.Values{}
	q.Set("from", w.StartString())
	q.Set("to", w.EndString())
	return q
}

// List fetches an undated resource.
func (c *Client) List(ctx context.Context, r Resource) (render.Value, error) {
	return c.Get(ctx, r.Path, nil)
}

// ListRange fetches a dated resource for the window.
func (c *Client) ListRange(ctx context.Context, r Resource, w daterange.Window) (render.Value, error) {
	return c.Get(ctx, r.Path, DateQuery(w))
}
