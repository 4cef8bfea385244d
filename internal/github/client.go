package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/go-github/v81/github"
	"golang.org/x/oauth2"
)

// Client bundles the REST client with the http.Client it rides on, so
// callers can share the transport (and its verbose logging) for raw blob
// downloads.
type Client struct {
	Client *github.Client
	HTTP   *http.Client
}

type options struct {
	verbose bool
	logW    io.Writer
}

type Option func(*options)

// WithVerbose logs one line per API request and response to writer. Logs go
// to stderr by default so stdout formats like ndjson stay machine-readable.
func WithVerbose(enabled bool, writer io.Writer) Option {
	return func(o *options) {
		o.verbose = enabled
		o.logW = writer
	}
}

type verboseTransport struct {
	next http.RoundTripper
	w    io.Writer
}

func (t *verboseTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.w != nil {
		fmt.Fprintf(t.w, "[verbose] github api: %s %s\n", req.Method, req.URL)
	}
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	elapsed := time.Since(start).Truncate(time.Millisecond)
	switch {
	case t.w == nil:
	case err != nil:
		fmt.Fprintf(t.w, "[verbose] github api: error after %s: %v\n", elapsed, err)
	default:
		fmt.Fprintf(t.w, "[verbose] github api: %d %s (%s)\n", resp.StatusCode, http.StatusText(resp.StatusCode), elapsed)
	}
	return resp, err
}

// NewClient builds a REST client. An empty token means unauthenticated
// access, which GitHub serves with a much lower rate limit.
func NewClient(ctx context.Context, token string, opts ...Option) (*Client, error) {
	if ctx == nil {
		return nil, fmt.Errorf("github client: ctx is nil")
	}

	var o options
	for _, apply := range opts {
		if apply != nil {
			apply(&o)
		}
	}
	if o.verbose && o.logW == nil {
		o.logW = os.Stderr
	}

	transport := http.DefaultTransport
	if o.verbose {
		transport = &verboseTransport{next: transport, w: o.logW}
	}
	if token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   transport,
		}
	}
	hc := &http.Client{Transport: transport}
	return &Client{Client: github.NewClient(hc), HTTP: hc}, nil
}
