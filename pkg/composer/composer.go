// Package composer coordinates the full pipeline from capability schema to
// generation request: load and parse the schema, seed the selection state,
// and hand composed sessions to summary renderers. It applies sensible
// defaults while remaining open to dependency injection.
package composer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	internalloader "github.com/shubham-dpworld/initializr-ui/internal/metadata/loader"
	"github.com/shubham-dpworld/initializr-ui/pkg/metadata"
	"github.com/shubham-dpworld/initializr-ui/pkg/render"
	htmlrenderer "github.com/shubham-dpworld/initializr-ui/pkg/renderers/html"
	textrenderer "github.com/shubham-dpworld/initializr-ui/pkg/renderers/text"
	"github.com/shubham-dpworld/initializr-ui/pkg/selection"
)

const defaultRendererName = "text"

// Option customises the composer configuration.
type Option func(*Composer)

// WithLoader injects a custom metadata loader.
func WithLoader(loader metadata.Loader) Option {
	return func(c *Composer) {
		c.loader = loader
	}
}

// WithHTTPClient configures the built-in loader's HTTP client. Ignored when
// WithLoader supplies a full replacement.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Composer) {
		c.httpClient = client
	}
}

// WithRequestTimeout caps the schema fetch duration for the built-in loader.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *Composer) {
		c.timeout = timeout
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(c *Composer) {
		c.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a render call omits an
// explicit name.
func WithDefaultRenderer(name string) Option {
	return func(c *Composer) {
		c.defaultRenderer = name
	}
}

// WithBaseURL sets the generator service base URL stamped onto composed
// request URLs. Empty yields server-relative URLs.
func WithBaseURL(base string) Option {
	return func(c *Composer) {
		c.baseURL = base
	}
}

// Composer owns the wiring for one or more sessions: a loader for the schema
// endpoint and a registry of summary renderers.
type Composer struct {
	loader          metadata.Loader
	registry        *render.Registry
	defaultRenderer string
	baseURL         string
	httpClient      *http.Client
	timeout         time.Duration
	initialiseErr   error
	defaultsApplied bool
}

// New constructs a Composer applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Composer {
	c := &Composer{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.applyDefaults()
	return c
}

// Load fetches and parses the capability schema, then seeds a fresh session
// from it. Exactly one fetch happens per session; a failure here is terminal
// for the session being opened, never retried internally.
func (c *Composer) Load(ctx context.Context, src metadata.Source) (*Session, error) {
	if ctx == nil {
		return nil, errors.New("composer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.initialiseErr; err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("composer: source is required")
	}

	doc, err := c.loader.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("composer: load schema: %w", err)
	}

	schema, err := metadata.ParseSchema(doc)
	if err != nil {
		return nil, fmt.Errorf("composer: %w", err)
	}

	return NewSession(schema, c.baseURL), nil
}

// Render builds the session summary and renders it with the named renderer,
// falling back to the configured default when name is empty.
func (c *Composer) Render(ctx context.Context, session *Session, name string) ([]byte, error) {
	if session == nil {
		return nil, errors.New("composer: session is required")
	}

	renderer, err := c.rendererFor(name)
	if err != nil {
		return nil, err
	}

	summary, err := session.Summary()
	if err != nil {
		return nil, err
	}

	out, err := renderer.Render(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("composer: render summary: %w", err)
	}
	return out, nil
}

// Registry exposes the renderer registry for callers that need discovery.
func (c *Composer) Registry() *render.Registry {
	return c.registry
}

func (c *Composer) rendererFor(name string) (render.Renderer, error) {
	if c.registry == nil {
		return nil, errors.New("composer: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = c.defaultRenderer
	}

	renderer, err := c.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("composer: renderer %q: %w", target, err)
	}
	return renderer, nil
}

func (c *Composer) applyDefaults() {
	if c.defaultsApplied {
		return
	}

	if c.loader == nil {
		options := []metadata.LoaderOption{metadata.WithDefaultSources()}
		if c.httpClient != nil {
			options = append(options, metadata.WithHTTPClient(c.httpClient))
		}
		if c.timeout > 0 {
			options = append(options, metadata.WithHTTPFallback(c.timeout))
		}
		c.loader = internalloader.New(metadata.NewLoaderOptions(options...))
	}

	if c.registry == nil {
		c.registry = render.NewRegistry()
		if renderer, err := textrenderer.New(); err != nil {
			c.initialiseErr = fmt.Errorf("composer: text renderer: %w", err)
		} else {
			c.registry.MustRegister(renderer)
		}
		if renderer, err := htmlrenderer.New(); err != nil {
			c.initialiseErr = fmt.Errorf("composer: html renderer: %w", err)
		} else {
			c.registry.MustRegister(renderer)
		}
	}

	if c.defaultRenderer == "" {
		c.defaultRenderer = defaultRendererName
	}

	c.defaultsApplied = true
}

// Seed is re-exported here so callers holding only a schema can derive the
// initial state without importing pkg/selection directly.
func Seed(schema *metadata.Schema) selection.State {
	return selection.Seed(schema)
}
