// Package html renders a composed session summary as a standalone HTML
// fragment. Schema-provided text passes through a strict sanitization policy
// before templating; the metadata endpoint is remote input.
package html

import (
	"context"
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/shubham-dpworld/initializr-ui/pkg/render"
)

const rendererName = "html"

const summaryTemplate = `<section class="composer-summary">
  <h2>{{ summary.Name|safe }}</h2>
  <ul class="composer-axes">
    <li>{{ summary.Type }}</li>
    <li>{{ summary.Language }}</li>
    <li>{{ summary.Packaging }}</li>
    <li>Boot {{ summary.BootVersion }}</li>
    <li>Java {{ summary.JavaVersion }}</li>
  </ul>
  <dl class="composer-meta">
    <dt>Group</dt><dd>{{ summary.GroupID }}</dd>
    <dt>Artifact</dt><dd>{{ summary.ArtifactID }}</dd>
    <dt>Version</dt><dd>{{ summary.Version }}</dd>
    <dt>Package</dt><dd>{{ summary.PackageName }}</dd>
    <dt>Description</dt><dd>{{ summary.Description|safe }}</dd>
  </dl>
{% if summary.Dependencies %}  <h3>Dependencies</h3>
  <ul class="composer-deps">
{% for dep in summary.Dependencies %}    <li><code>{{ dep.ID }}{% if dep.Version %}:{{ dep.Version }}{% endif %}</code>{% if dep.Name %} {{ dep.Name|safe }}{% endif %}{% if dep.Description %} <small>{{ dep.Description|safe }}</small>{% endif %}</li>
{% endfor %}  </ul>
{% endif %}{% if summary.Boilerplates %}  <h3>Templates</h3>
  <ul class="composer-codes">
{% for code in summary.Boilerplates %}    <li><code>{{ code.ID }}</code>{% if code.Kind %} <span class="kind">{{ code.Kind }}</span>{% endif %}{% if code.Name %} {{ code.Name|safe }}{% endif %}</li>
{% endfor %}  </ul>
{% endif %}  <a class="composer-generate" href="{{ summary.URL }}">Generate Project</a>
</section>
`

// Renderer emits an HTML summary suitable for embedding in a host page.
type Renderer struct {
	template *pongo2.Template
	policy   *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer with a strict sanitization policy.
func New() (*Renderer, error) {
	template, err := pongo2.FromString(summaryTemplate)
	if err != nil {
		return nil, fmt.Errorf("html: compile summary template: %w", err)
	}
	return &Renderer{
		template: template,
		policy:   bluemonday.StrictPolicy(),
	}, nil
}

// Name implements render.Renderer.
func (r *Renderer) Name() string {
	return rendererName
}

// Render implements render.Renderer. Display names and descriptions come
// from the remote schema and are stripped of markup before the template's
// own escaping runs.
func (r *Renderer) Render(ctx context.Context, summary render.Summary) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cleaned := r.sanitize(summary)
	out, err := r.template.ExecuteBytes(pongo2.Context{"summary": cleaned})
	if err != nil {
		return nil, fmt.Errorf("html: render summary: %w", err)
	}
	return out, nil
}

func (r *Renderer) sanitize(summary render.Summary) render.Summary {
	summary.Name = r.clean(summary.Name)
	summary.Description = r.clean(summary.Description)

	deps := make([]render.SummaryDependency, len(summary.Dependencies))
	for i, dep := range summary.Dependencies {
		dep.Name = r.clean(dep.Name)
		dep.Description = r.clean(dep.Description)
		deps[i] = dep
	}
	summary.Dependencies = deps

	codes := make([]render.SummaryBoilerplate, len(summary.Boilerplates))
	for i, code := range summary.Boilerplates {
		code.Name = r.clean(code.Name)
		code.Description = r.clean(code.Description)
		codes[i] = code
	}
	summary.Boilerplates = codes

	return summary
}

func (r *Renderer) clean(raw string) string {
	return strings.TrimSpace(r.policy.Sanitize(raw))
}
