// Package text renders a composed session summary as plain terminal text.
package text

import (
	"context"
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/shubham-dpworld/initializr-ui/pkg/render"
)

const rendererName = "text"

const summaryTemplate = `{% autoescape off %}{{ summary.Type }} · {{ summary.Language }} · {{ summary.Packaging }} · Boot {{ summary.BootVersion }} · Java {{ summary.JavaVersion }}
Project: {{ summary.GroupID }}:{{ summary.ArtifactID }}:{{ summary.Version }} ({{ summary.Name }})
{% if summary.Description %}{{ summary.Description }}
{% endif %}{% if summary.Dependencies %}Dependencies ({{ summary.Dependencies|length }}):
{% for dep in summary.Dependencies %}  - {{ dep.ID }}{% if dep.Version %}:{{ dep.Version }}{% endif %}{% if dep.Name %} ({{ dep.Name }}){% endif %}
{% endfor %}{% endif %}{% if summary.Boilerplates %}Templates ({{ summary.Boilerplates|length }}):
{% for code in summary.Boilerplates %}  - {{ code.ID }}{% if code.Kind %} [{{ code.Kind }}]{% endif %}{% if code.Name %} ({{ code.Name }}){% endif %}
{% endfor %}{% endif %}{{ summary.URL }}
{% endautoescape %}`

// Renderer emits the selection summary the browsing UI shows in its footer
// bar, followed by the generation URL.
type Renderer struct {
	template *pongo2.Template
}

// Ensure the render contract is satisfied.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the text renderer, compiling its template eagerly so wiring
// mistakes surface at startup.
func New() (*Renderer, error) {
	template, err := pongo2.FromString(summaryTemplate)
	if err != nil {
		return nil, fmt.Errorf("text: compile summary template: %w", err)
	}
	return &Renderer{template: template}, nil
}

// Name implements render.Renderer.
func (r *Renderer) Name() string {
	return rendererName
}

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, summary render.Summary) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := r.template.ExecuteBytes(pongo2.Context{"summary": summary})
	if err != nil {
		return nil, fmt.Errorf("text: render summary: %w", err)
	}
	return out, nil
}
