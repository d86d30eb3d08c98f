package composer

import (
	"github.com/shubham-dpworld/initializr-ui/pkg/compose"
	"github.com/shubham-dpworld/initializr-ui/pkg/metadata"
	"github.com/shubham-dpworld/initializr-ui/pkg/render"
	"github.com/shubham-dpworld/initializr-ui/pkg/selection"
)

// Session pairs one immutable schema with the mutable selection state seeded
// from it. Sessions are single-goroutine by design: every mutation happens in
// response to one user action at a time.
type Session struct {
	Schema *metadata.Schema
	State  selection.State

	baseURL string
}

// NewSession seeds a session from a parsed schema.
func NewSession(schema *metadata.Schema, baseURL string) *Session {
	return &Session{
		Schema:  schema,
		State:   selection.Seed(schema),
		baseURL: baseURL,
	}
}

// Compose canonicalizes the current state into a generation request.
func (s *Session) Compose() (compose.Request, error) {
	return compose.Compose(s.Schema, &s.State)
}

// GenerateURL composes the request and stamps it onto the generator
// endpoint.
func (s *Session) GenerateURL() (string, error) {
	req, err := s.Compose()
	if err != nil {
		return "", err
	}
	return req.URL(s.baseURL), nil
}

// ResolveVersion reports the version that would be encoded for the given
// dependency id under the current state.
func (s *Session) ResolveVersion(id string) selection.VersionResolution {
	return selection.ResolveVersion(s.Schema, &s.State, id)
}

// Summary projects the session into the renderer-facing view: composed URL,
// resolved display names, and per-dependency versions. Fails when required
// axes are still unset, mirroring Compose.
func (s *Session) Summary() (render.Summary, error) {
	req, err := s.Compose()
	if err != nil {
		return render.Summary{}, err
	}

	summary := render.Summary{
		Type:        s.State.Type,
		Language:    s.State.Language,
		Packaging:   s.State.Packaging,
		BootVersion: s.State.BootVersion,
		JavaVersion: s.State.JavaVersion,

		GroupID:     s.State.GroupID,
		ArtifactID:  s.State.ArtifactID,
		Name:        s.State.Name,
		Description: s.State.Description,
		PackageName: s.State.PackageName,
		Version:     s.State.Version,

		URL: req.URL(s.baseURL),
	}

	for _, id := range s.State.Dependencies {
		dep := s.Schema.FindDependency(id)
		if dep == nil {
			continue
		}
		entry := render.SummaryDependency{
			ID:          dep.ID,
			Name:        dep.Name,
			Description: dep.Description,
		}
		if resolved := s.ResolveVersion(id); resolved.Versioned {
			entry.Version = resolved.ID
		}
		summary.Dependencies = append(summary.Dependencies, entry)
	}

	for _, id := range s.State.BoilerplateCodes {
		code := s.Schema.FindBoilerplate(id)
		if code == nil {
			continue
		}
		summary.Boilerplates = append(summary.Boilerplates, render.SummaryBoilerplate{
			ID:          code.ID,
			Name:        code.Name,
			Description: code.Description,
			Kind:        code.Type,
		})
	}

	return summary, nil
}
