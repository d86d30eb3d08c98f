// Package render defines the summary renderer contract and registry. A
// renderer turns a composed session summary into presentable bytes; the
// registry lets callers pick one by name.
package render

import "context"

// SummaryDependency is one selected dependency as presented to renderers,
// with its display name resolved and the version that will be encoded, when
// any.
type SummaryDependency struct {
	ID          string
	Name        string
	Description string
	Version     string
}

// SummaryBoilerplate is one selected template as presented to renderers.
type SummaryBoilerplate struct {
	ID          string
	Name        string
	Description string
	Kind        string
}

// Summary is the renderer-facing view of a composed session: resolved axis
// ids, metadata verbatim, the selected sets, and the final generation URL.
type Summary struct {
	Type        string
	Language    string
	Packaging   string
	BootVersion string
	JavaVersion string

	GroupID     string
	ArtifactID  string
	Name        string
	Description string
	PackageName string
	Version     string

	Dependencies []SummaryDependency
	Boilerplates []SummaryBoilerplate

	URL string
}

// Renderer produces output for a composed session summary.
type Renderer interface {
	// Name identifies the renderer inside a Registry.
	Name() string

	// Render produces the output bytes for the summary.
	Render(ctx context.Context, summary Summary) ([]byte, error)
}
