// Package compose turns a selection state into the canonical generation
// request consumed by the generator service. Composition is pure: it reads
// the schema and state and returns an ordered field set or an error.
package compose

import (
	"net/url"
	"strings"

	"github.com/shubham-dpworld/initializr-ui/pkg/metadata"
	"github.com/shubham-dpworld/initializr-ui/pkg/selection"
)

// GeneratePath is the generator service endpoint the composed query targets.
const GeneratePath = "/starter.zip"

// Field is a single named request parameter. Order matters and is preserved
// end to end for reproducibility.
type Field struct {
	Name  string
	Value string
}

// Request is the canonical ordered field set for one generation request.
type Request struct {
	Fields []Field
}

// Get returns the value of the named field and whether it is present.
func (r Request) Get(name string) (string, bool) {
	for _, field := range r.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

// Query serializes the request as a percent-encoded query string, preserving
// field order.
func (r Request) Query() string {
	var b strings.Builder
	for i, field := range r.Fields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(field.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(field.Value))
	}
	return b.String()
}

// URL joins the query onto the generator endpoint under the given base.
// An empty base yields a server-relative URL, matching the browsing client.
func (r Request) URL(base string) string {
	return strings.TrimSuffix(base, "/") + GeneratePath + "?" + r.Query()
}

// Compose canonicalizes the state into a Request. The five scalar axes are
// required; any gap fails the whole composition with a
// *MissingSelectionError and no partial request. Free-text fields are taken
// verbatim, empty or not. Selected ids unknown to the schema are dropped
// silently; they are leftovers from a previous schema, not user intent.
func Compose(schema *metadata.Schema, state *selection.State) (Request, error) {
	missing := missingAxes(state)
	if len(missing) > 0 {
		return Request{}, &MissingSelectionError{Axes: missing}
	}

	req := Request{
		Fields: []Field{
			{Name: "type", Value: state.Type},
			{Name: "language", Value: state.Language},
			{Name: "packaging", Value: state.Packaging},
			{Name: "bootVersion", Value: state.BootVersion},
			{Name: "javaVersion", Value: state.JavaVersion},
			{Name: "groupId", Value: state.GroupID},
			{Name: "artifactId", Value: state.ArtifactID},
			{Name: "name", Value: state.Name},
			{Name: "description", Value: state.Description},
			{Name: "packageName", Value: state.PackageName},
			{Name: "version", Value: state.Version},
		},
	}

	if tokens := dependencyTokens(schema, state); len(tokens) > 0 {
		req.Fields = append(req.Fields, Field{Name: "dependencies", Value: strings.Join(tokens, ",")})
	}
	if codes := boilerplateIDs(schema, state); len(codes) > 0 {
		req.Fields = append(req.Fields, Field{Name: "boilerplateCode", Value: strings.Join(codes, ",")})
	}

	return req, nil
}

func missingAxes(state *selection.State) []string {
	var missing []string
	for _, check := range []struct {
		label string
		value string
	}{
		{"type", state.Type},
		{"language", state.Language},
		{"packaging", state.Packaging},
		{"bootVersion", state.BootVersion},
		{"javaVersion", state.JavaVersion},
	} {
		if check.value == "" {
			missing = append(missing, check.label)
		}
	}
	return missing
}

// dependencyTokens walks the selected ids in selection order. A versioned
// dependency with a resolved version encodes as id:version; everything else
// encodes bare. Ids the current schema does not know are skipped.
func dependencyTokens(schema *metadata.Schema, state *selection.State) []string {
	tokens := make([]string, 0, len(state.Dependencies))
	for _, id := range state.Dependencies {
		dep := schema.FindDependency(id)
		if dep == nil {
			continue
		}
		resolved := selection.ResolveVersion(schema, state, id)
		if resolved.Versioned && resolved.ID != "" {
			tokens = append(tokens, id+":"+resolved.ID)
			continue
		}
		tokens = append(tokens, id)
	}
	return tokens
}

func boilerplateIDs(schema *metadata.Schema, state *selection.State) []string {
	codes := make([]string, 0, len(state.BoilerplateCodes))
	for _, id := range state.BoilerplateCodes {
		if schema.FindBoilerplate(id) == nil {
			continue
		}
		codes = append(codes, id)
	}
	return codes
}
