package selection

import "github.com/shubham-dpworld/initializr-ui/pkg/metadata"

// Fallback literals used when the service omits a text-field default. These
// match the generator service's own conventions.
const (
	fallbackGroupID     = "com.example"
	fallbackArtifactID  = "demo"
	fallbackName        = "demo"
	fallbackDescription = "Demo project"
	fallbackPackageName = "com.example.demo"
	fallbackVersion     = "0.0.1-SNAPSHOT"
)

// Seed derives a fully-populated State from a freshly parsed schema. Axes
// fall back from the declared default to the first listed value to the empty
// string; no axis is ever left undefined. Dependency version choices are
// pre-seeded from the catalog but no dependency or template is selected.
// Seeding the same schema twice yields identical states.
func Seed(schema *metadata.Schema) State {
	state := State{
		Type:        axisDefault(schema.Type),
		Language:    axisDefault(schema.Language),
		Packaging:   axisDefault(schema.Packaging),
		BootVersion: axisDefault(schema.BootVersion),
		JavaVersion: axisDefault(schema.JavaVersion),

		GroupID:     textDefault(schema.GroupID, fallbackGroupID),
		ArtifactID:  textDefault(schema.ArtifactID, fallbackArtifactID),
		Name:        textDefault(schema.Name, fallbackName),
		Description: textDefault(schema.Description, fallbackDescription),
		PackageName: textDefault(schema.PackageName, fallbackPackageName),
		Version:     textDefault(schema.Version, fallbackVersion),
	}

	for _, group := range schema.Dependencies.Values {
		for _, dep := range group.Values {
			if version := seedVersion(dep); version != "" {
				state.SetDependencyVersion(dep.ID, version)
			}
		}
	}

	return state
}

func axisDefault(axis metadata.Axis) string {
	if axis.Default != "" {
		return axis.Default
	}
	if len(axis.Values) > 0 {
		return axis.Values[0].ID
	}
	return ""
}

func textDefault(field metadata.TextField, fallback string) string {
	if field.Default != "" {
		return field.Default
	}
	return fallback
}

// seedVersion picks the catalog-declared version for a dependency:
// DefaultVersion wins, else the first entry flagged default. Multiple flagged
// entries are schema-author noise; first match applies.
func seedVersion(dep metadata.Dependency) string {
	if dep.DefaultVersion != "" {
		return dep.DefaultVersion
	}
	for _, v := range dep.Versions {
		if v.Default {
			return v.ID
		}
	}
	return ""
}
