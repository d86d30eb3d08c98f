package selection

import "github.com/shubham-dpworld/initializr-ui/pkg/metadata"

// VersionResolution describes whether a dependency carries a version axis and
// which version id applies to it right now.
type VersionResolution struct {
	// Versioned is false when the dependency exposes no version list. ID is
	// meaningless in that case.
	Versioned bool

	// ID is the resolved version id, or empty when the recorded choice is
	// missing or no longer valid against the current schema.
	ID string
}

// ResolveVersion determines the version that would be encoded for the given
// dependency id. The recorded choice only applies while it names a version
// the current schema still lists; otherwise the resolution is empty and the
// caller decides the fallback. Resolution is independent of whether the
// dependency is currently selected.
func ResolveVersion(schema *metadata.Schema, state *State, id string) VersionResolution {
	dep := schema.FindDependency(id)
	if dep == nil || !dep.Versioned() {
		return VersionResolution{}
	}

	resolution := VersionResolution{Versioned: true}
	choice, ok := state.DependencyVersions[id]
	if !ok || !dep.HasVersion(choice) {
		return resolution
	}
	resolution.ID = choice
	return resolution
}
