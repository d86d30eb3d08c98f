// Package selection owns the mutable model of a composer session: the axis
// choices, free-text metadata, and the two multi-select sets (dependencies
// with per-item versions, boilerplate templates without).
package selection

// State captures every user choice for the current session. It is seeded by
// Seed immediately after the schema loads, mutated one action at a time, and
// read (never written) by the request composer. It does not outlive a
// session.
type State struct {
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

	// Dependencies holds selected dependency ids in selection order.
	Dependencies []string

	// DependencyVersions maps dependency id to the chosen version id. Entries
	// survive deselection within a session so a reselected dependency keeps
	// its last version choice.
	DependencyVersions map[string]string

	// BoilerplateCodes holds selected template ids in selection order.
	BoilerplateCodes []string
}

// HasDependency reports whether id is currently selected.
func (s *State) HasDependency(id string) bool {
	for _, existing := range s.Dependencies {
		if existing == id {
			return true
		}
	}
	return false
}

// ToggleDependency selects id when absent and deselects it when present.
// Version choices are left alone either way.
func (s *State) ToggleDependency(id string) {
	if s.HasDependency(id) {
		s.RemoveDependency(id)
		return
	}
	s.Dependencies = append(s.Dependencies, id)
}

// RemoveDependency deselects id, preserving the order of the remainder.
func (s *State) RemoveDependency(id string) {
	out := s.Dependencies[:0]
	for _, existing := range s.Dependencies {
		if existing != id {
			out = append(out, existing)
		}
	}
	s.Dependencies = out
}

// ClearDependencies deselects every dependency. Version choices persist.
func (s *State) ClearDependencies() {
	s.Dependencies = nil
}

// SetDependencyVersion records a version choice for id. Legal even when id is
// not currently selected; the choice is stored for later use.
func (s *State) SetDependencyVersion(id, version string) {
	if s.DependencyVersions == nil {
		s.DependencyVersions = make(map[string]string)
	}
	s.DependencyVersions[id] = version
}

// HasBoilerplate reports whether id is currently selected.
func (s *State) HasBoilerplate(id string) bool {
	for _, existing := range s.BoilerplateCodes {
		if existing == id {
			return true
		}
	}
	return false
}

// ToggleBoilerplate selects id when absent and deselects it when present.
func (s *State) ToggleBoilerplate(id string) {
	if s.HasBoilerplate(id) {
		s.RemoveBoilerplate(id)
		return
	}
	s.BoilerplateCodes = append(s.BoilerplateCodes, id)
}

// RemoveBoilerplate deselects id, preserving the order of the remainder.
func (s *State) RemoveBoilerplate(id string) {
	out := s.BoilerplateCodes[:0]
	for _, existing := range s.BoilerplateCodes {
		if existing != id {
			out = append(out, existing)
		}
	}
	s.BoilerplateCodes = out
}

// ClearBoilerplates deselects every template.
func (s *State) ClearBoilerplates() {
	s.BoilerplateCodes = nil
}
