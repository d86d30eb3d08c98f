package metadata

// Types in this package mirror the Initializr v2.1 client metadata payload.
// The schema is read-only once parsed; selection state lives elsewhere.

// AxisValue is one selectable entry on a single-choice axis.
type AxisValue struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Axis is a single-choice configuration dimension (project type, language,
// packaging, boot version, java version). Default may be empty when the
// service declares no preference.
type Axis struct {
	Default string      `json:"default,omitempty"`
	Values  []AxisValue `json:"values,omitempty"`
}

// HasValue reports whether id is one of the axis values.
func (a Axis) HasValue(id string) bool {
	for _, v := range a.Values {
		if v.ID == id {
			return true
		}
	}
	return false
}

// TextField carries the service-declared default for a free-text field.
type TextField struct {
	Default string `json:"default,omitempty"`
}

// DependencyVersion is one selectable version of a dependency.
type DependencyVersion struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Default bool   `json:"default,omitempty"`
}

// Dependency is an optional feature unit. A dependency may expose a version
// axis through Versions; DefaultVersion, when set, wins over the flagged
// entry in Versions.
type Dependency struct {
	ID             string              `json:"id"`
	Name           string              `json:"name,omitempty"`
	Description    string              `json:"description,omitempty"`
	DefaultVersion string              `json:"defaultVersion,omitempty"`
	Versions       []DependencyVersion `json:"versions,omitempty"`
}

// Versioned reports whether the dependency exposes a version axis.
func (d Dependency) Versioned() bool {
	return len(d.Versions) > 0
}

// HasVersion reports whether id is one of the dependency's versions.
func (d Dependency) HasVersion(id string) bool {
	for _, v := range d.Versions {
		if v.ID == id {
			return true
		}
	}
	return false
}

// DependencyGroup is a named, ordered slice of dependencies. Group order and
// item order within a group follow the service payload.
type DependencyGroup struct {
	Name   string       `json:"name"`
	Values []Dependency `json:"values,omitempty"`
}

// DependencyCatalog wraps the grouped dependency listing.
type DependencyCatalog struct {
	Values []DependencyGroup `json:"values,omitempty"`
}

// BoilerplateOption is an optional code template, categorised by Type. It
// never carries a version axis.
type BoilerplateOption struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
}

// Schema is the parsed capability schema. Immutable once parsed; a session
// holds exactly one.
type Schema struct {
	Type        Axis `json:"type"`
	Language    Axis `json:"language"`
	Packaging   Axis `json:"packaging"`
	BootVersion Axis `json:"bootVersion"`
	JavaVersion Axis `json:"javaVersion"`

	GroupID     TextField `json:"groupId"`
	ArtifactID  TextField `json:"artifactId"`
	Name        TextField `json:"name"`
	Description TextField `json:"description"`
	PackageName TextField `json:"packageName"`
	Version     TextField `json:"version"`

	Dependencies DependencyCatalog `json:"dependencies"`

	// BoilerplateCodeOptions is absent in minimal deployments.
	BoilerplateCodeOptions []BoilerplateOption `json:"boilerplateCodeOptions,omitempty"`
}

// FindDependency locates a dependency by id across all groups. Returns nil
// when the id is unknown to this schema.
func (s *Schema) FindDependency(id string) *Dependency {
	for gi := range s.Dependencies.Values {
		group := &s.Dependencies.Values[gi]
		for di := range group.Values {
			if group.Values[di].ID == id {
				return &group.Values[di]
			}
		}
	}
	return nil
}

// FindBoilerplate locates a boilerplate option by id. Returns nil when the id
// is unknown to this schema.
func (s *Schema) FindBoilerplate(id string) *BoilerplateOption {
	for i := range s.BoilerplateCodeOptions {
		if s.BoilerplateCodeOptions[i].ID == id {
			return &s.BoilerplateCodeOptions[i]
		}
	}
	return nil
}

// HasBoilerplate reports whether the deployment publishes any boilerplate
// options at all.
func (s *Schema) HasBoilerplate() bool {
	return len(s.BoilerplateCodeOptions) > 0
}
