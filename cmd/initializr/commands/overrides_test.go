package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubham-dpworld/initializr-ui/pkg/composer"
	"github.com/shubham-dpworld/initializr-ui/pkg/metadata"
)

func overrideSession() *composer.Session {
	schema := &metadata.Schema{
		Type:        metadata.Axis{Default: "maven-project", Values: []metadata.AxisValue{{ID: "maven-project"}, {ID: "gradle-project"}}},
		Language:    metadata.Axis{Default: "java", Values: []metadata.AxisValue{{ID: "java"}, {ID: "kotlin"}}},
		Packaging:   metadata.Axis{Default: "jar", Values: []metadata.AxisValue{{ID: "jar"}}},
		BootVersion: metadata.Axis{Default: "3.3.0", Values: []metadata.AxisValue{{ID: "3.3.0"}}},
		JavaVersion: metadata.Axis{Default: "17", Values: []metadata.AxisValue{{ID: "17"}}},
		Dependencies: metadata.DependencyCatalog{
			Values: []metadata.DependencyGroup{
				{
					Name: "Web",
					Values: []metadata.Dependency{
						{ID: "web"},
						{ID: "data-jpa", Versions: []metadata.DependencyVersion{{ID: "3.1"}, {ID: "3.2", Default: true}}},
					},
				},
			},
		},
		BoilerplateCodeOptions: []metadata.BoilerplateOption{{ID: "crud-rest"}},
	}
	return composer.NewSession(schema, "")
}

func TestApplyOverrideScalars(t *testing.T) {
	session := overrideSession()

	require.NoError(t, applyOverride(session, "language=kotlin"))
	require.NoError(t, applyOverride(session, "groupId=com.acme"))
	require.NoError(t, applyOverride(session, "description=Has = signs = inside"))

	assert.Equal(t, "kotlin", session.State.Language)
	assert.Equal(t, "com.acme", session.State.GroupID)
	assert.Equal(t, "Has = signs = inside", session.State.Description)
}

func TestApplyOverrideDependencies(t *testing.T) {
	session := overrideSession()

	require.NoError(t, applyOverride(session, "dependencies=web, data-jpa:3.1"))

	assert.Equal(t, []string{"web", "data-jpa"}, session.State.Dependencies)
	assert.Equal(t, "3.1", session.State.DependencyVersions["data-jpa"])
}

func TestApplyOverrideDependenciesIdempotent(t *testing.T) {
	session := overrideSession()
	session.State.ToggleDependency("web")

	require.NoError(t, applyOverride(session, "dependencies=web"))

	// Re-listing an already selected id must not deselect it.
	assert.Equal(t, []string{"web"}, session.State.Dependencies)
}

func TestApplyOverrideBoilerplate(t *testing.T) {
	session := overrideSession()

	require.NoError(t, applyOverride(session, "boilerplateCode=crud-rest"))
	assert.Equal(t, []string{"crud-rest"}, session.State.BoilerplateCodes)
}

func TestApplyOverrideRejectsUnknownKey(t *testing.T) {
	session := overrideSession()

	assert.Error(t, applyOverride(session, "flavour=vanilla"))
}

func TestApplyOverrideRejectsMissingSeparator(t *testing.T) {
	session := overrideSession()

	assert.Error(t, applyOverride(session, "language"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList("a, ,b,"))
	assert.Nil(t, splitList(" , "))
}
