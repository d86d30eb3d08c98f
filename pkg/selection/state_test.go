package selection_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shubham-dpworld/initializr-ui/pkg/selection"
)

func TestToggleDependencyKeepsSelectionOrder(t *testing.T) {
	var state selection.State

	state.ToggleDependency("web")
	state.ToggleDependency("data-jpa")
	state.ToggleDependency("security")
	state.ToggleDependency("data-jpa") // deselect

	want := []string{"web", "security"}
	if diff := cmp.Diff(want, state.Dependencies); diff != "" {
		t.Fatalf("dependencies mismatch (-want +got):\n%s", diff)
	}
	if state.HasDependency("data-jpa") {
		t.Fatal("data-jpa should be deselected")
	}
}

func TestVersionChoiceSurvivesDeselection(t *testing.T) {
	var state selection.State

	state.ToggleDependency("data-jpa")
	state.SetDependencyVersion("data-jpa", "3.3")
	state.ToggleDependency("data-jpa") // deselect

	if got := state.DependencyVersions["data-jpa"]; got != "3.3" {
		t.Fatalf("version choice = %q, want it preserved across deselection", got)
	}

	state.ToggleDependency("data-jpa") // reselect
	if got := state.DependencyVersions["data-jpa"]; got != "3.3" {
		t.Fatalf("version choice = %q after reselection", got)
	}
}

func TestSetDependencyVersionWithoutSelection(t *testing.T) {
	var state selection.State

	state.SetDependencyVersion("web", "1.0")
	if state.HasDependency("web") {
		t.Fatal("setting a version must not select the dependency")
	}
	if got := state.DependencyVersions["web"]; got != "1.0" {
		t.Fatalf("stored version = %q", got)
	}
}

func TestClearDependenciesKeepsVersionChoices(t *testing.T) {
	var state selection.State

	state.ToggleDependency("web")
	state.ToggleDependency("data-jpa")
	state.SetDependencyVersion("data-jpa", "3.2")
	state.ClearDependencies()

	if len(state.Dependencies) != 0 {
		t.Fatalf("dependencies = %v after clear", state.Dependencies)
	}
	if got := state.DependencyVersions["data-jpa"]; got != "3.2" {
		t.Fatalf("version choice = %q after clear", got)
	}
}

func TestBoilerplateToggleAndRemove(t *testing.T) {
	var state selection.State

	state.ToggleBoilerplate("crud-rest")
	state.ToggleBoilerplate("kafka-consumer")
	state.RemoveBoilerplate("crud-rest")

	want := []string{"kafka-consumer"}
	if diff := cmp.Diff(want, state.BoilerplateCodes); diff != "" {
		t.Fatalf("templates mismatch (-want +got):\n%s", diff)
	}

	state.ClearBoilerplates()
	if len(state.BoilerplateCodes) != 0 {
		t.Fatalf("templates = %v after clear", state.BoilerplateCodes)
	}
}
